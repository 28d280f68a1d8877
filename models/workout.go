package models

import (
	"time"
)

type Workout struct {
	ID          uint      `gorm:"primaryKey"`
	MuscleGroup string    `gorm:"not null"`
	TimeStarted time.Time `gorm:"not null"`
	TimeEnded   *time.Time
	UserID      *uint `gorm:"index"`

	Exercises []Exercise `gorm:"foreignKey:WorkoutID"`
}

func (w *Workout) SimpleSerialize() map[string]interface{} {
	var ended interface{}
	if w.TimeEnded != nil {
		ended = w.TimeEnded.Format(time.RFC3339)
	}
	return map[string]interface{}{
		"id":           w.ID,
		"time_started": w.TimeStarted.Format(time.RFC3339),
		"time_ended":   ended,
		"muscle_group": w.MuscleGroup,
		"user_id":      w.UserID,
	}
}

// Serialize adds the workout's exercises as simple views. Exercises must
// be preloaded by the caller.
func (w *Workout) Serialize() map[string]interface{} {
	exercises := make([]map[string]interface{}, 0, len(w.Exercises))
	for i := range w.Exercises {
		exercises = append(exercises, w.Exercises[i].SimpleSerialize())
	}
	out := w.SimpleSerialize()
	out["exercises"] = exercises
	return out
}
