package models

// Exercise may exist unassigned; WorkoutID is nil until the exercise is
// attached to a workout.
type Exercise struct {
	ID           uint   `gorm:"primaryKey"`
	ExerciseName string `gorm:"not null"`
	Muscle       string `gorm:"not null"`
	WorkoutID    *uint  `gorm:"index"`

	Sets []Set `gorm:"foreignKey:ExerciseID"`
}

func (e *Exercise) SimpleSerialize() map[string]interface{} {
	return map[string]interface{}{
		"id":            e.ID,
		"exercise_name": e.ExerciseName,
		"muscle":        e.Muscle,
		"workout_id":    e.WorkoutID,
	}
}

// Serialize adds the exercise's sets. Sets are leaves, so they appear in
// full. Sets must be preloaded by the caller.
func (e *Exercise) Serialize() map[string]interface{} {
	sets := make([]map[string]interface{}, 0, len(e.Sets))
	for i := range e.Sets {
		sets = append(sets, e.Sets[i].Serialize())
	}
	out := e.SimpleSerialize()
	out["sets"] = sets
	return out
}
