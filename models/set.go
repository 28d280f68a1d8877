package models

// Set is the leaf of the workout hierarchy. ExerciseID is nil until the
// set is attached to an exercise.
type Set struct {
	ID          uint `gorm:"primaryKey"`
	Weight      int  `gorm:"not null"`
	Repetitions int  `gorm:"not null"`
	ExerciseID  *uint `gorm:"index"`
}

func (s *Set) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":          s.ID,
		"weight":      s.Weight,
		"repetitions": s.Repetitions,
		"exercise_id": s.ExerciseID,
	}
}
