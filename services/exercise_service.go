package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/RohitValiveti/Fitness-Tracker/models"
)

type ExerciseService struct {
	db *gorm.DB
}

func NewExerciseService(db *gorm.DB) *ExerciseService {
	return &ExerciseService{db: db}
}

func (s *ExerciseService) List() ([]models.Exercise, error) {
	var exercises []models.Exercise
	if err := s.db.Preload("Sets").Order("id").Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

// Create stores an exercise, unassigned when workoutID is nil. An
// assigned create validates that the workout exists first.
func (s *ExerciseService) Create(exerciseName, muscle string, workoutID *uint) (*models.Exercise, error) {
	if strings.TrimSpace(exerciseName) == "" || strings.TrimSpace(muscle) == "" {
		return nil, ErrValidation
	}
	if workoutID != nil {
		if err := s.workoutExists(*workoutID); err != nil {
			return nil, err
		}
	}
	exercise := models.Exercise{
		ExerciseName: exerciseName,
		Muscle:       muscle,
		WorkoutID:    workoutID,
	}
	if err := s.db.Create(&exercise).Error; err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (s *ExerciseService) Get(id uint) (*models.Exercise, error) {
	var exercise models.Exercise
	if err := s.db.Preload("Sets").First(&exercise, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

type ExerciseUpdate struct {
	ExerciseName *string
	Muscle       *string
	WorkoutID    *uint
}

func (s *ExerciseService) Update(id uint, input ExerciseUpdate) (*models.Exercise, error) {
	exercise, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.ExerciseName != nil {
		if strings.TrimSpace(*input.ExerciseName) == "" {
			return nil, ErrValidation
		}
		exercise.ExerciseName = *input.ExerciseName
	}
	if input.Muscle != nil {
		if strings.TrimSpace(*input.Muscle) == "" {
			return nil, ErrValidation
		}
		exercise.Muscle = *input.Muscle
	}
	if input.WorkoutID != nil {
		if err := s.workoutExists(*input.WorkoutID); err != nil {
			return nil, err
		}
		exercise.WorkoutID = input.WorkoutID
	}

	if err := s.db.Save(exercise).Error; err != nil {
		return nil, err
	}
	return exercise, nil
}

// Delete removes the exercise and its sets atomically.
func (s *ExerciseService) Delete(id uint) (*models.Exercise, error) {
	exercise, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("exercise_id = ?", id).Delete(&models.Set{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Exercise{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return exercise, nil
}

func (s *ExerciseService) workoutExists(id uint) error {
	var workout models.Workout
	if err := s.db.Select("id").First(&workout, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
