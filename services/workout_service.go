package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/RohitValiveti/Fitness-Tracker/models"
)

type WorkoutService struct {
	db *gorm.DB
}

func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{db: db}
}

func (s *WorkoutService) List() ([]models.Workout, error) {
	var workouts []models.Workout
	if err := s.db.Order("id").Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

func (s *WorkoutService) Create(muscleGroup string) (*models.Workout, error) {
	if strings.TrimSpace(muscleGroup) == "" {
		return nil, ErrValidation
	}
	workout := models.Workout{
		MuscleGroup: muscleGroup,
		TimeStarted: time.Now(),
	}
	if err := s.db.Create(&workout).Error; err != nil {
		return nil, err
	}
	return &workout, nil
}

func (s *WorkoutService) Get(id uint) (*models.Workout, error) {
	var workout models.Workout
	if err := s.db.Preload("Exercises").First(&workout, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// WorkoutUpdate patches only the fields that are present.
type WorkoutUpdate struct {
	MuscleGroup *string
	TimeEnded   *time.Time
	UserID      *uint
}

func (s *WorkoutService) Update(id uint, input WorkoutUpdate) (*models.Workout, error) {
	workout, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.MuscleGroup != nil {
		if strings.TrimSpace(*input.MuscleGroup) == "" {
			return nil, ErrValidation
		}
		workout.MuscleGroup = *input.MuscleGroup
	}
	if input.TimeEnded != nil {
		workout.TimeEnded = input.TimeEnded
	}
	if input.UserID != nil {
		var owner models.User
		if err := s.db.First(&owner, *input.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		workout.UserID = input.UserID
	}

	if err := s.db.Save(workout).Error; err != nil {
		return nil, err
	}
	return workout, nil
}

// Delete removes the workout and every exercise and set beneath it in one
// transaction; a partial cascade is never visible. The pre-delete state is
// returned so the handler can echo it.
func (s *WorkoutService) Delete(id uint) (*models.Workout, error) {
	workout, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var exerciseIDs []uint
		if err := tx.Model(&models.Exercise{}).Where("workout_id = ?", id).Pluck("id", &exerciseIDs).Error; err != nil {
			return err
		}
		if len(exerciseIDs) > 0 {
			if err := tx.Where("exercise_id IN ?", exerciseIDs).Delete(&models.Set{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", exerciseIDs).Delete(&models.Exercise{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Workout{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return workout, nil
}
