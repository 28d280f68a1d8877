package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/RohitValiveti/Fitness-Tracker/models"
)

type SetService struct {
	db *gorm.DB
}

func NewSetService(db *gorm.DB) *SetService {
	return &SetService{db: db}
}

// Create stores a set, unassigned when exerciseID is nil.
func (s *SetService) Create(weight, repetitions int, exerciseID *uint) (*models.Set, error) {
	if exerciseID != nil {
		if err := s.exerciseExists(*exerciseID); err != nil {
			return nil, err
		}
	}
	set := models.Set{
		Weight:      weight,
		Repetitions: repetitions,
		ExerciseID:  exerciseID,
	}
	if err := s.db.Create(&set).Error; err != nil {
		return nil, err
	}
	return &set, nil
}

func (s *SetService) Get(id uint) (*models.Set, error) {
	var set models.Set
	if err := s.db.First(&set, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &set, nil
}

type SetUpdate struct {
	Weight      *int
	Repetitions *int
	ExerciseID  *uint
}

func (s *SetService) Update(id uint, input SetUpdate) (*models.Set, error) {
	set, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Weight != nil {
		set.Weight = *input.Weight
	}
	if input.Repetitions != nil {
		set.Repetitions = *input.Repetitions
	}
	if input.ExerciseID != nil {
		if err := s.exerciseExists(*input.ExerciseID); err != nil {
			return nil, err
		}
		set.ExerciseID = input.ExerciseID
	}

	if err := s.db.Save(set).Error; err != nil {
		return nil, err
	}
	return set, nil
}

func (s *SetService) Delete(id uint) (*models.Set, error) {
	set, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Delete(&models.Set{}, id).Error; err != nil {
		return nil, err
	}
	return set, nil
}

func (s *SetService) exerciseExists(id uint) error {
	var exercise models.Exercise
	if err := s.db.Select("id").First(&exercise, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
