package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/RohitValiveti/Fitness-Tracker/models"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Get loads a user with workouts and friends for the full view.
func (s *UserService) Get(id uint) (*models.User, error) {
	var user models.User
	err := s.db.Preload("Workouts").Preload("Friends").First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// AddFriend appends friendID to user's friend set. The relation is
// one-directional: only the caller's friend list grows.
func (s *UserService) AddFriend(user *models.User, friendID uint) (*models.User, error) {
	var friend models.User
	if err := s.db.First(&friend, friendID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(user).Association("Friends").Append(&friend)
	})
	if err != nil {
		return nil, err
	}
	return &friend, nil
}

// Delete removes a user and everything they own: workouts with their
// exercises and sets, friendship rows in both directions, and health file
// records. One transaction, per the no-partial-cascade rule.
func (s *UserService) Delete(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var workoutIDs []uint
		if err := tx.Model(&models.Workout{}).Where("user_id = ?", id).Pluck("id", &workoutIDs).Error; err != nil {
			return err
		}
		if len(workoutIDs) > 0 {
			var exerciseIDs []uint
			if err := tx.Model(&models.Exercise{}).Where("workout_id IN ?", workoutIDs).Pluck("id", &exerciseIDs).Error; err != nil {
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
			if err := tx.Where("id IN ?", workoutIDs).Delete(&models.Workout{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Exec("DELETE FROM user_friends WHERE user_id = ? OR friend_id = ?", id, id).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.HealthFile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ResetTables empties the workout hierarchy, leaves first.
func (s *UserService) ResetTables() error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM sets").Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM exercises").Error; err != nil {
			return err
		}
		return tx.Exec("DELETE FROM workouts").Error
	})
}
