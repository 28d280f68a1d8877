package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/RohitValiveti/Fitness-Tracker/models"
)

// fileURLLifetime matches the presign window the client is given to
// download an upload it just made.
const fileURLLifetime = 5 * time.Minute

// ObjectStore abstracts the S3 operations the file service needs.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) error
	PresignGet(ctx context.Context, key string, expires time.Duration) (string, error)
}

type FileService struct {
	db    *gorm.DB
	store ObjectStore
}

func NewFileService(db *gorm.DB, store ObjectStore) *FileService {
	return &FileService{db: db, store: store}
}

// Upload stores the blob under a collision-free key and records it with a
// presigned GET URL for the owner.
func (s *FileService) Upload(ctx context.Context, owner *models.User, name, filename, contentType string, body io.Reader) (*models.HealthFile, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(filename) == "" {
		return nil, ErrValidation
	}

	key := fmt.Sprintf("health-files/%d/%s-%s", owner.ID, uuid.New().String(), filepath.Base(filename))
	if err := s.store.Put(ctx, key, contentType, body); err != nil {
		return nil, err
	}

	url, err := s.store.PresignGet(ctx, key, fileURLLifetime)
	if err != nil {
		return nil, err
	}

	file := models.HealthFile{
		Name:      name,
		URL:       url,
		ObjectKey: key,
		UserID:    owner.ID,
	}
	if err := s.db.Create(&file).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

func (s *FileService) ListForUser(userID uint) ([]models.HealthFile, error) {
	var files []models.HealthFile
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

// Get returns the file only to its owner.
func (s *FileService) Get(id uint, caller *models.User) (*models.HealthFile, error) {
	var file models.HealthFile
	if err := s.db.First(&file, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if file.UserID != caller.ID {
		return nil, ErrForbidden
	}
	return &file, nil
}
