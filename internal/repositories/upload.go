package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"alfredoptarigan/resume-analyzer/internal/models"
)

var ErrUploadNotFound = errors.New("upload not found")

type UploadRepository interface {
	Create(ctx context.Context, upload *models.Upload) error
	MarkRemoved(ctx context.Context, storedName string, at time.Time) error
}

type uploadRepository struct {
	db *gorm.DB
}

func NewUploadRepository(db *gorm.DB) UploadRepository {
	return &uploadRepository{db: db}
}

// Create implements UploadRepository.
func (r *uploadRepository) Create(ctx context.Context, upload *models.Upload) error {
	if err := r.db.WithContext(ctx).Create(upload).Error; err != nil {
		return fmt.Errorf("failed to create upload: %w", err)
	}
	return nil
}

// MarkRemoved implements UploadRepository.
func (r *uploadRepository) MarkRemoved(ctx context.Context, storedName string, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.Upload{}).
		Where("stored_name = ? AND removed_at IS NULL", storedName).
		Updates(map[string]interface{}{
			"removed_at": at,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark upload removed: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrUploadNotFound
	}

	return nil
}
