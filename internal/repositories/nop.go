package repositories

import (
	"context"
	"time"

	"alfredoptarigan/resume-analyzer/internal/models"
)

// NopUploadRepository is used when the database is disabled. Nothing is
// recorded.
type NopUploadRepository struct{}

func NewNopUploadRepository() *NopUploadRepository { return &NopUploadRepository{} }

func (NopUploadRepository) Create(ctx context.Context, upload *models.Upload) error { return nil }
func (NopUploadRepository) MarkRemoved(ctx context.Context, storedName string, at time.Time) error {
	return nil
}
