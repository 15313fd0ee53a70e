package models

import (
	"time"

	"github.com/google/uuid"
)

// Upload is a ledger row for a resume file written to the uploads directory.
// It never carries extracted text or analysis output.
type Upload struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StoredName       string     `gorm:"type:text;uniqueIndex" json:"stored_name"`
	OriginalFileName string     `gorm:"type:text" json:"original_filename"`
	FilePath         string     `gorm:"type:text" json:"file_path"`
	SizeBytes        int64      `json:"size_bytes"`
	Role             string     `gorm:"type:text" json:"role"`
	RemovedAt        *time.Time `gorm:"type:timestamp" json:"removed_at,omitempty"`
	CreatedAt        time.Time  `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (u *Upload) TableName() string {
	return "uploads"
}
