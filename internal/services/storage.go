package services

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

type StorageService interface {
	SaveFile(src io.Reader, originalName string) (*StoredFile, error)
	GetFilePath(filename string) string
	DeleteFile(filename string) error
	ListOlderThan(cutoff time.Time) ([]string, error)
	EnsureUploadDir() error
}

type StoredFile struct {
	Name      string
	Path      string
	SizeBytes int64
}

type storageService struct {
	uploadPath string
}

func NewStorageService(uploadPath string) StorageService {
	return &storageService{
		uploadPath: uploadPath,
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

// SaveFile writes src under "<uuid>_<sanitized name>" inside the upload
// directory. An existing file is never overwritten.
func (s *storageService) SaveFile(src io.Reader, originalName string) (*StoredFile, error) {
	uniqueFilename := fmt.Sprintf("%s_%s", uuid.New().String(), SanitizeFilename(filepath.Base(originalName)))
	filePath := filepath.Join(s.uploadPath, uniqueFilename)

	dst, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}

	written, err := io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(filePath)
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	return &StoredFile{
		Name:      uniqueFilename,
		Path:      filePath,
		SizeBytes: written,
	}, nil
}

func (s *storageService) GetFilePath(filename string) string {
	return filepath.Join(s.uploadPath, filepath.Base(filename))
}

func (s *storageService) DeleteFile(filename string) error {
	filePath := s.GetFilePath(filename)
	if err := os.Remove(filePath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// ListOlderThan returns the names of regular files last modified before cutoff.
func (s *storageService) ListOlderThan(cutoff time.Time) ([]string, error) {
	entries, err := os.ReadDir(s.uploadPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read upload directory: %w", err)
	}

	var expired []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			expired = append(expired, entry.Name())
		}
	}

	return expired, nil
}
