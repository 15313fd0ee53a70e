package services

import (
	"context"
	"sync"
	"time"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
)

type fakeGenerator struct {
	mu       sync.Mutex
	prompts  []string
	response string
	err      error
}

func (f *fakeGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeGenerator) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.prompts...)
}

type memUploadRepo struct {
	mu      sync.Mutex
	uploads map[string]*models.Upload
	err     error
}

func newMemUploadRepo() *memUploadRepo {
	return &memUploadRepo{uploads: make(map[string]*models.Upload)}
}

func (r *memUploadRepo) Create(ctx context.Context, upload *models.Upload) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.uploads[upload.StoredName] = upload
	return nil
}

func (r *memUploadRepo) get(storedName string) (*models.Upload, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.uploads[storedName]
	return u, ok
}

func (r *memUploadRepo) MarkRemoved(ctx context.Context, storedName string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.uploads[storedName]
	if !ok {
		return repositories.ErrUploadNotFound
	}
	u.RemovedAt = &at
	return nil
}

func (r *memUploadRepo) all() []*models.Upload {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Upload, 0, len(r.uploads))
	for _, u := range r.uploads {
		out = append(out, u)
	}
	return out
}
