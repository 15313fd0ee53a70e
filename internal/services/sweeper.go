package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"alfredoptarigan/resume-analyzer/internal/metrics"
	"alfredoptarigan/resume-analyzer/internal/repositories"
)

// Sweeper deletes uploads older than the retention window.
type Sweeper interface {
	Start(ctx context.Context)
	Stop()
	SweepOnce(ctx context.Context) (int, error)
}

type sweeper struct {
	storage    StorageService
	uploadRepo repositories.UploadRepository
	retention  time.Duration
	interval   time.Duration
	now        func() time.Time
	wg         sync.WaitGroup
	stopChan   chan struct{}
	stopOnce   sync.Once
}

func NewSweeper(
	storage StorageService,
	uploadRepo repositories.UploadRepository,
	retention time.Duration,
	interval time.Duration,
) Sweeper {
	return &sweeper{
		storage:    storage,
		uploadRepo: uploadRepo,
		retention:  retention,
		interval:   interval,
		now:        time.Now,
		stopChan:   make(chan struct{}),
	}
}

// Start implements Sweeper.
func (s *sweeper) Start(ctx context.Context) {
	log.Printf("🧹 Starting upload sweeper (retention %s, every %s)\n", s.retention, s.interval)

	s.wg.Add(1)
	go s.loop(ctx)
}

// Stop implements Sweeper.
func (s *sweeper) Stop() {
	s.stopOnce.Do(func() {
		log.Println("🛑 Stopping upload sweeper...")
		close(s.stopChan)
	})
	s.wg.Wait()
}

// SweepOnce implements Sweeper.
func (s *sweeper) SweepOnce(ctx context.Context) (int, error) {
	now := s.now()
	expired, err := s.storage.ListOlderThan(now.Add(-s.retention))
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, name := range expired {
		if err := s.storage.DeleteFile(name); err != nil {
			log.Printf("⚠️  Failed to sweep %s: %v\n", name, err)
			continue
		}
		removed++
		metrics.UploadsSwept.Inc()

		if err := s.uploadRepo.MarkRemoved(ctx, name, now); err != nil && !errors.Is(err, repositories.ErrUploadNotFound) {
			log.Printf("⚠️  Failed to mark %s removed: %v\n", name, err)
		}
	}

	return removed, nil
}

func (s *sweeper) loop(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			log.Println("🧹 Upload sweeper stopped")
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := s.SweepOnce(ctx)
			if err != nil {
				log.Printf("⚠️  Upload sweep failed: %v\n", err)
				continue
			}
			if removed > 0 {
				log.Printf("🧹 Removed %d expired uploads\n", removed)
			}
		}
	}
}
