package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/metrics"
	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
)

// Submission is one form post. Open is nil when no file was attached.
type Submission struct {
	Role     string
	Filename string
	Size     int64
	Open     func() (io.ReadCloser, error)
}

type AnalysisPipeline interface {
	Process(ctx context.Context, sub Submission) *models.AnalysisResult
}

type PipelineOptions struct {
	MaxFileSize int64
	Retention   time.Duration
}

type analysisPipeline struct {
	storage    StorageService
	pdfParser  PDFParserService
	analyzer   ResumeAnalyzer
	uploadRepo repositories.UploadRepository
	opts       PipelineOptions
}

func NewAnalysisPipeline(
	storage StorageService,
	pdfParser PDFParserService,
	analyzer ResumeAnalyzer,
	uploadRepo repositories.UploadRepository,
	opts PipelineOptions,
) AnalysisPipeline {
	return &analysisPipeline{
		storage:    storage,
		pdfParser:  pdfParser,
		analyzer:   analyzer,
		uploadRepo: uploadRepo,
		opts:       opts,
	}
}

// Process validates, stores, extracts and analyzes a submission. Extraction
// failures are reported before the role is looked at.
func (p *analysisPipeline) Process(ctx context.Context, sub Submission) (result *models.AnalysisResult) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("❌ Panic while processing %q: %v", sub.Filename, rec)
			result = models.NewFailure(models.KindInternalError, sub.Role, fmt.Errorf("panic: %v", rec))
		}
		if result.Succeeded() {
			log.Printf("✅ Analysis %s completed for %s", result.ID, result.Role)
		}
		metrics.ObserveAnalysis(result.Role, string(result.Kind))
	}()

	if err := p.validate(sub); err != nil {
		log.Printf("⚠️  Rejected upload %q: %v", sub.Filename, err)
		return models.NewFailure(models.KindValidationFailure, sub.Role, err)
	}

	stored, err := p.store(sub)
	if err != nil {
		log.Printf("❌ Failed to store upload %q: %v", sub.Filename, err)
		return models.NewFailure(models.KindInternalError, sub.Role, err)
	}
	log.Printf("✅ Uploaded file: %s (%d bytes) as %s", sub.Filename, stored.SizeBytes, stored.Name)

	p.recordUpload(ctx, stored, sub)
	if p.opts.Retention == 0 {
		defer p.discard(ctx, stored.Name)
	}

	start := time.Now()
	resumeText, err := p.pdfParser.ExtractText(stored.Path)
	metrics.Since(metrics.ExtractionDuration, start)
	if err != nil {
		log.Printf("❌ Failed to extract text from %s: %v", stored.Name, err)
		return models.NewFailure(models.KindExtractionFailure, sub.Role, err)
	}
	log.Printf("📄 Extracted %d characters from %s", len(resumeText), stored.Name)

	role, ok := models.ParseRole(sub.Role)
	if !ok {
		return models.NewFailure(models.KindInvalidRole, sub.Role, fmt.Errorf("%w: got %q", models.ErrInvalidRole, sub.Role))
	}

	response, err := p.analyzer.Analyze(ctx, role, resumeText)
	if err != nil {
		log.Printf("❌ Analysis failed for %s: %v", stored.Name, err)
		return models.NewFailure(models.KindAnalysisFailure, sub.Role, err)
	}

	return models.NewSuccess(role, response)
}

func (p *analysisPipeline) validate(sub Submission) error {
	if sub.Open == nil {
		return models.ErrMissingFile
	}
	if !strings.HasSuffix(sub.Filename, ".pdf") {
		return models.ErrNotPDF
	}
	if p.opts.MaxFileSize > 0 && sub.Size > p.opts.MaxFileSize {
		return fmt.Errorf("%w: %d > %d bytes", models.ErrFileTooLarge, sub.Size, p.opts.MaxFileSize)
	}
	return nil
}

func (p *analysisPipeline) store(sub Submission) (*StoredFile, error) {
	src, err := sub.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	return p.storage.SaveFile(src, sub.Filename)
}

func (p *analysisPipeline) recordUpload(ctx context.Context, stored *StoredFile, sub Submission) {
	upload := &models.Upload{
		ID:               uuid.New(),
		StoredName:       stored.Name,
		OriginalFileName: sub.Filename,
		FilePath:         stored.Path,
		SizeBytes:        stored.SizeBytes,
		Role:             sub.Role,
	}
	if err := p.uploadRepo.Create(ctx, upload); err != nil {
		log.Printf("⚠️  Failed to record upload %s: %v", stored.Name, err)
	}
}

func (p *analysisPipeline) discard(ctx context.Context, storedName string) {
	if err := p.storage.DeleteFile(storedName); err != nil {
		log.Printf("⚠️  Failed to delete upload %s: %v", storedName, err)
		return
	}
	if err := p.uploadRepo.MarkRemoved(ctx, storedName, time.Now()); err != nil && !errors.Is(err, repositories.ErrUploadNotFound) {
		log.Printf("⚠️  Failed to mark upload %s removed: %v", storedName, err)
	}
}
