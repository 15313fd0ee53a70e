package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"alfredoptarigan/resume-analyzer/internal/metrics"
	"alfredoptarigan/resume-analyzer/internal/models"
)

type ResumeAnalyzer interface {
	Analyze(ctx context.Context, role models.Role, resumeText string) (string, error)
	AnalyzeForCandidate(ctx context.Context, resumeText string) (string, error)
	AnalyzeForHR(ctx context.Context, resumeText string) (string, error)
}

type resumeAnalyzer struct {
	generator     TextGenerator
	promptBuilder *PromptBuilder
	timeout       time.Duration
}

// NewResumeAnalyzer returns an analyzer that sends one prompt per call.
// A zero timeout leaves the deadline to the caller's context.
func NewResumeAnalyzer(generator TextGenerator, timeout time.Duration) ResumeAnalyzer {
	return &resumeAnalyzer{
		generator:     generator,
		promptBuilder: NewPromptBuilder(),
		timeout:       timeout,
	}
}

// AnalyzeForCandidate implements ResumeAnalyzer.
func (a *resumeAnalyzer) AnalyzeForCandidate(ctx context.Context, resumeText string) (string, error) {
	return a.Analyze(ctx, models.RoleCandidate, resumeText)
}

// AnalyzeForHR implements ResumeAnalyzer.
func (a *resumeAnalyzer) AnalyzeForHR(ctx context.Context, resumeText string) (string, error) {
	return a.Analyze(ctx, models.RoleHR, resumeText)
}

// Analyze sends the prompt for role. An unknown role fails with
// models.ErrInvalidRole before anything is generated.
func (a *resumeAnalyzer) Analyze(ctx context.Context, role models.Role, resumeText string) (string, error) {
	prompt, err := a.promptBuilder.BuildForRole(role, resumeText)
	if err != nil {
		return "", fmt.Errorf("failed to build prompt: %w", err)
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	log.Printf("📝 %s prompt length: %d characters", role, len(prompt))

	start := time.Now()
	response, err := a.generator.GenerateText(ctx, prompt)
	metrics.Since(metrics.GenerationDuration.WithLabelValues(string(role)), start)
	if err != nil {
		return "", fmt.Errorf("failed to generate %s analysis: %w", role, err)
	}

	log.Printf("✅ %s analysis received: %d characters", role, len(response))
	return response, nil
}
