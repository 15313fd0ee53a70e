package services

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"google.golang.org/genai"

	"alfredoptarigan/resume-analyzer/internal/models"
)

// TextGenerator turns a prompt into a single text response.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type GeminiService interface {
	TextGenerator
	ModelName() string
}

type GeminiOptions struct {
	APIKey    string
	ModelName string
	// BaseURL and HTTPClient override the Gemini endpoint; tests point them at
	// a local server.
	BaseURL    string
	HTTPClient *http.Client
}

type geminiService struct {
	client    *genai.Client
	modelName string
}

func NewGeminiService(ctx context.Context, opts GeminiOptions) (GeminiService, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("failed to create gemini client: %w", models.ErrMissingAPIKey)
	}

	cfg := &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: opts.HTTPClient,
	}
	if opts.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	modelName := opts.ModelName
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	return &geminiService{
		client:    client,
		modelName: modelName,
	}, nil
}

func (g *geminiService) ModelName() string {
	return g.modelName
}

// GenerateText implements TextGenerator.
func (g *geminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), nil)
	if err != nil {
		log.Printf("❌ Gemini API error: %v\n", err)
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("prompt blocked: %s: %w", resp.PromptFeedback.BlockReason, models.ErrEmptyResponse)
		}
		return "", models.ErrEmptyResponse
	}

	return text, nil
}
