package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/services"
)

var rootCmd = &cobra.Command{
	Use:   "resume-analyzer",
	Short: "AI resume analysis for candidates and HR",
	Long:  "Upload a PDF resume, extract its text and get a Gemini review written for the candidate or for HR.",
	// With no subcommand the web server runs.
	RunE:         runServe,
	SilenceUsage: true,
}

func loadConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	log.Println("✅ Config loaded successfully")
	return cfg, nil
}

// setupUploadRepository opens the ledger when DB_ENABLED is set and falls back
// to a no-op repository otherwise.
func setupUploadRepository(cfg *config.Config) (repositories.UploadRepository, error) {
	if !cfg.Database.Enabled {
		log.Println("ℹ️  Upload ledger disabled")
		return repositories.NewNopUploadRepository(), nil
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return repositories.NewUploadRepository(db), nil
}

func setupStorage(cfg *config.Config) (services.StorageService, error) {
	storage := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storage.EnsureUploadDir(); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return storage, nil
}

func setupAnalyzer(ctx context.Context, cfg *config.Config) (services.ResumeAnalyzer, error) {
	gemini, err := services.NewGeminiService(ctx, services.GeminiOptions{
		APIKey:    cfg.Gemini.APIKey,
		ModelName: cfg.Gemini.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini AI: %w", err)
	}
	log.Printf("✅ Gemini AI initialized (model %s)\n", gemini.ModelName())

	return services.NewResumeAnalyzer(gemini, cfg.Gemini.Timeout), nil
}
