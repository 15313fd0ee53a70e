package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"alfredoptarigan/resume-analyzer/internal/handlers"
	"alfredoptarigan/resume-analyzer/internal/services"
)

// Room for the multipart envelope around a file of MaxFileSize bytes.
const multipartOverhead = 1 << 20

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long:  "Serve the upload form, the JSON API and metrics; blocks until SIGINT/SIGTERM.",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	uploadRepo, err := setupUploadRepository(cfg)
	if err != nil {
		return err
	}
	log.Println("✅ Repositories initialized successfully")

	storageService, err := setupStorage(cfg)
	if err != nil {
		return err
	}
	pdfParser := services.NewPDFParserService()
	log.Println("✅ Services initialized successfully")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	analyzer, err := setupAnalyzer(ctx, cfg)
	if err != nil {
		return err
	}

	pipeline := services.NewAnalysisPipeline(
		storageService,
		pdfParser,
		analyzer,
		uploadRepo,
		services.PipelineOptions{
			MaxFileSize: cfg.Storage.MaxFileSize,
			Retention:   cfg.Storage.Retention,
		},
	)

	var sweeper services.Sweeper
	if cfg.Storage.Retention > 0 {
		sweeper = services.NewSweeper(storageService, uploadRepo, sweepAge(cfg), cfg.Storage.SweepInterval)
		sweeper.Start(ctx)
		log.Println("✅ Sweeper started successfully")
	}

	analyzeHandler := handlers.NewAnalyzeHandler(pipeline)
	log.Println("✅ Handlers initialized")

	app := handlers.NewApp(analyzeHandler, int(cfg.Storage.MaxFileSize)+multipartOverhead)

	go func() {
		<-ctx.Done()
		log.Println("\n🛑 Shutting down server...")
		if sweeper != nil {
			sweeper.Stop()
		}
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📖 Upload form: http://localhost%s\n", addr)

	if err := app.Listen(addr); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	log.Println("👋 Server stopped")
	return nil
}
