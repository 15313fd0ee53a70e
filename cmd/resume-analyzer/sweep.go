package main

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/services"
)

// Uploads younger than this may still belong to a request in flight.
const minInFlightAge = 5 * time.Minute

// sweepAge is the age past which the sweeper deletes an upload. It never
// drops below the time a request can still be extracting and generating.
func sweepAge(cfg *config.Config) time.Duration {
	floor := minInFlightAge
	if cfg.Gemini.Timeout > floor {
		floor = cfg.Gemini.Timeout
	}
	if cfg.Storage.Retention < floor {
		return floor
	}
	return cfg.Storage.Retention
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Delete uploads older than UPLOAD_RETENTION once and exit",
	Long:  "One-shot sweep of the upload directory. With UPLOAD_RETENTION=0 files left behind by interrupted requests are removed once they are older than GEMINI_TIMEOUT (at least 5m).",
	RunE:  runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	uploadRepo, err := setupUploadRepository(cfg)
	if err != nil {
		return err
	}
	storageService, err := setupStorage(cfg)
	if err != nil {
		return err
	}

	sweeper := services.NewSweeper(storageService, uploadRepo, sweepAge(cfg), cfg.Storage.SweepInterval)
	removed, err := sweeper.SweepOnce(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to sweep uploads: %w", err)
	}

	log.Printf("🧹 Removed %d expired uploads from %s\n", removed, cfg.Storage.UploadPath)
	return nil
}
