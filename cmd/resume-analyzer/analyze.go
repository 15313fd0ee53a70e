package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

var analyzeRole string

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume.pdf>...",
	Short: "Analyze local PDF resumes and print the result",
	Long:  "Extracts text from each PDF and prints the Gemini analysis for the chosen role. Nothing is copied into the upload directory.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeRole, "role", "r", string(models.RoleCandidate), "who the analysis is for: candidate or hr")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	role, ok := models.ParseRole(analyzeRole)
	if !ok {
		return fmt.Errorf("%w: %q", models.ErrInvalidRole, analyzeRole)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	analyzer, err := setupAnalyzer(ctx, cfg)
	if err != nil {
		return err
	}
	pdfParser := services.NewPDFParserService()

	successCount := 0
	failCount := 0

	for _, path := range args {
		log.Printf("📄 Processing: %s", path)

		if !strings.HasSuffix(path, ".pdf") {
			log.Printf("   ⚠️  Not a .pdf file, skipping...")
			failCount++
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			log.Printf("   ⚠️  File not found, skipping...")
			failCount++
			continue
		}

		log.Printf("   📖 Extracting text...")
		content, err := pdfParser.ExtractTextWithMetaData(path)
		if err != nil {
			log.Printf("   ❌ Failed to extract text: %v", err)
			failCount++
			continue
		}
		log.Printf("   ✅ Extracted %d pages, %d characters", content.PageCount, len(content.Text))

		log.Printf("   🤖 Analyzing for %s...", role)
		text, err := analyzer.Analyze(ctx, role, content.Text)
		if err != nil {
			log.Printf("   ❌ Analysis failed: %v", err)
			failCount++
			continue
		}

		fmt.Fprintf(cmd.OutOrStdout(), "===== %s =====\n%s\n\n", filepath.Base(path), text)
		successCount++
	}

	log.Println(strings.Repeat("=", 60))
	log.Printf("📊 Analysis Summary:")
	log.Printf("   ✅ Successful: %d resumes", successCount)
	log.Printf("   ❌ Failed: %d resumes", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		return fmt.Errorf("%d of %d resumes failed", failCount, len(args))
	}
	return nil
}
