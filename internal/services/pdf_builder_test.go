package services

import (
	"os"
	"path/filepath"
	"testing"

	"alfredoptarigan/resume-analyzer/internal/testutil"
)

func buildPDF(pages []string) []byte {
	return testutil.BuildPDF(pages)
}

func writePDF(t *testing.T, dir, name string, pages []string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buildPDF(pages), 0644); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	return path
}
