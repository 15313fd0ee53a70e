package services

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

type PDFParserService interface {
	ExtractText(filepath string) (string, error)
	ExtractTextWithMetaData(filepath string) (*PDFContent, error)
}

type PDFContent struct {
	Text      string
	PageCount int
	FilePath  string
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

// ExtractText joins the text of every page with a newline and trims the
// result. Pages without text are skipped, and a PDF without any text yields ""
// rather than an error.
func (p *pdfParserService) ExtractText(filePath string) (string, error) {
	content, err := p.ExtractTextWithMetaData(filePath)
	if err != nil {
		return "", err
	}
	return content.Text, nil
}

func (p *pdfParserService) ExtractTextWithMetaData(filePath string) (content *PDFContent, err error) {
	if _, err := os.Stat(filePath); err != nil {
		return nil, fmt.Errorf("failed to stat PDF: %w", err)
	}

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	// The pdf package panics on some malformed object graphs.
	defer func() {
		if rec := recover(); rec != nil {
			content = nil
			err = fmt.Errorf("failed to parse PDF: %v", rec)
		}
	}()

	totalPage := r.NumPage()
	pages := make([]string, 0, totalPage)

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to read page %d: %w", pageIndex, err)
		}

		// GetPlainText opens every text object with a line break. Strip those
		// and keep the page's own spacing.
		text = strings.Trim(text, "\r\n")
		if strings.TrimSpace(text) == "" {
			continue
		}
		pages = append(pages, text)
	}

	return &PDFContent{
		Text:      strings.TrimSpace(strings.Join(pages, "\n")),
		PageCount: totalPage,
		FilePath:  filePath,
	}, nil
}
