package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type AnalyzeHandler struct {
	pipeline services.AnalysisPipeline
}

func NewAnalyzeHandler(pipeline services.AnalysisPipeline) *AnalyzeHandler {
	return &AnalyzeHandler{
		pipeline: pipeline,
	}
}

// HandleIndex handles GET /
func (h *AnalyzeHandler) HandleIndex(c *fiber.Ctx) error {
	return renderPage(c, models.PageData{Role: string(models.RoleCandidate)})
}

// HandleSubmit handles POST / and always answers 200 with the rendered page.
func (h *AnalyzeHandler) HandleSubmit(c *fiber.Ctx) error {
	sub := submissionFromForm(c)
	result := h.pipeline.Process(c.UserContext(), sub)

	return renderPage(c, models.PageData{
		HasResult: true,
		Result:    result.Message(),
		Role:      sub.Role,
	})
}

// HandleAnalyzeAPI handles POST /api/v1/analyze
func (h *AnalyzeHandler) HandleAnalyzeAPI(c *fiber.Ctx) error {
	result := h.pipeline.Process(c.UserContext(), submissionFromForm(c))

	return c.Status(statusForKind(result.Kind)).JSON(models.AnalyzeResponse{
		ID:     result.ID.String(),
		Kind:   string(result.Kind),
		Role:   result.Role,
		Result: result.Message(),
	})
}

func submissionFromForm(c *fiber.Ctx) services.Submission {
	sub := services.Submission{Role: c.FormValue("role")}

	file, err := c.FormFile("resume")
	if err != nil || file == nil {
		return sub
	}

	sub.Filename = file.Filename
	sub.Size = file.Size
	sub.Open = func() (io.ReadCloser, error) {
		return file.Open()
	}
	return sub
}

func statusForKind(kind models.ResultKind) int {
	switch kind {
	case models.KindSuccess:
		return fiber.StatusOK
	case models.KindValidationFailure, models.KindInvalidRole:
		return fiber.StatusBadRequest
	case models.KindExtractionFailure:
		return fiber.StatusUnprocessableEntity
	case models.KindAnalysisFailure:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func renderPage(c *fiber.Ctx, data models.PageData) error {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}

	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
