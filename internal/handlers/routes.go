package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"alfredoptarigan/resume-analyzer/internal/models"
)

// NewApp builds the Fiber app with middleware and every route registered.
func NewApp(analyzeHandler *AnalyzeHandler, bodyLimit int) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Resume Analyzer",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute,
		BodyLimit:    bodyLimit,
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	app.Get("/", analyzeHandler.HandleIndex)
	app.Post("/", analyzeHandler.HandleSubmit)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/analyze", analyzeHandler.HandleAnalyzeAPI)

	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	// The form page answers 200 whatever happens, including bodies that
	// fasthttp rejects before any handler runs.
	if isFormSubmit(c) {
		message := models.MessageInternalError
		if code == fiber.StatusRequestEntityTooLarge {
			message = models.MessageInvalidUpload
		}
		return renderPage(c.Status(fiber.StatusOK), models.PageData{
			HasResult: true,
			Result:    message,
			Role:      string(models.RoleCandidate),
		})
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}

func isFormSubmit(c *fiber.Ctx) bool {
	return c.Method() == fiber.MethodPost && c.Path() == "/"
}
