package handler

import (
	"context"

	"wordquiz/internal/middleware"
	"wordquiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Pinger reports database health
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler serves the word REST API
type Handler struct {
	wordService *service.WordService
	authService *service.AuthService
	db          Pinger
	logger      *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	wordService *service.WordService,
	authService *service.AuthService,
	db Pinger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		wordService: wordService,
		authService: authService,
		db:          db,
		logger:      logger,
	}
}

// RegisterRoutes registers all API routes
func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/health", h.handleHealth)

	// Id checks run before the gate
	gate := middleware.TeacherAuth(h.authService, h.logger)

	words := app.Group("/api/words")
	words.Get("/", h.handleListWords)
	words.Get("/:id<int>", requireWordID, h.handleGetWord)
	words.Post("/", gate, h.handleCreateWord)
	words.Put("/:id<int>", requireWordID, gate, h.handleUpdateWord)
	words.Delete("/:id<int>", requireWordID, gate, h.handleDeleteWord)
}
