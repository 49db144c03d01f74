package handler

import (
	"time"

	"wordquiz/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// AppConfig holds fiber app settings
type AppConfig struct {
	StaticDir    string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// NewApp builds the fiber app with middleware, API routes and static files
func NewApp(h *Handler, cfg AppConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "wordquiz",
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		IdleTimeout:           120 * time.Second,
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler(h.logger),
	})

	app.Use(middleware.RequestLogger(h.logger))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, " + middleware.TeacherPasswordHeader,
	}))

	h.RegisterRoutes(app)

	// Frontend build, served as is
	if cfg.StaticDir != "" {
		app.Static("/", cfg.StaticDir)
	}

	return app
}
