package server

import (
	"log"

	"vehicle-diagnosis-be/internal/bootstrap"
	"vehicle-diagnosis-be/internal/config"
	"vehicle-diagnosis-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 25 * 1024 * 1024, // voice and image uploads
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.CorsAllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, X-Admin-Token",
		AllowMethods: "GET, POST, PUT, OPTIONS",
	}))

	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.AdminController.RegisterRoutes(api)
	c.DiagnosisController.RegisterRoutes(api)
	c.EstimateController.RegisterRoutes(api)
	c.BookingController.RegisterRoutes(api)
	c.CatalogController.RegisterRoutes(api)
}
