package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"requirement-pool/internal/config"
	"requirement-pool/internal/handler"
	"requirement-pool/internal/middleware"
	"requirement-pool/internal/repository"
	"requirement-pool/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redisClient, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v (caching disabled)", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (image upload will not work)", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redisClient, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/api/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, X-Admin-Username, X-Admin-Password",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, cfg *config.Config) {
	api := app.Group("/api")

	api.Get("/health", h.System.Health)
	api.Post("/upload-images", h.Media.UploadImages)
	api.Post("/init", h.System.Init)

	api.Get("/requirements", h.Requirement.List)
	api.Get("/requirements/:id", h.Requirement.Get)
	api.Post("/requirements", h.Requirement.Create)
	api.Post("/requirements/:id/comments", h.Comment.Create)
	api.Post("/requirements/:id/suggestions", h.Suggestion.Create)
	api.Post("/requirements/:id/like", h.Requirement.ToggleLike)
	api.Get("/requirements/:id/like/:username", h.Requirement.HasLiked)

	admin := api.Group("", middleware.AdminRequired(cfg))
	admin.Put("/requirements/:id/status", h.Requirement.UpdateStatus)
	admin.Delete("/requirements/:id", h.Requirement.Delete)
	admin.Delete("/comments/:id", h.Comment.Delete)
	admin.Delete("/suggestions/:id", h.Suggestion.Delete)
	admin.Post("/reset", h.System.Reset)
}
