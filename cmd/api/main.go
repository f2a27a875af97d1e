package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"jobboard/internal/config"
	"jobboard/internal/handlers"
	"jobboard/internal/repositories"
	"jobboard/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	employeeRepo := repositories.NewEmployeeRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	docRepo := repositories.NewDocumentRepository(db)
	parseRepo := repositories.NewCvParseRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	pdfService := services.NewPDFService()
	cvParser := services.NewCvParserService(pdfService)
	matcher := services.NewMatcherService()
	ranker := services.NewRankerService(matcher, jobRepo, employeeRepo)
	log.Println("✅ Services initialized successfully")

	profileService := services.NewProfileService(
		parseRepo,
		docRepo,
		employeeRepo,
		cvParser,
	)
	log.Println("✅ Profile service initialized")

	// Initialize worker
	worker := services.NewWorker(
		parseRepo,
		profileService,
		cfg.Worker.Concurrency,
		cfg.Worker.PollInterval,
	)
	log.Println("✅ Worker initialized successfully")

	// Start worker
	ctx := context.Background()
	worker.Start(ctx)
	log.Println("✅ Worker started successfully")

	// Initialize handlers
	uploadHandler := handlers.NewUploadHandler(
		employeeRepo,
		docRepo,
		parseRepo,
		storageService,
		pdfService,
		worker,
		cfg.Storage.MaxFileSize,
	)
	parseHandler := handlers.NewParseHandler(parseRepo)
	matchHandler := handlers.NewMatchHandler(employeeRepo, jobRepo, ranker)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Job Board Matching API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/employees/:id/cv", uploadHandler.HandleUploadCv)
	api.Get("/cv/:id", parseHandler.HandleGetParseResult)
	api.Get("/employees/:id/matches", matchHandler.HandleEmployeeMatches)
	api.Get("/jobs/:id/candidates", matchHandler.HandleJobCandidates)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Job Board Matching API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/employees/:id/cv",
				"GET /api/v1/cv/:id",
				"GET /api/v1/employees/:id/matches",
				"GET /api/v1/jobs/:id/candidates",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		worker.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
