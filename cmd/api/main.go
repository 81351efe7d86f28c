package main

import (
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

	"skillmatch/internal/config"
	"skillmatch/internal/handlers"
	"skillmatch/internal/repositories"
	"skillmatch/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Load job catalog. A malformed catalog halts here, before any request
	// can reach the scoring core.
	jobRepo, err := repositories.NewJobRepository(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("❌ Failed to load job catalog: %v", err)
	}
	log.Printf("✅ Job catalog loaded (%d postings)", len(jobRepo.All()))

	docRepo := repositories.NewDocumentRepository()

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	resumeParser := services.NewResumeParserService()
	log.Println("✅ Services initialized successfully")

	// Similarity strategy: embeddings when available, TF-IDF otherwise.
	geminiService, similarity := buildSimilarity(cfg)
	similarityCache := services.NewCachedSimilarity(similarity, cfg.Scoring.CacheSize)
	log.Printf("✅ Similarity scorer ready (strategy: %s)", similarity.Name())

	// Vector index for role suggestions; optional.
	var qdrantService services.QdrantService
	if geminiService != nil {
		qdrantService, err = services.NewQdrantService(
			cfg.Qdrant.URL,
			cfg.Qdrant.APIKey,
			cfg.Qdrant.Collection,
		)
		if err != nil {
			log.Printf("⚠️  Qdrant unavailable, role suggestions disabled: %v", err)
			qdrantService = nil
		} else {
			log.Println("✅ Qdrant initialized successfully")
		}
	}

	// Scoring core
	extractor := services.NewSkillExtractor(cfg.Scoring.FuzzyThreshold)
	scorer := services.NewMatchScorer(
		extractor,
		similarityCache,
		cfg.Scoring.SkillWeight,
		cfg.Scoring.ContextWeight,
	)
	recommender := services.NewRecommender()
	log.Println("✅ Match scorer initialized")

	// Initialize handlers
	uploadHandler := handlers.NewUploadHandler(docRepo, storageService, resumeParser, extractor, cfg.Storage.MaxFileSize)
	matchHandler := handlers.NewMatchHandler(jobRepo, docRepo, scorer, recommender)
	jobsHandler := handlers.NewJobsHandler(jobRepo)
	suggestHandler := handlers.NewSuggestHandler(docRepo, geminiService, qdrantService, cfg.Scoring.MaxEmbedChars)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "SkillMatch API",
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
	api.Post("/upload", uploadHandler.HandleUpload)
	api.Get("/jobs", jobsHandler.HandleListJobs)
	api.Post("/match", matchHandler.HandleMatch)
	api.Post("/match/report", matchHandler.HandleMatchReport)
	api.Get("/suggest/:document_id", suggestHandler.HandleSuggest)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "SkillMatch API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/upload",
				"GET /api/v1/jobs",
				"POST /api/v1/match",
				"POST /api/v1/match/report",
				"GET /api/v1/suggest/:document_id",
			},
		})
	})

	// Periodic catalog refresh; readers holding the old snapshot keep it.
	stopReload := make(chan struct{})
	go reloadCatalog(jobRepo, cfg.Catalog.ReloadTTL, stopReload)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		close(stopReload)
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

// buildSimilarity picks the similarity strategy from config. The embedding
// backend failing to initialize is not fatal: the service falls back to the
// self-contained TF-IDF strategy instead of hard-failing every request.
func buildSimilarity(cfg *config.Config) (services.GeminiService, services.SimilarityScorer) {
	switch cfg.Scoring.Strategy {
	case "tfidf":
		return nil, services.NewTFIDFSimilarity()
	case "embedding", "auto":
		geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
		if err != nil {
			if cfg.Scoring.Strategy == "embedding" {
				log.Printf("⚠️  Embedding backend unavailable (%v), falling back to TF-IDF", err)
			}
			return nil, services.NewTFIDFSimilarity()
		}
		log.Println("✅ Gemini embedding backend initialized")
		return geminiService, services.NewEmbeddingSimilarity(geminiService, cfg.Scoring.MaxEmbedChars)
	default:
		log.Printf("⚠️  Unknown similarity strategy %q, using TF-IDF", cfg.Scoring.Strategy)
		return nil, services.NewTFIDFSimilarity()
	}
}

func reloadCatalog(jobRepo repositories.JobRepository, ttl time.Duration, stop <-chan struct{}) {
	if ttl <= 0 {
		return
	}
	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if err := jobRepo.Reload(); err != nil {
				log.Printf("⚠️  Catalog reload failed, keeping previous snapshot: %v", err)
			} else {
				log.Printf("🔄 Job catalog reloaded (%d postings)", len(jobRepo.All()))
			}
		}
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
