package main

import (
	"context"
	"log"

	"skillmatch/internal/config"
	"skillmatch/internal/repositories"
	"skillmatch/internal/services"
)

// Populates the Qdrant role-suggestion index with one embedding per catalog
// job posting. Run after every catalog update.
func main() {
	log.Println("🚀 Starting job catalog ingestion...")

	cfg := config.Load()

	jobRepo, err := repositories.NewJobRepository(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("❌ Failed to load job catalog: %v", err)
	}

	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	qdrantService, err := services.NewQdrantService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := qdrantService.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	ctx := context.Background()
	maxChars := cfg.Scoring.MaxEmbedChars

	successCount := 0
	failCount := 0

	for _, job := range jobRepo.All() {
		log.Printf("📄 Ingesting: %s", job.DisplayTitle)

		text := job.Description
		if len(text) > maxChars {
			text = text[:maxChars]
		}

		embedding, err := geminiService.GenerateEmbedding(ctx, text)
		if err != nil {
			log.Printf("   ⚠️  Failed to embed description: %v", err)
			failCount++
			continue
		}

		if err := qdrantService.UpsertJobPosting(ctx, job.DisplayTitle, job.Description, embedding); err != nil {
			log.Printf("   ⚠️  Failed to upsert posting: %v", err)
			failCount++
			continue
		}

		successCount++
	}

	log.Printf("✅ Ingestion completed: %d succeeded, %d failed", successCount, failCount)
}
