// warmup batch-embeds every cached verse that has no stored embedding yet,
// so the first similarity queries do not pay the per-candidate generation
// cost online.
//
// Environment variables:
//   POSTGRES_URI          - PostgreSQL connection string
//   EMBEDDING_PROVIDER    - "custom" or "vertex"
//   EMBEDDING_SERVICE_URL - custom provider endpoint
//
// Usage:
//   go run scripts/warmup/main.go

package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/sandrotonal/quran-semantic-api/internal/models"
	"github.com/sandrotonal/quran-semantic-api/internal/repository/postgres"
	"github.com/sandrotonal/quran-semantic-api/pkg/schema/db"
	pkgservices "github.com/sandrotonal/quran-semantic-api/pkg/schema/services"
)

const batchSize = 50

func main() {
	godotenv.Load()

	ctx := context.Background()

	if err := db.InitPostgres(ctx); err != nil {
		log.Fatalf("Failed to initialize PostgreSQL: %v", err)
	}
	defer db.ClosePostgres()

	pgDB := db.GetPostgres()
	verseRepo := postgres.NewVerseRepository(pgDB)
	embeddingRepo := postgres.NewEmbeddingRepository(pgDB)

	embeddingsSvc := pkgservices.GetEmbeddingsService()
	if err := pkgservices.GetInitError(); err != nil {
		log.Fatalf("Failed to initialize embeddings service: %v", err)
	}

	verses, err := verseRepo.ListAll(ctx)
	if err != nil {
		log.Fatalf("Failed to list verses: %v", err)
	}

	existing, err := embeddingRepo.ListAll(ctx)
	if err != nil {
		log.Fatalf("Failed to list embeddings: %v", err)
	}
	embedded := make(map[int64]bool, len(existing))
	for _, e := range existing {
		embedded[e.VerseID] = true
	}

	var pending []models.Verse
	for _, v := range verses {
		if !embedded[v.ID] {
			pending = append(pending, v)
		}
	}

	log.Printf("%d verses cached, %d missing embeddings", len(verses), len(pending))

	totalCount := 0
	for start := 0; start < len(pending); start += batchSize {
		end := start + batchSize
		if end > len(pending) {
			end = len(pending)
		}
		batch := pending[start:end]

		texts := make([]string, len(batch))
		for i, v := range batch {
			texts[i] = v.TranslatedText
		}

		vectors, err := embeddingsSvc.EmbedVerseBatch(ctx, texts)
		if err != nil {
			log.Fatalf("Batch embedding failed at offset %d: %v", start, err)
		}

		for i, v := range batch {
			if err := embeddingRepo.Upsert(ctx, v.ID, vectors[i]); err != nil {
				log.Fatalf("Failed to store embedding for %d:%d: %v", v.Surah, v.Verse, err)
			}
			totalCount++
		}
		log.Printf("Embedded %d/%d verses", totalCount, len(pending))
	}

	log.Printf("Warm-up complete: %d embeddings stored", totalCount)
}
