// seed resolves a set of well-known verses through the cache so a fresh
// deployment has a useful candidate corpus before any traffic arrives.
//
// Environment variables:
//   POSTGRES_URI         - PostgreSQL connection string
//   QURAN_API_BASE_URL   - primary text provider (default https://api.acikkuran.com)
//   FALLBACK_API_BASE_URL- fallback Arabic provider
//
// Usage:
//   go run scripts/seed/main.go

package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/sandrotonal/quran-semantic-api/internal/config"
	"github.com/sandrotonal/quran-semantic-api/internal/providers"
	"github.com/sandrotonal/quran-semantic-api/internal/repository/postgres"
	"github.com/sandrotonal/quran-semantic-api/internal/services"
	"github.com/sandrotonal/quran-semantic-api/pkg/schema/db"
)

// seedVerses lists frequently requested verses: openings, well-known
// passages and common supplications.
var seedVerses = []struct {
	Surah int
	Verse int
}{
	{1, 1}, {2, 255}, {2, 286}, {3, 26}, {3, 173}, {5, 114},
	{7, 23}, {7, 126}, {10, 2}, {10, 10}, {14, 40}, {17, 24},
	{17, 80}, {20, 25}, {23, 29}, {25, 65}, {26, 83}, {28, 16},
	{112, 1}, {113, 1}, {114, 1},
}

func main() {
	godotenv.Load()

	cfg := config.GetConfig()
	ctx := context.Background()

	if err := db.InitPostgres(ctx); err != nil {
		log.Fatalf("Failed to initialize PostgreSQL: %v", err)
	}
	defer db.ClosePostgres()

	verseRepo := postgres.NewVerseRepository(db.GetPostgres())
	primary := providers.NewAcikkuranClient(cfg.QuranAPIBaseURL, cfg.TranslatorID)
	fallback := providers.NewAlQuranCloudClient(cfg.FallbackAPIBaseURL)
	resolver := services.NewVerseResolver(verseRepo, primary, fallback)

	var successCount, errorCount int
	for _, ref := range seedVerses {
		if _, err := resolver.Resolve(ctx, ref.Surah, ref.Verse); err != nil {
			log.Printf("Failed to seed %d:%d: %v", ref.Surah, ref.Verse, err)
			errorCount++
			continue
		}
		log.Printf("Seeded %d:%d", ref.Surah, ref.Verse)
		successCount++
	}

	log.Printf("Seeding complete: %d cached, %d failed", successCount, errorCount)
}
