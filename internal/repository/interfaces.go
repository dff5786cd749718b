package repository

import (
	"context"
	"errors"

	"github.com/sandrotonal/quran-semantic-api/internal/models"
)

// ErrNotFound is returned by lookups that match no record.
var ErrNotFound = errors.New("record not found")

// VerseRepository defines persistent storage for verse text.
type VerseRepository interface {
	// Get performs an exact-match lookup by (surah, verse).
	Get(ctx context.Context, surah, verse int) (*models.Verse, error)

	// Insert stores a new verse. If the (surah, verse) pair already
	// exists the call is a no-op and reports inserted=false, regardless
	// of field differences. Verse text is immutable ground truth.
	Insert(ctx context.Context, surah, verse int, arabicText, translatedText string) (inserted bool, err error)

	// FillArabic sets the Arabic text of an existing record, but only
	// when the stored Arabic text is empty.
	FillArabic(ctx context.Context, surah, verse int, arabicText string) error

	// ListAll returns every stored verse in insertion order.
	ListAll(ctx context.Context) ([]models.Verse, error)
}

// EmbeddingRepository defines persistent storage for verse embeddings,
// decoupled from the verse store so embeddings can be regenerated
// independently.
type EmbeddingRepository interface {
	// Get returns the embedding for a verse id.
	Get(ctx context.Context, verseID int64) (*models.Embedding, error)

	// Upsert stores the vector for a verse id, overwriting any existing
	// record and refreshing its creation time. Embeddings are regenerable
	// derived data; last writer wins.
	Upsert(ctx context.Context, verseID int64, vector []float64) error

	// ListAll returns every stored embedding.
	ListAll(ctx context.Context) ([]models.Embedding, error)
}
