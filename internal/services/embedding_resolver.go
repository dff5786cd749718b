package services

import (
	"context"
	"errors"

	"github.com/sandrotonal/quran-semantic-api/internal/models"
	"github.com/sandrotonal/quran-semantic-api/internal/repository"
)

// Embedder maps a text to a fixed-dimension vector. Satisfied by
// pkg/schema/services.EmbeddingsService.
type Embedder interface {
	EmbedVerse(ctx context.Context, text string) ([]float64, error)
}

// EmbeddingResolver fronts the embedding store with the embedding provider,
// implementing get-or-create for verse embeddings.
type EmbeddingResolver struct {
	embeddings repository.EmbeddingRepository
	embedder   Embedder
}

// NewEmbeddingResolver creates a new embedding resolver
func NewEmbeddingResolver(embeddings repository.EmbeddingRepository, embedder Embedder) *EmbeddingResolver {
	return &EmbeddingResolver{
		embeddings: embeddings,
		embedder:   embedder,
	}
}

// Resolve returns the stored vector for a verse id, generating and storing
// it on a miss. No locking: embeddings derive purely from stable text, so
// concurrent generation for the same id converges to the same value and the
// last-writer-wins upsert is safe.
func (r *EmbeddingResolver) Resolve(ctx context.Context, verseID int64, text string) ([]float64, error) {
	emb, err := r.embeddings.Get(ctx, verseID)
	if err == nil {
		return emb.Vector, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	vector, err := r.embedder.EmbedVerse(ctx, text)
	if err != nil {
		return nil, &models.EmbeddingProviderError{VerseID: verseID, Err: err}
	}

	if err := r.embeddings.Upsert(ctx, verseID, vector); err != nil {
		return nil, err
	}
	return vector, nil
}
