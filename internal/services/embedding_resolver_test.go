package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandrotonal/quran-semantic-api/internal/models"
)

func TestEmbeddingResolve_GeneratesOnMiss(t *testing.T) {
	embRepo := newFakeEmbeddingRepo()
	embedder := newFakeEmbedder()
	embedder.vectors["some verse"] = []float64{0.1, 0.2, 0.3}

	resolver := NewEmbeddingResolver(embRepo, embedder)

	vec, err := resolver.Resolve(context.Background(), 7, "some verse")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, vec)

	stored, err := embRepo.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, vec, stored.Vector)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestEmbeddingResolve_SecondCallHitsStore(t *testing.T) {
	embRepo := newFakeEmbeddingRepo()
	embedder := newFakeEmbedder()
	embedder.vectors["some verse"] = []float64{0.5}

	resolver := NewEmbeddingResolver(embRepo, embedder)

	_, err := resolver.Resolve(context.Background(), 7, "some verse")
	require.NoError(t, err)
	_, err = resolver.Resolve(context.Background(), 7, "some verse")
	require.NoError(t, err)

	assert.Equal(t, 1, embedder.callCount())
}

func TestEmbeddingResolve_ProviderFailure(t *testing.T) {
	embRepo := newFakeEmbeddingRepo()
	embedder := newFakeEmbedder()
	embedder.failOn["some verse"] = true

	resolver := NewEmbeddingResolver(embRepo, embedder)

	_, err := resolver.Resolve(context.Background(), 7, "some verse")
	require.Error(t, err)

	var provErr *models.EmbeddingProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, int64(7), provErr.VerseID)

	_, err = embRepo.Get(context.Background(), 7)
	assert.Error(t, err)
}

func TestEmbeddingUpsert_Overwrites(t *testing.T) {
	embRepo := newFakeEmbeddingRepo()

	ctx := context.Background()
	require.NoError(t, embRepo.Upsert(ctx, 7, []float64{1, 2}))
	first, err := embRepo.Get(ctx, 7)
	require.NoError(t, err)

	require.NoError(t, embRepo.Upsert(ctx, 7, []float64{3, 4}))
	second, err := embRepo.Get(ctx, 7)
	require.NoError(t, err)

	assert.Equal(t, []float64{3, 4}, second.Vector)
	assert.False(t, second.CreatedAt.Before(first.CreatedAt))
}
