package services

import (
	"context"
	"errors"
	"log"
	"math"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sandrotonal/quran-semantic-api/internal/models"
	"github.com/sandrotonal/quran-semantic-api/internal/repository"
)

// SimilarityEngine ranks cached verses by cosine similarity of their
// embeddings against a target verse. Candidates are limited to what the
// verse store already holds; the corpus is not eagerly pre-populated.
type SimilarityEngine struct {
	verses            repository.VerseRepository
	verseResolver     *VerseResolver
	embeddingResolver *EmbeddingResolver

	threshold      float64
	workers        int
	resolveTimeout time.Duration
}

// NewSimilarityEngine creates a new similarity engine. threshold is the
// minimum score a candidate must reach, workers bounds the embedding
// fan-out, and resolveTimeout bounds target resolution.
func NewSimilarityEngine(
	verses repository.VerseRepository,
	verseResolver *VerseResolver,
	embeddingResolver *EmbeddingResolver,
	threshold float64,
	workers int,
	resolveTimeout time.Duration,
) *SimilarityEngine {
	if workers < 1 {
		workers = 1
	}
	return &SimilarityEngine{
		verses:            verses,
		verseResolver:     verseResolver,
		embeddingResolver: embeddingResolver,
		threshold:         threshold,
		workers:           workers,
		resolveTimeout:    resolveTimeout,
	}
}

// FindSimilar resolves the target verse and returns up to limit cached
// verses whose embedding scores at or above the threshold, sorted descending
// by score. Ties keep the store-listing order. A limit of zero or less
// yields the resolved center verse and an empty list.
func (e *SimilarityEngine) FindSimilar(ctx context.Context, surah, verse, limit int) (*models.Verse, []models.ScoredVerse, error) {
	// Target resolution is bounded so a stalled provider fails fast
	// instead of dragging the whole candidate scan behind it.
	tctx, cancel := context.WithTimeout(ctx, e.resolveTimeout)
	defer cancel()

	target, err := e.verseResolver.Resolve(tctx, surah, verse)
	if err != nil {
		return nil, nil, timeoutOr(err, "resolve target verse")
	}

	targetVec, err := e.embeddingResolver.Resolve(tctx, target.ID, target.TranslatedText)
	if err != nil {
		return nil, nil, timeoutOr(err, "resolve target embedding")
	}

	if limit <= 0 {
		return target, []models.ScoredVerse{}, nil
	}

	candidates, err := e.verses.ListAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	// Scores land in per-candidate slots so the gather below preserves
	// store-listing order regardless of completion order.
	type slot struct {
		ok     bool
		scored models.ScoredVerse
	}
	slots := make([]slot, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, cand := range candidates {
		if cand.ID == target.ID {
			continue
		}
		g.Go(func() error {
			vec, err := e.embeddingResolver.Resolve(gctx, cand.ID, cand.TranslatedText)
			if err != nil {
				// One flaky candidate must never abort the batch.
				log.Printf("similarity: skipping candidate %d:%d: %v", cand.Surah, cand.Verse, err)
				return nil
			}

			score, err := CosineSimilarity(targetVec, vec)
			if err != nil {
				// Dimension mismatch means store corruption; surface it.
				return err
			}

			if score >= e.threshold {
				slots[i] = slot{ok: true, scored: models.ScoredVerse{
					Surah:          cand.Surah,
					Verse:          cand.Verse,
					ArabicText:     cand.ArabicText,
					TranslatedText: cand.TranslatedText,
					Score:          score,
				}}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	results := make([]models.ScoredVerse, 0, len(slots))
	for _, s := range slots {
		if s.ok {
			results = append(results, s.scored)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return target, results, nil
}

// CosineSimilarity computes dot(a,b) / (|a|*|b|). Vectors of differing
// length fail with DimensionMismatchError. A zero vector scores 0 against
// anything.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, &models.DimensionMismatchError{LenA: len(a), LenB: len(b)}
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// timeoutOr converts a deadline-induced failure into a TimeoutError and
// passes every other error through untouched.
func timeoutOr(err error, op string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &models.TimeoutError{Op: op, Err: err}
	}
	return err
}
