package services

import (
	"context"
	"errors"
	"log"

	"github.com/sandrotonal/quran-semantic-api/internal/config"
	"github.com/sandrotonal/quran-semantic-api/internal/models"
	"github.com/sandrotonal/quran-semantic-api/internal/providers"
	"github.com/sandrotonal/quran-semantic-api/internal/repository"
)

// VerseResolver fronts the verse store with the external text providers,
// implementing get-or-fetch-and-cache for verse text.
type VerseResolver struct {
	verses   repository.VerseRepository
	primary  providers.TextProvider
	fallback providers.ArabicProvider
}

// NewVerseResolver creates a new verse resolver
func NewVerseResolver(
	verses repository.VerseRepository,
	primary providers.TextProvider,
	fallback providers.ArabicProvider,
) *VerseResolver {
	return &VerseResolver{
		verses:   verses,
		primary:  primary,
		fallback: fallback,
	}
}

// Resolve returns the cached verse for (surah, verse), fetching and caching
// it from the providers when missing. A cached record with empty Arabic text
// triggers a re-fetch; a cached record with empty translated text does not.
func (r *VerseResolver) Resolve(ctx context.Context, surah, verse int) (*models.Verse, error) {
	if !config.ValidReference(surah, verse) {
		return nil, &models.InvalidReferenceError{Surah: surah, Verse: verse}
	}

	cached, err := r.verses.Get(ctx, surah, verse)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if cached != nil && cached.ArabicText != "" {
		return cached, nil
	}

	text, err := r.primary.FetchVerse(ctx, surah, verse)
	if err != nil {
		return nil, &models.UpstreamFetchError{Surah: surah, Verse: verse, Err: err}
	}

	arabic := text.ArabicText
	if arabic == "" {
		fallbackArabic, err := r.fallback.FetchArabic(ctx, surah, verse)
		if err != nil {
			// Translated text is the primary value; a missing Arabic
			// script must not fail the resolution.
			log.Printf("fallback arabic fetch failed for %d:%d: %v", surah, verse, err)
			arabic = models.ArabicUnavailable
		} else {
			arabic = fallbackArabic
		}
	}

	if cached == nil {
		// Insert is idempotent; a concurrent first writer wins and the
		// final Get returns whatever landed.
		if _, err := r.verses.Insert(ctx, surah, verse, arabic, text.TranslatedText); err != nil {
			return nil, err
		}
	} else if err := r.verses.FillArabic(ctx, surah, verse, arabic); err != nil {
		return nil, err
	}

	return r.verses.Get(ctx, surah, verse)
}
