package providers

import "context"

// VerseText is the text payload supplied by a provider for one verse
// reference. Arabic may be empty when the provider only carries the
// translation.
type VerseText struct {
	TranslatedText string
	ArabicText     string
}

// TextProvider supplies canonical text for a verse reference.
type TextProvider interface {
	FetchVerse(ctx context.Context, surah, verse int) (*VerseText, error)
}

// ArabicProvider supplies the Arabic script for a verse reference. Used as
// the fallback when the primary provider lacks it.
type ArabicProvider interface {
	FetchArabic(ctx context.Context, surah, verse int) (string, error)
}
