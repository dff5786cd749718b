package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sandrotonal/quran-semantic-api/internal/models"
	"github.com/sandrotonal/quran-semantic-api/internal/providers"
	"github.com/sandrotonal/quran-semantic-api/internal/repository"
)

// fakeVerseRepo is an in-memory repository.VerseRepository.
type fakeVerseRepo struct {
	mu     sync.Mutex
	verses []models.Verse
	nextID int64
}

func newFakeVerseRepo() *fakeVerseRepo {
	return &fakeVerseRepo{nextID: 1}
}

func (r *fakeVerseRepo) Get(_ context.Context, surah, verse int) (*models.Verse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.verses {
		if r.verses[i].Surah == surah && r.verses[i].Verse == verse {
			v := r.verses[i]
			return &v, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeVerseRepo) Insert(_ context.Context, surah, verse int, arabicText, translatedText string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.verses {
		if r.verses[i].Surah == surah && r.verses[i].Verse == verse {
			return false, nil
		}
	}
	r.verses = append(r.verses, models.Verse{
		ID:             r.nextID,
		Surah:          surah,
		Verse:          verse,
		ArabicText:     arabicText,
		TranslatedText: translatedText,
	})
	r.nextID++
	return true, nil
}

func (r *fakeVerseRepo) FillArabic(_ context.Context, surah, verse int, arabicText string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.verses {
		if r.verses[i].Surah == surah && r.verses[i].Verse == verse && r.verses[i].ArabicText == "" {
			r.verses[i].ArabicText = arabicText
		}
	}
	return nil
}

func (r *fakeVerseRepo) ListAll(_ context.Context) ([]models.Verse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Verse, len(r.verses))
	copy(out, r.verses)
	return out, nil
}

// seed inserts a verse directly, bypassing the resolver.
func (r *fakeVerseRepo) seed(surah, verse int, arabic, translated string) models.Verse {
	_, _ = r.Insert(context.Background(), surah, verse, arabic, translated)
	v, _ := r.Get(context.Background(), surah, verse)
	return *v
}

// fakeEmbeddingRepo is an in-memory repository.EmbeddingRepository.
type fakeEmbeddingRepo struct {
	mu         sync.Mutex
	embeddings map[int64]models.Embedding
}

func newFakeEmbeddingRepo() *fakeEmbeddingRepo {
	return &fakeEmbeddingRepo{embeddings: make(map[int64]models.Embedding)}
}

func (r *fakeEmbeddingRepo) Get(_ context.Context, verseID int64) (*models.Embedding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	emb, ok := r.embeddings[verseID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &emb, nil
}

func (r *fakeEmbeddingRepo) Upsert(_ context.Context, verseID int64, vector []float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.embeddings[verseID] = models.Embedding{
		VerseID:   verseID,
		Vector:    vector,
		CreatedAt: time.Now(),
	}
	return nil
}

func (r *fakeEmbeddingRepo) ListAll(_ context.Context) ([]models.Embedding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Embedding, 0, len(r.embeddings))
	for _, emb := range r.embeddings {
		out = append(out, emb)
	}
	return out, nil
}

// fakeEmbedder returns canned vectors keyed by text and counts calls.
type fakeEmbedder struct {
	mu      sync.Mutex
	vectors map[string][]float64
	failOn  map[string]bool
	calls   int
}

func newFakeEmbedder() *fakeEmbedder {
	return &fakeEmbedder{
		vectors: make(map[string][]float64),
		failOn:  make(map[string]bool),
	}
}

func (e *fakeEmbedder) EmbedVerse(_ context.Context, text string) ([]float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls++
	if e.failOn[text] {
		return nil, fmt.Errorf("embedding service unavailable")
	}
	vec, ok := e.vectors[text]
	if !ok {
		return nil, fmt.Errorf("no canned vector for %q", text)
	}
	return vec, nil
}

func (e *fakeEmbedder) callCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calls
}

// fakeTextProvider returns a canned payload and counts calls.
type fakeTextProvider struct {
	mu         sync.Mutex
	translated string
	arabic     string
	err        error
	calls      int
}

func (p *fakeTextProvider) FetchVerse(_ context.Context, surah, verse int) (*providers.VerseText, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return &providers.VerseText{
		TranslatedText: p.translated,
		ArabicText:     p.arabic,
	}, nil
}

func (p *fakeTextProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// fakeArabicProvider returns a canned Arabic string and counts calls.
type fakeArabicProvider struct {
	mu     sync.Mutex
	arabic string
	err    error
	calls  int
}

func (p *fakeArabicProvider) FetchArabic(_ context.Context, surah, verse int) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	return p.arabic, nil
}

func (p *fakeArabicProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}
