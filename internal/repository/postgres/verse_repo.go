package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sandrotonal/quran-semantic-api/internal/models"
	"github.com/sandrotonal/quran-semantic-api/internal/repository"
)

// VerseRepository implements repository.VerseRepository for PostgreSQL
type VerseRepository struct {
	db *sqlx.DB
}

// NewVerseRepository creates a new PostgreSQL verse repository
func NewVerseRepository(db *sqlx.DB) repository.VerseRepository {
	return &VerseRepository{db: db}
}

// Get performs an exact-match lookup by (surah, verse)
func (r *VerseRepository) Get(ctx context.Context, surah, verse int) (*models.Verse, error) {
	var v models.Verse
	err := r.db.GetContext(ctx, &v, `
		SELECT id, surah, verse, arabic_text, translated_text
		FROM verses
		WHERE surah = $1 AND verse = $2
	`, surah, verse)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, &models.StorageError{Op: "get verse", Err: err}
	}
	return &v, nil
}

// Insert stores a new verse; an existing (surah, verse) pair makes the call
// a no-op reporting inserted=false.
func (r *VerseRepository) Insert(ctx context.Context, surah, verse int, arabicText, translatedText string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO verses (surah, verse, arabic_text, translated_text)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (surah, verse) DO NOTHING
	`, surah, verse, arabicText, translatedText)
	if err != nil {
		return false, &models.StorageError{Op: "insert verse", Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, &models.StorageError{Op: "insert verse", Err: err}
	}
	return n > 0, nil
}

// FillArabic sets the Arabic text of an existing record only when the stored
// Arabic text is empty.
func (r *VerseRepository) FillArabic(ctx context.Context, surah, verse int, arabicText string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE verses
		SET arabic_text = $3
		WHERE surah = $1 AND verse = $2 AND arabic_text = ''
	`, surah, verse, arabicText)
	if err != nil {
		return &models.StorageError{Op: "fill arabic text", Err: err}
	}
	return nil
}

// ListAll returns every stored verse in insertion order
func (r *VerseRepository) ListAll(ctx context.Context) ([]models.Verse, error) {
	var verses []models.Verse
	err := r.db.SelectContext(ctx, &verses, `
		SELECT id, surah, verse, arabic_text, translated_text
		FROM verses
		ORDER BY id
	`)
	if err != nil {
		return nil, &models.StorageError{Op: "list verses", Err: err}
	}
	if verses == nil {
		verses = []models.Verse{}
	}
	return verses, nil
}
