package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pgvector/pgvector-go"
	"github.com/sandrotonal/quran-semantic-api/internal/models"
	"github.com/sandrotonal/quran-semantic-api/internal/repository"
)

// EmbeddingRepository implements repository.EmbeddingRepository for
// PostgreSQL with pgvector
type EmbeddingRepository struct {
	db *sqlx.DB
}

// NewEmbeddingRepository creates a new PostgreSQL embedding repository
func NewEmbeddingRepository(db *sqlx.DB) repository.EmbeddingRepository {
	return &EmbeddingRepository{db: db}
}

// Get returns the embedding for a verse id
func (r *EmbeddingRepository) Get(ctx context.Context, verseID int64) (*models.Embedding, error) {
	var row struct {
		VerseID   int64           `db:"verse_id"`
		Embedding pgvector.Vector `db:"embedding"`
		CreatedAt sql.NullTime    `db:"created_at"`
	}
	err := r.db.GetContext(ctx, &row, `
		SELECT verse_id, embedding, created_at
		FROM embeddings
		WHERE verse_id = $1
	`, verseID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, &models.StorageError{Op: "get embedding", Err: err}
	}

	emb := &models.Embedding{
		VerseID: row.VerseID,
		Vector:  float64Slice(row.Embedding.Slice()),
	}
	if row.CreatedAt.Valid {
		emb.CreatedAt = row.CreatedAt.Time
	}
	return emb, nil
}

// Upsert stores the vector for a verse id, overwriting any existing record
// and refreshing created_at
func (r *EmbeddingRepository) Upsert(ctx context.Context, verseID int64, vector []float64) error {
	vec := pgvector.NewVector(float32Slice(vector))

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO embeddings (verse_id, embedding, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (verse_id) DO UPDATE
		SET embedding = EXCLUDED.embedding, created_at = NOW()
	`, verseID, vec)
	if err != nil {
		return &models.StorageError{Op: "upsert embedding", Err: err}
	}
	return nil
}

// ListAll returns every stored embedding
func (r *EmbeddingRepository) ListAll(ctx context.Context) ([]models.Embedding, error) {
	rows, err := r.db.QueryxContext(ctx, `
		SELECT verse_id, embedding, created_at
		FROM embeddings
		ORDER BY verse_id
	`)
	if err != nil {
		return nil, &models.StorageError{Op: "list embeddings", Err: err}
	}
	defer rows.Close()

	var results []models.Embedding
	for rows.Next() {
		var (
			verseID   int64
			vec       pgvector.Vector
			createdAt sql.NullTime
		)
		if err := rows.Scan(&verseID, &vec, &createdAt); err != nil {
			return nil, &models.StorageError{Op: "scan embedding", Err: fmt.Errorf("scan embedding row: %w", err)}
		}
		emb := models.Embedding{
			VerseID: verseID,
			Vector:  float64Slice(vec.Slice()),
		}
		if createdAt.Valid {
			emb.CreatedAt = createdAt.Time
		}
		results = append(results, emb)
	}

	if err := rows.Err(); err != nil {
		return nil, &models.StorageError{Op: "iterate embeddings", Err: err}
	}

	if results == nil {
		results = []models.Embedding{}
	}
	return results, nil
}

// float32Slice converts []float64 to []float32 for pgvector
func float32Slice(f64 []float64) []float32 {
	f32 := make([]float32, len(f64))
	for i, v := range f64 {
		f32[i] = float32(v)
	}
	return f32
}

// float64Slice converts a pgvector payload back to []float64
func float64Slice(f32 []float32) []float64 {
	f64 := make([]float64, len(f32))
	for i, v := range f32 {
		f64[i] = float64(v)
	}
	return f64
}
