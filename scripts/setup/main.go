// setup creates the database schema: the pgvector extension, the verses
// table and the embeddings table.
//
// Environment variables:
//   POSTGRES_URI          - PostgreSQL connection string
//   EMBEDDING_DIMENSIONS  - vector column dimension (default 768)
//
// Usage:
//   go run scripts/setup/main.go

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	godotenv.Load()

	postgresURI := os.Getenv("POSTGRES_URI")
	if postgresURI == "" {
		log.Fatal("POSTGRES_URI environment variable is required")
	}

	dimensions := 768
	if v := os.Getenv("EMBEDDING_DIMENSIONS"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("Invalid EMBEDDING_DIMENSIONS: %v", err)
		}
		dimensions = d
	}

	ctx := context.Background()

	db, err := sqlx.ConnectContext(ctx, "postgres", postgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS vector`,
		`CREATE TABLE IF NOT EXISTS verses (
			id              BIGSERIAL PRIMARY KEY,
			surah           INTEGER NOT NULL,
			verse           INTEGER NOT NULL,
			arabic_text     TEXT NOT NULL DEFAULT '',
			translated_text TEXT NOT NULL DEFAULT '',
			UNIQUE (surah, verse)
		)`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS embeddings (
			verse_id   BIGINT PRIMARY KEY REFERENCES verses(id),
			embedding  vector(%d) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`, dimensions),
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			log.Fatalf("Failed to execute statement: %v\n%s", err, stmt)
		}
	}

	log.Printf("Schema ready (embedding dimension %d)", dimensions)
}
