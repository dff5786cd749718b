package models

import "time"

// ArabicUnavailable is stored as the Arabic text when both the primary and
// fallback sources fail. Translated text is the primary value; Arabic is
// best-effort.
const ArabicUnavailable = "Arapça metin yüklenemedi."

// Verse is a single cached verse, identified by (Surah, Verse).
type Verse struct {
	ID             int64  `json:"id" db:"id"`
	Surah          int    `json:"surah" db:"surah"`
	Verse          int    `json:"verse" db:"verse"`
	ArabicText     string `json:"arabic_text" db:"arabic_text"`
	TranslatedText string `json:"translated_text" db:"translated_text"`
}

// Embedding is the stored vector for one verse. At most one per verse id;
// regenerating overwrites the record and refreshes CreatedAt.
type Embedding struct {
	VerseID   int64     `json:"verse_id" db:"verse_id"`
	Vector    []float64 `json:"vector"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ScoredVerse represents a candidate verse with its similarity score,
// valid only for the lifetime of one request.
type ScoredVerse struct {
	Surah          int     `json:"surah"`
	Verse          int     `json:"verse"`
	ArabicText     string  `json:"arabic"`
	TranslatedText string  `json:"text"`
	Score          float64 `json:"score"`
}

// VerseMeta is resolution metadata returned alongside a verse.
type VerseMeta struct {
	SurahVerseCount int `json:"surah_verse_count"`
}

// VerseResponse is the response for GET /verse/:surah/:verse.
type VerseResponse struct {
	Verse
	Meta VerseMeta `json:"metadata"`
}

// SimilarRequest is the request body for POST /similar.
type SimilarRequest struct {
	Surah int `json:"surah"`
	Verse int `json:"verse"`
	Limit int `json:"limit"`
}

// SimilarResponse is the response for POST /similar.
type SimilarResponse struct {
	Center  Verse         `json:"center"`
	Similar []ScoredVerse `json:"similar"`
}
