package models

import "fmt"

// InvalidReferenceError reports a (surah, verse) pair outside the canonical
// range. It is surfaced directly to the caller and never retried.
type InvalidReferenceError struct {
	Surah int
	Verse int
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("invalid verse reference %d:%d", e.Surah, e.Verse)
}

// UpstreamFetchError means the text provider chain was exhausted and no
// translated text could be obtained.
type UpstreamFetchError struct {
	Surah int
	Verse int
	Err   error
}

func (e *UpstreamFetchError) Error() string {
	return fmt.Sprintf("fetch verse %d:%d from upstream: %v", e.Surah, e.Verse, e.Err)
}

func (e *UpstreamFetchError) Unwrap() error { return e.Err }

// EmbeddingProviderError means the embedding provider failed for a text.
type EmbeddingProviderError struct {
	VerseID int64
	Err     error
}

func (e *EmbeddingProviderError) Error() string {
	return fmt.Sprintf("generate embedding for verse %d: %v", e.VerseID, e.Err)
}

func (e *EmbeddingProviderError) Unwrap() error { return e.Err }

// DimensionMismatchError indicates two vectors of different lengths reached
// the similarity computation. It signals store corruption and is never
// silently recovered.
type DimensionMismatchError struct {
	LenA int
	LenB int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("embedding dimension mismatch: %d vs %d", e.LenA, e.LenB)
}

// StorageError wraps an I/O failure from one of the persistent stores.
// Always fatal; retry policy, if any, belongs to the caller.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// TimeoutError reports that resolving the target verse or its embedding
// exceeded the request-scoped deadline.
type TimeoutError struct {
	Op  string
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s timed out: %v", e.Op, e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }
