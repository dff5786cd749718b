package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerseCountsCoverFullCorpus(t *testing.T) {
	total := 0
	for surah := 1; surah <= 114; surah++ {
		count := VerseCount(surah)
		assert.Positive(t, count, "surah %d", surah)
		total += count
	}
	assert.Equal(t, TotalVerses, total)
}

func TestVerseCount(t *testing.T) {
	assert.Equal(t, 7, VerseCount(1))
	assert.Equal(t, 286, VerseCount(2))
	assert.Equal(t, 6, VerseCount(114))
	assert.Equal(t, 0, VerseCount(0))
	assert.Equal(t, 0, VerseCount(115))
	assert.Equal(t, 0, VerseCount(-1))
}

func TestValidReference(t *testing.T) {
	assert.True(t, ValidReference(1, 1))
	assert.True(t, ValidReference(1, 7))
	assert.True(t, ValidReference(114, 6))
	assert.False(t, ValidReference(1, 8))
	assert.False(t, ValidReference(1, 0))
	assert.False(t, ValidReference(0, 1))
	assert.False(t, ValidReference(115, 1))
}
