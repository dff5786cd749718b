package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcikkuran_FetchVerse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/surah/1/verse/1/translations":
			fmt.Fprint(w, `{"data":[
				{"text":"other translation","author":{"id":3}},
				{"text":"wanted translation","author":{"id":11}}
			]}`)
		case "/surah/1/verse/1":
			fmt.Fprint(w, `{"data":{"verse":{"text":"arabic script"}}}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := NewAcikkuranClient(server.URL, 11)
	text, err := client.FetchVerse(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "wanted translation", text.TranslatedText)
	assert.Equal(t, "arabic script", text.ArabicText)
}

func TestAcikkuran_ArabicFailureIsNotFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/surah/1/verse/1/translations" {
			fmt.Fprint(w, `{"data":[{"text":"translation","author":{"id":11}}]}`)
			return
		}
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewAcikkuranClient(server.URL, 11)
	text, err := client.FetchVerse(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "translation", text.TranslatedText)
	assert.Empty(t, text.ArabicText)
}

func TestAcikkuran_MissingTranslatorFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[{"text":"translation","author":{"id":3}}]}`)
	}))
	defer server.Close()

	client := NewAcikkuranClient(server.URL, 11)
	_, err := client.FetchVerse(context.Background(), 1, 1)
	assert.Error(t, err)
}

func TestAlQuranCloud_FetchArabic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ayah/112:1/quran-uthmani", r.URL.Path)
		fmt.Fprint(w, `{"data":{"text":"uthmani script"}}`)
	}))
	defer server.Close()

	client := NewAlQuranCloudClient(server.URL)
	arabic, err := client.FetchArabic(context.Background(), 112, 1)
	require.NoError(t, err)
	assert.Equal(t, "uthmani script", arabic)
}

func TestAlQuranCloud_EmptyTextFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{"text":""}}`)
	}))
	defer server.Close()

	client := NewAlQuranCloudClient(server.URL)
	_, err := client.FetchArabic(context.Background(), 1, 1)
	assert.Error(t, err)
}

func TestAlQuranCloud_HTTPErrorFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewAlQuranCloudClient(server.URL)
	_, err := client.FetchArabic(context.Background(), 1, 1)
	assert.Error(t, err)
}
