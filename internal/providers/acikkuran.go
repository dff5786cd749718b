package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
)

// AcikkuranClient implements TextProvider against the Açık Kuran API.
// Translations come from one endpoint, the Arabic script from another;
// the Arabic fetch is best-effort and its failure is not an error.
type AcikkuranClient struct {
	baseURL      string
	translatorID int
	httpClient   *http.Client
}

// NewAcikkuranClient creates a new Açık Kuran API client
func NewAcikkuranClient(baseURL string, translatorID int) *AcikkuranClient {
	return &AcikkuranClient{
		baseURL:      baseURL,
		translatorID: translatorID,
		httpClient:   &http.Client{},
	}
}

type acikkuranTranslation struct {
	Text   string `json:"text"`
	Author struct {
		ID int `json:"id"`
	} `json:"author"`
}

type acikkuranTranslationsResponse struct {
	Data []acikkuranTranslation `json:"data"`
}

type acikkuranVerseResponse struct {
	Data struct {
		Verse struct {
			Text string `json:"text"`
		} `json:"verse"`
	} `json:"data"`
}

// FetchVerse fetches the configured translation and, best-effort, the Arabic
// script for a verse reference.
func (c *AcikkuranClient) FetchVerse(ctx context.Context, surah, verse int) (*VerseText, error) {
	url := fmt.Sprintf("%s/surah/%d/verse/%d/translations", c.baseURL, surah, verse)

	var transResp acikkuranTranslationsResponse
	if err := c.getJSON(ctx, url, &transResp); err != nil {
		return nil, fmt.Errorf("fetch translations for %d:%d: %w", surah, verse, err)
	}

	var translated string
	for _, t := range transResp.Data {
		if t.Author.ID == c.translatorID {
			translated = t.Text
			break
		}
	}
	if translated == "" {
		return nil, fmt.Errorf("translation by author %d not found for %d:%d", c.translatorID, surah, verse)
	}

	result := &VerseText{TranslatedText: translated}

	// Arabic is best-effort here; the resolver falls back to a secondary
	// provider when it comes back empty.
	verseURL := fmt.Sprintf("%s/surah/%d/verse/%d", c.baseURL, surah, verse)
	var verseResp acikkuranVerseResponse
	if err := c.getJSON(ctx, verseURL, &verseResp); err != nil {
		log.Printf("acikkuran: arabic fetch failed for %d:%d: %v", surah, verse, err)
		return result, nil
	}
	result.ArabicText = verseResp.Data.Verse.Text

	return result, nil
}

func (c *AcikkuranClient) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call acikkuran API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("acikkuran API status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
