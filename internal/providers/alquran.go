package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const uthmaniEdition = "quran-uthmani"

// AlQuranCloudClient implements ArabicProvider against the Al Quran Cloud
// API, serving the Uthmani script.
type AlQuranCloudClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAlQuranCloudClient creates a new Al Quran Cloud API client
func NewAlQuranCloudClient(baseURL string) *AlQuranCloudClient {
	return &AlQuranCloudClient{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

type alquranAyahResponse struct {
	Data struct {
		Text string `json:"text"`
	} `json:"data"`
}

// FetchArabic fetches the Uthmani Arabic script for a verse reference
func (c *AlQuranCloudClient) FetchArabic(ctx context.Context, surah, verse int) (string, error) {
	url := fmt.Sprintf("%s/ayah/%d:%d/%s", c.baseURL, surah, verse, uthmaniEdition)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call alquran.cloud API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("alquran.cloud API status %d: %s", resp.StatusCode, string(body))
	}

	var ayahResp alquranAyahResponse
	if err := json.NewDecoder(resp.Body).Decode(&ayahResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if ayahResp.Data.Text == "" {
		return "", fmt.Errorf("empty arabic text for %d:%d", surah, verse)
	}
	return ayahResp.Data.Text, nil
}
