// Package source fetches the raw restaurant document from the phoneline
// dashboard backend. It is deliberately thin: one GET per session, no
// retries; callers degrade to an empty document on any error.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/phoneline/voicemenu/internal/models"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchRestaurantInfo fetches the document for a phone number. The
// leading "+" is stripped to match the dashboard route. Transport
// failures, non-2xx statuses and undecodable bodies are all errors; the
// caller decides how to degrade.
func (c *Client) FetchRestaurantInfo(ctx context.Context, phoneNumber string) (*models.RawDocument, error) {
	phone := strings.TrimPrefix(strings.TrimSpace(phoneNumber), "+")
	url := fmt.Sprintf("%s/api/v1/restaurant/get-restaurant-info/%s", c.baseURL, phone)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building restaurant info request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching restaurant info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching restaurant info: unexpected status %s", resp.Status)
	}

	var doc models.RawDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding restaurant info: %w", err)
	}

	return &doc, nil
}
