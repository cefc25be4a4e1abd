// Package gateway holds clients for external collaborators.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/spec-kit/travel-api/internal/config"
)

// MLDestination is one destination record as served by the ML service.
type MLDestination struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	City         string  `json:"city"`
	Location     string  `json:"location"`
	Description  string  `json:"description"`
	OpeningHours string  `json:"openingHours"`
	ClosingHours string  `json:"closingHours"`
	Rating       float64 `json:"rating"`
}

// MLClient talks to the external recommendation service. Recommendation
// calls are independent: no retry, no caching.
type MLClient interface {
	Predict(ctx context.Context, city string) (json.RawMessage, error)
	FetchDestinations(ctx context.Context) ([]MLDestination, error)
}

type mlClient struct {
	baseURL string
	http    *http.Client
}

// NewMLClient builds a client with the configured per-call timeout.
func NewMLClient(cfg config.MLConfig) MLClient {
	return &mlClient{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout()},
	}
}

// Predict forwards a city to the ML service and relays its recommendation
// payload. When the response carries no "recommendation" field the whole
// body is relayed, mirroring the upstream contract.
func (c *mlClient) Predict(ctx context.Context, city string) (json.RawMessage, error) {
	body, err := json.Marshal(map[string]string{"city": city})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ml service returned status %d: %s", resp.StatusCode, upstreamMessage(raw))
	}

	var envelope struct {
		Recommendation json.RawMessage `json:"recommendation"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Recommendation) > 0 {
		return envelope.Recommendation, nil
	}
	return raw, nil
}

// FetchDestinations pulls the full destination catalog from the ML service.
func (c *mlClient) FetchDestinations(ctx context.Context) ([]MLDestination, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/destinations", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ml service returned status %d: %s", resp.StatusCode, upstreamMessage(raw))
	}

	var envelope struct {
		Destinations    []MLDestination `json:"destinations"`
		Recommendations []MLDestination `json:"recommendations"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode ml destinations: %w", err)
	}
	if envelope.Destinations != nil {
		return envelope.Destinations, nil
	}
	return envelope.Recommendations, nil
}

func upstreamMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return string(raw)
}
