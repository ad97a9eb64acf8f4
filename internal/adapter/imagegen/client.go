package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"
)

// Client exposes operations against the image-generation provider.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Fetch(ctx context.Context, reference string) ([]byte, error)
}

// HTTPClient implements Client via the provider's HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// generationRequest mirrors the JSON payload sent to the provider.
type generationRequest struct {
	Prompt  string `json:"prompt"`
	Size    string `json:"size"`
	Quality string `json:"quality"`
	N       int    `json:"n"`
}

// generationResponse mirrors the JSON payload returned by the provider.
type generationResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

// NewHTTPClient creates an HTTP image provider client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse provider url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("provider url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// Generate submits the prompt and returns the reference to the rendered image.
func (c *HTTPClient) Generate(ctx context.Context, prompt string) (string, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/v1/images/generations")

	payload, err := json.Marshal(generationRequest{
		Prompt:  prompt,
		Size:    "1024x1024",
		Quality: "standard",
		N:       1,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("generation request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return "", fmt.Errorf("provider error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	var data generationResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return "", err
	}
	if len(data.Data) == 0 || data.Data[0].URL == "" {
		return "", fmt.Errorf("provider returned no image")
	}
	return data.Data[0].URL, nil
}

// Fetch downloads the referenced image bytes.
func (c *HTTPClient) Fetch(ctx context.Context, reference string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reference, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("image fetch failed", slog.Int("status", resp.StatusCode), slog.String("reference", reference))
		return nil, fmt.Errorf("fetch image: %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
