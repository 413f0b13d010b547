package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/couchcryptid/hackathon-scout/internal/observability"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client implements domain.Retriever against the generative engine's
// generateContent REST endpoint.
type Client struct {
	apiKey     string
	model      string
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a retrieval client. One lookup maps to exactly one
// generateContent call; there is no retry or backoff.
func NewClient(apiKey, model string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: defaultBaseURL,
		metrics: metrics,
		logger:  logger,
	}
}

// Retrieve sends the schema-constrained request for region and returns the
// engine's raw JSON payload. Failures carry a human-readable cause and leave
// no state behind.
func (c *Client) Retrieve(ctx context.Context, region string) ([]byte, error) {
	body, err := json.Marshal(BuildRequest(region))
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	u := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RetrievalRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("retrieval request: %w", err)
	}
	defer resp.Body.Close()
	c.metrics.RetrievalDuration.Observe(time.Since(start).Seconds())

	if resp.StatusCode != http.StatusOK {
		c.metrics.RetrievalRequests.WithLabelValues("error").Inc()
		msg, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("engine error: status %d: %s", resp.StatusCode, msg)
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		c.metrics.RetrievalRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("decode response: %w", err)
	}

	text := decoded.text()
	if text == "" {
		c.metrics.RetrievalRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("engine returned no candidates for %q", region)
	}

	c.metrics.RetrievalRequests.WithLabelValues("success").Inc()
	c.logger.Debug("retrieval complete", "region", region, "payload_bytes", len(text))
	return []byte(text), nil
}

// Engine response types.

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content candidateContent `json:"content"`
}

type candidateContent struct {
	Parts []Part `json:"parts"`
}

// text concatenates the first candidate's text parts.
func (r generateResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}
