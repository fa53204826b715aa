// Package analysis calls the external email classification service.
package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"stayops/internal/domain/ticket"
	"stayops/internal/shared/config"
	"stayops/internal/shared/logger"
)

// Error wraps any transport or protocol failure talking to the analysis
// service. Callers fall back to default classification on it.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("analysis: request failed: %v", e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Result is the classification returned for one email.
type Result struct {
	Category            string
	CategoryConfidence  float64
	Sentiment           float64
	SentimentConfidence float64
	BookingInfo         *ticket.BookingInfo
}

type analyzeRequest struct {
	Body      string `json:"body"`
	Subject   string `json:"subject"`
	FromEmail string `json:"from_email"`
}

type analyzeResponse struct {
	Analysis struct {
		Category            string              `json:"category"`
		CategoryConfidence  float64             `json:"category_confidence"`
		Sentiment           float64             `json:"sentiment"`
		SentimentConfidence float64             `json:"sentiment_confidence"`
		BookingInfo         *ticket.BookingInfo `json:"booking_info"`
	} `json:"analysis"`
}

type Client struct {
	url        string
	httpClient *http.Client
	logger     logger.Interface
}

func NewClient(cfg *config.AnalysisConfig, log logger.Interface) *Client {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		url:        cfg.URL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     log.Named("analysis.client"),
	}
}

// Analyze classifies one email. There is no retry here; the ingestion
// pipeline tolerates failures and applies defaults.
func (c *Client) Analyze(ctx context.Context, subject, body, fromEmail string) (*Result, error) {
	payload, err := json.Marshal(analyzeRequest{
		Body:      body,
		Subject:   subject,
		FromEmail: fromEmail,
	})
	if err != nil {
		return nil, &Error{Err: fmt.Errorf("failed to encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, &Error{Err: fmt.Errorf("failed to build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &Error{Err: fmt.Errorf("unexpected status %d: %s", resp.StatusCode, snippet)}
	}

	var decoded analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, &Error{Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	info := decoded.Analysis.BookingInfo
	if info.IsEmpty() {
		info = nil
	}

	return &Result{
		Category:            decoded.Analysis.Category,
		CategoryConfidence:  decoded.Analysis.CategoryConfidence,
		Sentiment:           decoded.Analysis.Sentiment,
		SentimentConfidence: decoded.Analysis.SentimentConfidence,
		BookingInfo:         info,
	}, nil
}
