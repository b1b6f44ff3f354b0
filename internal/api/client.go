package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"car_finder/internal/domain"
)

const (
	carsPath         = "/cars"
	scrapePath       = "/scrape"
	scrapeStatusPath = "/scrape-status"
	trainPath        = "/train"

	// maxErrorBody bounds how much of an unexpected body ends up in an error.
	maxErrorBody = 4 << 10
)

// Config holds backend client configuration.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Client talks to the car finder backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *slog.Logger
}

// New creates a new backend client. BaseURL includes the API prefix,
// e.g. http://localhost:5000/api.
func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		logger:    logger.With("component", "api"),
	}
}

// ListCars fetches the full listing collection.
func (c *Client) ListCars(ctx context.Context) ([]domain.Car, error) {
	var cars []domain.Car
	if err := c.do(ctx, http.MethodGet, carsPath, nil, &cars, true); err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	if cars == nil {
		cars = []domain.Car{}
	}

	c.logger.Debug("fetched cars", "count", len(cars))
	return cars, nil
}

// StartScrape asks the backend to start a scrape job.
func (c *Client) StartScrape(ctx context.Context) (*domain.ScrapeAccepted, error) {
	var accepted domain.ScrapeAccepted
	if err := c.do(ctx, http.MethodPost, scrapePath, nil, &accepted, false); err != nil {
		return nil, fmt.Errorf("start scrape: %w", err)
	}

	c.logger.Debug("scrape accepted", "message", accepted.Message)
	return &accepted, nil
}

// ScrapeStatus fetches the status of the current scrape job.
func (c *Client) ScrapeStatus(ctx context.Context) (*domain.ScrapeStatus, error) {
	var status domain.ScrapeStatus
	if err := c.do(ctx, http.MethodGet, scrapeStatusPath, nil, &status, false); err != nil {
		return nil, fmt.Errorf("scrape status: %w", err)
	}

	c.logger.Debug("scrape status", "status", status.Status, "message", status.Message)
	return &status, nil
}

// SubmitFeedback posts a like/dislike signal and returns the backend's message.
func (c *Client) SubmitFeedback(ctx context.Context, fb domain.Feedback) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, trainPath, fb, &resp, true); err != nil {
		return "", fmt.Errorf("submit feedback: %w", err)
	}
	return resp.Message, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any, requireJSON bool) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}

	if requireJSON && !isJSON(resp.Header.Get("Content-Type")) {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &ContentTypeError{
			ContentType: resp.Header.Get("Content-Type"),
			Body:        string(text),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func statusError(resp *http.Response) *StatusError {
	serr := &StatusError{StatusCode: resp.StatusCode}
	if !isJSON(resp.Header.Get("Content-Type")) {
		return serr
	}

	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&body); err != nil {
		return serr
	}

	serr.Message = body.Message
	if body.Error != "" {
		if serr.Message != "" {
			serr.Message += " "
		}
		serr.Message += strings.TrimSpace(body.Error)
	}
	return serr
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.Contains(contentType, "application/json")
	}
	return mediaType == "application/json"
}
