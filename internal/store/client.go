package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"wortschatz/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecentLimit is the page size of the "recently added" view
const RecentLimit = 10

// Client talks to the remote word store over its REST API.
// It implements repository.WordStore and never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a store client for baseURL
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With(zap.String("component", "store")),
	}
}

// ListWords fetches one page of the catalogue, optionally filtered by category
func (c *Client) ListWords(ctx context.Context, page, perPage int, categoryID *int) (*domain.WordPage, error) {
	if page < 1 {
		page = 1
	}
	q := url.Values{}
	q.Set("skip", strconv.Itoa((page-1)*perPage))
	q.Set("limit", strconv.Itoa(perPage))
	if categoryID != nil {
		q.Set("category_id", strconv.Itoa(*categoryID))
	}

	var out domain.WordPage
	if err := c.do(ctx, "fetch words", http.MethodGet, "/words/", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListRecentWords fetches the newest words, newest first
func (c *Client) ListRecentWords(ctx context.Context, limit int) ([]domain.Word, error) {
	q := url.Values{}
	q.Set("skip", "0")
	q.Set("limit", strconv.Itoa(limit))
	q.Set("order_by", "created_at")
	q.Set("order", "desc")

	var out domain.WordPage
	if err := c.do(ctx, "fetch recent words", http.MethodGet, "/words/", q, nil, &out); err != nil {
		return nil, err
	}
	return out.Words, nil
}

// GetWord fetches a single word
func (c *Client) GetWord(ctx context.Context, id int) (*domain.Word, error) {
	var out domain.Word
	if err := c.do(ctx, "fetch word", http.MethodGet, wordPath(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateWord submits a new word
func (c *Client) CreateWord(ctx context.Context, payload domain.WordPayload) (*domain.Word, error) {
	var out domain.Word
	if err := c.do(ctx, "create word", http.MethodPost, "/words/", nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateWord replaces the details of an existing word
func (c *Client) UpdateWord(ctx context.Context, id int, payload domain.WordPayload) (*domain.Word, error) {
	var out domain.Word
	if err := c.do(ctx, "update word", http.MethodPut, wordPath(id), nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteWord removes a word permanently
func (c *Client) DeleteWord(ctx context.Context, id int) error {
	return c.do(ctx, "delete word", http.MethodDelete, wordPath(id), nil, nil, nil)
}

// ListCategories fetches every category
func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	if err := c.do(ctx, "fetch categories", http.MethodGet, "/categories/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCategory creates a category by name
func (c *Client) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	var out domain.Category
	body := domain.CategoryPayload{Name: name}
	if err := c.do(ctx, "create category", http.MethodPost, "/categories/", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func wordPath(id int) string {
	return "/words/" + strconv.Itoa(id)
}

// do performs one round trip and maps every failure onto *domain.StoreError
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode body: %w", op, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("Store request",
		zap.String("op", op),
		zap.String("method", method),
		zap.String("url", reqURL),
		zap.String("request_id", requestID),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Store unreachable",
			zap.String("op", op),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return domain.NewNetworkError(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := readDetail(resp.Body)
		c.logger.Warn("Store rejected request",
			zap.String("op", op),
			zap.String("request_id", requestID),
			zap.Int("status", resp.StatusCode),
			zap.String("detail", detail),
		)
		return domain.NewRemoteRejection(op, resp.StatusCode, detail)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Warn("Store returned malformed body",
			zap.String("op", op),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return domain.NewRemoteRejection(op, resp.StatusCode, "")
	}
	return nil
}

// readDetail extracts the human-readable message of an error body.
// The store sends {"detail": "..."} or, for schema errors, {"detail": [{"msg": "..."}]}.
func readDetail(r io.Reader) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.NewDecoder(io.LimitReader(r, 64<<10)).Decode(&body); err != nil || len(body.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(body.Detail, &text); err == nil {
		return text
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body.Detail, &items); err == nil && len(items) > 0 {
		return items[0].Msg
	}
	return ""
}
