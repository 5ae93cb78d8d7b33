// Package api is the client of the remote recipe service. Responses
// are decoded at the boundary with required-field validation: a body
// the client cannot vouch for is a transport fault, never a partially
// populated record.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/brewlog/brew/pkg/recipe"
	"github.com/brewlog/brew/pkg/routing"
)

// TransportError covers network failures, non-2xx statuses, and
// malformed response bodies.
type TransportError struct {
	Op     string
	URL    string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("api: %s %s: status %d", e.Op, e.URL, e.Status)
	}
	return fmt.Sprintf("api: %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// CreatePayload is the body of one create request.
type CreatePayload struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Ingredients []string        `json:"ingredients"`
	Image       string          `json:"image"`
	Category    recipe.Category `json:"type"`
}

// Client talks to one recipe service instance.
type Client struct {
	router routing.Router
	http   *http.Client
	logger *zap.Logger
}

// NewClient builds a Client. client must not be nil; logger may be.
func NewClient(router routing.Router, client *http.Client, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{router: router, http: client, logger: logger}
}

// List fetches every record of one category.
func (c *Client) List(ctx context.Context, cat recipe.Category) ([]recipe.Record, error) {
	url, err := c.router.Resolve(cat)
	if err != nil {
		return nil, err
	}

	body, err := c.get(ctx, "list", url)
	if err != nil {
		return nil, err
	}

	var records []recipe.Record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, &TransportError{Op: "list", URL: url, Err: fmt.Errorf("decode: %w", err)}
	}
	for i := range records {
		if err := validateRecord(records[i]); err != nil {
			return nil, &TransportError{Op: "list", URL: url, Err: err}
		}
		records[i].Category = cat
	}
	return records, nil
}

// Get fetches one record by id.
func (c *Client) Get(ctx context.Context, cat recipe.Category, id string) (recipe.Record, error) {
	url, err := c.router.Item(cat, id)
	if err != nil {
		return recipe.Record{}, err
	}

	body, err := c.get(ctx, "get", url)
	if err != nil {
		return recipe.Record{}, err
	}

	var rec recipe.Record
	if err := json.Unmarshal(body, &rec); err != nil {
		return recipe.Record{}, &TransportError{Op: "get", URL: url, Err: fmt.Errorf("decode: %w", err)}
	}
	if err := validateRecord(rec); err != nil {
		return recipe.Record{}, &TransportError{Op: "get", URL: url, Err: err}
	}
	rec.Category = cat
	return rec, nil
}

// Create submits one new record and returns it with the id the service
// assigned. A 2xx response lacking an id is still a transport fault:
// identifier presence, not status alone, is the success criterion.
func (c *Client) Create(ctx context.Context, cat recipe.Category, payload CreatePayload) (recipe.Record, error) {
	url, err := c.router.Resolve(cat)
	if err != nil {
		return recipe.Record{}, err
	}

	if payload.Ingredients == nil {
		payload.Ingredients = []string{}
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return recipe.Record{}, &TransportError{Op: "create", URL: url, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return recipe.Record{}, &TransportError{Op: "create", URL: url, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("creating record", zap.String("url", url), zap.String("title", payload.Title))

	resp, err := c.http.Do(req)
	if err != nil {
		return recipe.Record{}, &TransportError{Op: "create", URL: url, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return recipe.Record{}, &TransportError{Op: "create", URL: url, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return recipe.Record{}, &TransportError{Op: "create", URL: url, Err: err}
	}

	var created recipe.Record
	if err := json.Unmarshal(body, &created); err != nil {
		return recipe.Record{}, &TransportError{Op: "create", URL: url, Err: fmt.Errorf("decode: %w", err)}
	}
	if created.ID == "" {
		return recipe.Record{}, &TransportError{Op: "create", URL: url,
			Err: fmt.Errorf("response missing assigned id")}
	}
	if created.Ingredients == nil {
		created.Ingredients = []string{}
	}
	created.Category = cat
	return created, nil
}

func (c *Client) get(ctx context.Context, op, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &TransportError{Op: op, URL: url, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, URL: url, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{Op: op, URL: url, Status: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, URL: url, Err: err}
	}
	return body, nil
}

func validateRecord(r recipe.Record) error {
	if r.ID == "" {
		return fmt.Errorf("record missing id")
	}
	if r.Title == "" {
		return fmt.Errorf("record %s missing title", r.ID)
	}
	return nil
}
