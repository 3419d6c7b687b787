package catalog

import (
	"context"
	"fmt"
	"time"

	"resty.dev/v3"
)

// FetchError describes a failed catalog API round trip: a transport error,
// a non-2xx status, or an undecodable body. The message is suitable for
// inline display to the user.
type FetchError struct {
	Op      string // "list", "get", "create", "update", "delete"
	Status  int    // HTTP status, 0 for transport errors
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("catalog %s: %s (status %d)", e.Op, e.Message, e.Status)
	}
	return fmt.Sprintf("catalog %s: %s", e.Op, e.Message)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client talks to the external catalog API. Every call performs a fresh
// round trip: no retry, no caching, no local mutation. Failures are returned
// to the caller for display, never swallowed.
type Client struct {
	http *resty.Client
}

// NewClient creates a catalog API client for the given base URL
// (e.g. "http://localhost:8080").
func NewClient(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{http: c}
}

// Close releases the underlying transport resources.
func (c *Client) Close() error {
	return c.http.Close()
}

// List fetches the full catalog. The returned slice is a fresh snapshot;
// callers treat it as immutable and refetch wholesale after any mutation.
func (c *Client) List(ctx context.Context) ([]Book, error) {
	var books []Book
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&books).
		Get("/api/v1/books")
	if err != nil {
		return nil, &FetchError{Op: "list", Message: "failed to reach catalog service", Err: err}
	}
	if resp.IsError() {
		return nil, &FetchError{Op: "list", Status: resp.StatusCode(), Message: "failed to fetch books"}
	}
	return books, nil
}

// Get fetches a single book by ID.
func (c *Client) Get(ctx context.Context, id int64) (Book, error) {
	var book Book
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&book).
		SetPathParam("id", fmt.Sprintf("%d", id)).
		Get("/api/v1/books/{id}")
	if err != nil {
		return Book{}, &FetchError{Op: "get", Message: "failed to reach catalog service", Err: err}
	}
	if resp.StatusCode() == 404 {
		return Book{}, &FetchError{Op: "get", Status: 404, Message: "book not found"}
	}
	if resp.IsError() {
		return Book{}, &FetchError{Op: "get", Status: resp.StatusCode(), Message: "failed to fetch book"}
	}
	return book, nil
}

// Create submits a new book. The server assigns the identifier.
func (c *Client) Create(ctx context.Context, draft Draft) (Book, error) {
	var book Book
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(draft).
		SetResult(&book).
		Post("/api/v1/books")
	if err != nil {
		return Book{}, &FetchError{Op: "create", Message: "failed to reach catalog service", Err: err}
	}
	if resp.IsError() {
		return Book{}, &FetchError{Op: "create", Status: resp.StatusCode(), Message: "failed to create book"}
	}
	return book, nil
}

// Update replaces the writable fields of an existing book.
func (c *Client) Update(ctx context.Context, id int64, draft Draft) (Book, error) {
	var book Book
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(draft).
		SetResult(&book).
		SetPathParam("id", fmt.Sprintf("%d", id)).
		Put("/api/v1/books/{id}")
	if err != nil {
		return Book{}, &FetchError{Op: "update", Message: "failed to reach catalog service", Err: err}
	}
	if resp.StatusCode() == 404 {
		return Book{}, &FetchError{Op: "update", Status: 404, Message: "book not found"}
	}
	if resp.IsError() {
		return Book{}, &FetchError{Op: "update", Status: resp.StatusCode(), Message: "failed to update book"}
	}
	return book, nil
}

// Delete removes a book by ID. Only the HTTP status is consulted; no body
// contract is assumed beyond success or failure.
func (c *Client) Delete(ctx context.Context, id int64) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", fmt.Sprintf("%d", id)).
		Delete("/api/v1/books/{id}")
	if err != nil {
		return &FetchError{Op: "delete", Message: "failed to reach catalog service", Err: err}
	}
	if resp.StatusCode() == 404 {
		return &FetchError{Op: "delete", Status: 404, Message: "book not found"}
	}
	if resp.IsError() {
		return &FetchError{Op: "delete", Status: resp.StatusCode(), Message: "failed to delete book"}
	}
	return nil
}
