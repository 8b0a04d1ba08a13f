// Package client is a Go client for the contacts API.
//
// Inputs are checked with the same validators the server uses before any
// request is sent; the server validates again and remains the authority.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/satheeshds/contacts/models"
)

// conflictMessage is the error the server returns when deleting a category in use.
const conflictMessage = "Cannot delete category with associated contacts"

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
	Errors  []string
}

func (e *APIError) Error() string {
	switch {
	case len(e.Errors) > 0:
		return fmt.Sprintf("%d %s: %s", e.Status, http.StatusText(e.Status), strings.Join(e.Errors, "; "))
	case e.Message != "":
		return fmt.Sprintf("%d %s: %s", e.Status, http.StatusText(e.Status), e.Message)
	default:
		return fmt.Sprintf("%d %s", e.Status, http.StatusText(e.Status))
	}
}

// IsConflict reports whether err is the refusal to delete a category that
// still has contacts.
func IsConflict(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest && apiErr.Message == conflictMessage
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Client calls the API rooted at a base URL such as "http://localhost:5000/api".
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for baseURL. A zero timeout means 30 seconds.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) ListContacts(ctx context.Context) ([]models.Contact, error) {
	var out []models.Contact
	err := c.do(ctx, http.MethodGet, "/contacts", nil, &out)
	return out, err
}

func (c *Client) GetContact(ctx context.Context, id string) (models.Contact, error) {
	var out models.Contact
	err := c.do(ctx, http.MethodGet, "/contacts/"+url.PathEscape(id), nil, &out)
	return out, err
}

func (c *Client) CreateContact(ctx context.Context, in models.ContactInput) (models.Contact, error) {
	var out models.Contact
	if errs := in.Validate(); len(errs) > 0 {
		return out, &models.ValidationError{Errors: errs}
	}
	err := c.do(ctx, http.MethodPost, "/contacts", in, &out)
	return out, err
}

func (c *Client) UpdateContact(ctx context.Context, id string, in models.ContactInput) (models.Contact, error) {
	var out models.Contact
	if errs := in.Validate(); len(errs) > 0 {
		return out, &models.ValidationError{Errors: errs}
	}
	err := c.do(ctx, http.MethodPut, "/contacts/"+url.PathEscape(id), in, &out)
	return out, err
}

func (c *Client) DeleteContact(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/contacts/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	err := c.do(ctx, http.MethodGet, "/categories", nil, &out)
	return out, err
}

func (c *Client) GetCategory(ctx context.Context, id string) (models.Category, error) {
	var out models.Category
	err := c.do(ctx, http.MethodGet, "/categories/"+url.PathEscape(id), nil, &out)
	return out, err
}

func (c *Client) CreateCategory(ctx context.Context, in models.CategoryInput) (models.Category, error) {
	var out models.Category
	if errs := in.Validate(); len(errs) > 0 {
		return out, &models.ValidationError{Errors: errs}
	}
	err := c.do(ctx, http.MethodPost, "/categories", in, &out)
	return out, err
}

func (c *Client) UpdateCategory(ctx context.Context, id string, in models.CategoryInput) (models.Category, error) {
	var out models.Category
	if errs := in.Validate(); len(errs) > 0 {
		return out, &models.ValidationError{Errors: errs}
	}
	err := c.do(ctx, http.MethodPut, "/categories/"+url.PathEscape(id), in, &out)
	return out, err
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/categories/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ListContactsByCategory(ctx context.Context, id string) ([]models.Contact, error) {
	var out []models.Contact
	err := c.do(ctx, http.MethodGet, "/categories/"+url.PathEscape(id)+"/contacts", nil, &out)
	return out, err
}

// FilterByCategory keeps the contacts whose category is one of ids. With no
// ids every contact is kept. It never calls the server.
func FilterByCategory(contacts []models.Contact, ids ...string) []models.Contact {
	if len(ids) == 0 {
		return contacts
	}
	out := make([]models.Contact, 0, len(contacts))
	for _, c := range contacts {
		if slices.Contains(ids, c.CategoryID) {
			out = append(out, c)
		}
	}
	return out
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload struct {
			Error  string   `json:"error"`
			Errors []string `json:"errors"`
		}
		if json.NewDecoder(resp.Body).Decode(&payload) == nil {
			apiErr.Message, apiErr.Errors = payload.Error, payload.Errors
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
