// Package gateway is the client's HTTP access layer: a uniform verb
// dispatcher that sends JSON and decodes JSON back. It deliberately performs
// no retries, sets no timeout, and never branches on the status code. Any
// transport fault or non-JSON body surfaces as an error to the caller, which
// treats the operation as rejected.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for the API at baseURL (e.g. "http://127.0.0.1:8080").
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// do issues one request. A body is attached only for POST/PUT/PATCH. When out
// is non-nil the response body is JSON-decoded into it regardless of status.
func (c *Client) do(ctx context.Context, method, path string, payload any, out any) error {
	var body *bytes.Reader

	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("error encoding request: %w", err)
		}
		body = bytes.NewReader(b)
	default:
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("error building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}

	return nil
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, payload any, out any) error {
	return c.do(ctx, http.MethodPost, path, payload, out)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, payload any, out any) error {
	return c.do(ctx, http.MethodPut, path, payload, out)
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, payload any, out any) error {
	return c.do(ctx, http.MethodPatch, path, payload, out)
}

// Delete issues a DELETE request and decodes the JSON response into out.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}
