//go:build integration

package testhelper

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fedcourts/docket-engine/internal/adapters/primary/http/middleware"
)

// HTTPClient wraps http.Client with test helpers for exercising the docket
// engine's HTTP surface end to end.
type HTTPClient struct {
	t             *testing.T
	client        *http.Client
	baseURL       string
	authHeader    string
	courtDistrict string
	extraHeaders  map[string]string
}

// NewHTTPClient creates a new test HTTP client rooted at baseURL.
func NewHTTPClient(t *testing.T, baseURL string) *HTTPClient {
	return &HTTPClient{
		t:            t,
		client:       &http.Client{},
		baseURL:      baseURL,
		extraHeaders: map[string]string{},
	}
}

// WithAuth returns a new HTTPClient that sends bearer as the Authorization
// header.
func (c *HTTPClient) WithAuth(bearer string) *HTTPClient {
	return &HTTPClient{
		t:             c.t,
		client:        c.client,
		baseURL:       c.baseURL,
		authHeader:    bearer,
		courtDistrict: c.courtDistrict,
		extraHeaders:  c.extraHeaders,
	}
}

// WithCourtDistrict returns a new HTTPClient that sends courtCode as the
// X-Court-District header.
func (c *HTTPClient) WithCourtDistrict(courtCode string) *HTTPClient {
	return &HTTPClient{
		t:             c.t,
		client:        c.client,
		baseURL:       c.baseURL,
		authHeader:    c.authHeader,
		courtDistrict: courtCode,
		extraHeaders:  c.extraHeaders,
	}
}

// WithHeader returns a new HTTPClient with an extra custom header.
func (c *HTTPClient) WithHeader(key, value string) *HTTPClient {
	headers := make(map[string]string, len(c.extraHeaders)+1)
	for k, v := range c.extraHeaders {
		headers[k] = v
	}
	headers[key] = value

	return &HTTPClient{
		t:             c.t,
		client:        c.client,
		baseURL:       c.baseURL,
		authHeader:    c.authHeader,
		courtDistrict: c.courtDistrict,
		extraHeaders:  headers,
	}
}

// Do executes an HTTP request and returns the response and body.
func (c *HTTPClient) Do(method, path string, body interface{}) (*http.Response, []byte) {
	c.t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(c.t, err, "failed to marshal request body")
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	require.NoError(c.t, err, "failed to create request")

	req.Header.Set("Content-Type", "application/json")
	if c.authHeader != "" {
		req.Header.Set("Authorization", "Bearer "+c.authHeader)
	}
	if c.courtDistrict != "" {
		req.Header.Set(middleware.CourtDistrictHeader, c.courtDistrict)
	}
	for key, value := range c.extraHeaders {
		req.Header.Set(key, value)
	}

	resp, err := c.client.Do(req)
	require.NoError(c.t, err, "failed to execute request")

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err, "failed to read response body")
	resp.Body.Close()

	return resp, respBody
}

// GET performs a GET request.
func (c *HTTPClient) GET(path string) (*http.Response, []byte) {
	return c.Do(http.MethodGet, path, nil)
}

// POST performs a POST request with a JSON body.
func (c *HTTPClient) POST(path string, body interface{}) (*http.Response, []byte) {
	return c.Do(http.MethodPost, path, body)
}

// PUT performs a PUT request with a JSON body.
func (c *HTTPClient) PUT(path string, body interface{}) (*http.Response, []byte) {
	return c.Do(http.MethodPut, path, body)
}

// PATCH performs a PATCH request with a JSON body.
func (c *HTTPClient) PATCH(path string, body interface{}) (*http.Response, []byte) {
	return c.Do(http.MethodPatch, path, body)
}

// DELETE performs a DELETE request.
func (c *HTTPClient) DELETE(path string) (*http.Response, []byte) {
	return c.Do(http.MethodDelete, path, nil)
}

// ParseJSON parses the response body as JSON into the provided target.
func ParseJSON[T any](t *testing.T, body []byte) T {
	t.Helper()
	var result T
	err := json.Unmarshal(body, &result)
	require.NoError(t, err, "failed to parse JSON response: %s", string(body))
	return result
}
