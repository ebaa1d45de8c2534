package integrations

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/matzehuels/partlookup/pkg/observability"
)

// Client provides shared HTTP functionality for vendor API clients.
// It applies default headers and classifies HTTP status codes into the
// package's sentinel errors.
type Client struct {
	http    *http.Client
	headers map[string]string
}

// NewClient creates a Client that uses hc for transport and applies headers
// to every request. Pass nil for hc to get [NewHTTPClient] defaults, and nil
// for headers if no default headers are needed.
func NewClient(hc *http.Client, headers map[string]string) *Client {
	if hc == nil {
		hc = NewHTTPClient()
	}
	return &Client{
		http:    hc,
		headers: headers,
	}
}

// PostForm sends body as an application/x-www-form-urlencoded POST to url and
// returns the raw response body.
//
// Transport failures are wrapped in [ErrNetwork]; non-2xx statuses are
// reported via [ErrNotFound] or [ErrNetwork]. A nil error with an empty slice
// means the server answered 2xx with no content.
func (c *Client) PostForm(ctx context.Context, url string, body []byte) ([]byte, error) {
	return c.Post(ctx, url, map[string]string{"Content-Type": FormContentType}, body)
}

// Post performs an HTTP POST with additional headers merged with defaults.
// Request-specific headers override client defaults for the same key.
func (c *Client) Post(ctx context.Context, url string, headers map[string]string, body []byte) ([]byte, error) {
	rc, err := c.doRequest(ctx, http.MethodPost, url, headers, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrNetwork, err)
	}
	return data, nil
}

func (c *Client) doRequest(ctx context.Context, method, url string, headers map[string]string, body io.Reader) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	hooks := observability.HTTP()
	host, path := req.URL.Host, req.URL.Path
	hooks.OnRequest(ctx, method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, method, host, path, err)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	hooks.OnResponse(ctx, method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func checkStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}
