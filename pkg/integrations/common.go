package integrations

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const httpTimeout = 10 * time.Second

// FormContentType is the content type of form-encoded request bodies.
const FormContentType = "application/x-www-form-urlencoded"

var (
	// ErrNotFound is returned when the vendor answers 404 for an endpoint.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, non-2xx responses).
	ErrNetwork = errors.New("network error")
)

// NewHTTPClient creates an HTTP client with a standard timeout for vendor requests.
func NewHTTPClient() *http.Client {
	return NewHTTPClientWithTimeout(httpTimeout)
}

// NewHTTPClientWithTimeout creates an HTTP client with the given timeout.
// A non-positive timeout falls back to the standard one.
func NewHTTPClientWithTimeout(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = httpTimeout
	}
	return &http.Client{Timeout: timeout}
}

// IsNoData reports whether err is an HTTP-level failure that vendor clients
// treat as "no data" rather than a hard error.
func IsNoData(err error) bool {
	return errors.Is(err, ErrNetwork) || errors.Is(err, ErrNotFound)
}

// URLEncode form-encodes a string, with space as '+'.
// This is a convenience wrapper around [url.QueryEscape].
func URLEncode(s string) string { return url.QueryEscape(s) }

// PercentEncode escapes every byte outside the unreserved set
// (A-Z a-z 0-9 - _ . ~), with space as %20.
func PercentEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
