package hestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/partlookup/pkg/buildinfo"
	"github.com/matzehuels/partlookup/pkg/integrations"
)

// Endpoints queried by [Client.FetchPartInfo].
const (
	searchEndpoint     = "/prod/search"
	priceStockEndpoint = "/prod/pricestock"
)

// statusOK is the envelope status of a successful API call.
const statusOK = "OK"

// Options configures a [Client]. The zero value talks to the production API
// with environment credentials only.
type Options struct {
	APIHost    string       // Defaults to DefaultAPIHost
	Format     string       // Defaults to DefaultFormat
	HTTPClient *http.Client // Defaults to integrations.NewHTTPClient()
	Resolver   *Resolver    // Defaults to an environment-only Resolver
	Logger     *log.Logger  // Defaults to log.Default()
}

// Client queries the HESTORE REST API.
//
// A Client is not safe for concurrent use: its Resolver caches the resolved
// credentials without locking.
type Client struct {
	*integrations.Client
	signer   *Signer
	resolver *Resolver
	logger   *log.Logger
}

// NewClient creates a HESTORE client from opts.
func NewClient(opts Options) *Client {
	headers := map[string]string{
		"User-Agent": buildinfo.UserAgent(),
		"Accept":     "application/json",
	}
	resolver := opts.Resolver
	if resolver == nil {
		resolver = &Resolver{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	signer := NewSigner(opts.APIHost, opts.Format)
	signer.lookupEnv = resolver.LookupEnv

	return &Client{
		Client:   integrations.NewClient(opts.HTTPClient, headers),
		signer:   signer,
		resolver: resolver,
		logger:   logger,
	}
}

// Resolver returns the credential resolver used by the client.
func (c *Client) Resolver() *Resolver { return c.resolver }

// Execute sends req and decodes the JSON body into v.
//
// Transport failures, non-2xx statuses and empty bodies are logged and
// reported as ok=false with a nil error. A body that is not valid JSON is
// returned as an error, as is context cancellation.
func (c *Client) Execute(ctx context.Context, req *SignedRequest, v any) (bool, error) {
	data, err := c.PostForm(ctx, req.URL, req.Body)
	if err != nil {
		if integrations.IsNoData(err) {
			c.logger.Debug("request returned no data", "url", req.URL, "err", err)
			return false, nil
		}
		return false, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		c.logger.Debug("empty response body", "url", req.URL)
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", req.URL, err)
	}
	return true, nil
}

// envelope is the wrapper around every API response. Data is only decoded
// once Status is OK, since failed calls may carry a message there instead.
type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// query signs and sends a request to endpoint and returns the decoded data
// list. ok is false for missing credentials, dispatch failures and any
// status other than OK.
func query[T any](ctx context.Context, c *Client, endpoint string, creds Credentials, params map[string]string) (data []T, ok bool, err error) {
	req, err := c.signer.Sign(endpoint, creds, params)
	if err != nil {
		c.logger.Warn("value not found for "+EnvToken+" and/or "+EnvSecret, "endpoint", endpoint)
		return nil, false, nil
	}

	var env envelope
	found, err := c.Execute(ctx, req, &env)
	if err != nil || !found {
		return nil, false, err
	}
	if env.Status != statusOK {
		c.logger.Debug("api call not OK", "endpoint", endpoint, "status", env.Status)
		return nil, false, nil
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, true, nil
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, false, fmt.Errorf("decode %s data: %w", endpoint, err)
	}
	return data, true, nil
}
