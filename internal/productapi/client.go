// Package productapi fetches the product catalog from a remote HTTP endpoint.
package productapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Iron-Ham/storefront/internal/catalog"
)

const (
	// DefaultEndpoint is the public products collection.
	DefaultEndpoint = "https://dummyjson.com/products"

	// defaultTimeout bounds a single fetch. Zero disables the bound.
	defaultTimeout = 10 * time.Second

	// maxBodyBytes caps how much of a response body is read.
	maxBodyBytes = 32 << 20
)

// ErrResponseNotOK is returned for any non-2xx response. Its message is
// shown to the user verbatim.
var ErrResponseNotOK = errors.New("Network response was not ok") //nolint:staticcheck // user-facing text

// Fetcher loads the product collection.
type Fetcher interface {
	FetchProducts(ctx context.Context) ([]catalog.Product, error)
}

// Client implements Fetcher over HTTP.
type Client struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithEndpoint sets the URL requested by FetchProducts.
func WithEndpoint(endpoint string) ClientOption {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithTimeout sets the HTTP client timeout. Zero means no timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a Client for DefaultEndpoint unless overridden.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		endpoint:  DefaultEndpoint,
		userAgent: "storefront",
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Endpoint returns the URL the client requests.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// productsResponse is the envelope returned by the products endpoint.
// Products stays raw so a missing field can be told apart from null.
type productsResponse struct {
	Products json.RawMessage `json:"products"`
	Total    int             `json:"total"`
}

// FetchProducts requests the product collection once.
func (c *Client) FetchProducts(ctx context.Context) ([]catalog.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, ErrResponseNotOK
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var data productsResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(data.Products) == 0 {
		return nil, errors.New("decode response: missing products field")
	}

	var products []catalog.Product
	if err := json.Unmarshal(data.Products, &products); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if products == nil {
		products = []catalog.Product{}
	}
	return products, nil
}
