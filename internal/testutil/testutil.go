// Package testutil provides catalog fixtures and fakes shared by tests.
package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/Iron-Ham/storefront/internal/catalog"
)

// SampleCatalog returns the three-product catalog used across the tests:
// two phones and one beauty product, in that order.
func SampleCatalog() []catalog.Product {
	return []catalog.Product{
		{ID: 1, Title: "iPhone", Category: "phones", Price: 999, Images: catalog.ImageList{"https://img.example/1.png"}},
		{ID: 2, Title: "Galaxy", Category: "phones", Price: 899},
		{ID: 3, Title: "Shampoo", Category: "beauty", Price: 9.5},
	}
}

// Titles returns the titles of products in order.
func Titles(products []catalog.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Title)
	}
	return out
}

// StubFetcher returns a fixed result. With Block set it waits for the
// context to end and returns its error.
type StubFetcher struct {
	Products []catalog.Product
	Err      error
	Block    bool
}

// FetchProducts implements productapi.Fetcher.
func (s StubFetcher) FetchProducts(ctx context.Context) ([]catalog.Product, error) {
	if s.Block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return s.Products, s.Err
}

// ProductsServer starts an httptest server that answers every request with
// status and body. The returned counter records the number of requests.
// The server is closed when the test completes.
func ProductsServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}
