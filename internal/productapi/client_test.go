package productapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const sampleBody = `{"products":[
	{"id":1,"title":"iPhone","category":"phones","price":999,"images":["https://img.example/1.png"]},
	{"id":2,"title":"Galaxy","category":"phones","price":899,"images":"https://img.example/2.png"},
	{"id":3,"title":"Shampoo","category":"beauty","price":9}
],"total":3,"skip":0,"limit":30}`

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient()
	if c.Endpoint() != DefaultEndpoint {
		t.Errorf("Endpoint() = %q, want %q", c.Endpoint(), DefaultEndpoint)
	}
	if c.httpClient.Timeout != defaultTimeout {
		t.Errorf("timeout = %v, want %v", c.httpClient.Timeout, defaultTimeout)
	}
}

func TestNewClient_WithOptions(t *testing.T) {
	c := NewClient(
		WithEndpoint("http://localhost/products"),
		WithTimeout(2*time.Second),
		WithUserAgent("storefront/test"),
	)
	if c.Endpoint() != "http://localhost/products" {
		t.Errorf("Endpoint() = %q", c.Endpoint())
	}
	if c.httpClient.Timeout != 2*time.Second {
		t.Errorf("timeout = %v, want 2s", c.httpClient.Timeout)
	}
	if c.userAgent != "storefront/test" {
		t.Errorf("userAgent = %q", c.userAgent)
	}
}

func TestClient_FetchProducts_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.Header.Get("User-Agent") != "storefront/test" {
			t.Errorf("User-Agent = %q", r.Header.Get("User-Agent"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleBody))
	}))
	defer server.Close()

	c := NewClient(WithEndpoint(server.URL), WithUserAgent("storefront/test"))
	products, err := c.FetchProducts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("got %d products, want 3", len(products))
	}
	if products[0].Title != "iPhone" || products[2].Category != "beauty" {
		t.Errorf("unexpected products: %+v", products)
	}
	if products[1].ImageURL() != "https://img.example/2.png" {
		t.Errorf("string images not decoded: %+v", products[1].Images)
	}
}

func TestClient_FetchProducts_EmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"products":[]}`))
	}))
	defer server.Close()

	products, err := NewClient(WithEndpoint(server.URL)).FetchProducts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if products == nil || len(products) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", products)
	}
}

func TestClient_FetchProducts_NullList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"products":null}`))
	}))
	defer server.Close()

	products, err := NewClient(WithEndpoint(server.URL)).FetchProducts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if products == nil || len(products) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", products)
	}
}

func TestClient_FetchProducts_MissingField(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty object", body: `{}`},
		{name: "unrelated object", body: `{"message":"oops"}`},
		{name: "top-level array", body: `[]`},
		{name: "products not a list", body: `{"products":"none"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			products, err := NewClient(WithEndpoint(server.URL)).FetchProducts(context.Background())
			if err == nil {
				t.Fatalf("expected error, got %d products", len(products))
			}
			if !strings.Contains(err.Error(), "decode response") {
				t.Errorf("error = %q, want decode response prefix", err.Error())
			}
		})
	}
}

func TestClient_FetchProducts_NonOK(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusMovedPermanently} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				// A 3xx without Location is returned to the caller as-is.
				w.WriteHeader(status)
			}))
			defer server.Close()

			_, err := NewClient(WithEndpoint(server.URL)).FetchProducts(context.Background())
			if !errors.Is(err, ErrResponseNotOK) {
				t.Fatalf("expected ErrResponseNotOK, got %v", err)
			}
			if err.Error() != "Network response was not ok" {
				t.Errorf("error message = %q", err.Error())
			}
		})
	}
}

func TestClient_FetchProducts_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"products": [`))
	}))
	defer server.Close()

	_, err := NewClient(WithEndpoint(server.URL)).FetchProducts(context.Background())
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	if !strings.Contains(err.Error(), "decode response") {
		t.Errorf("error = %q, want decode response prefix", err.Error())
	}
}

func TestClient_FetchProducts_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewClient(WithEndpoint(url)).FetchProducts(context.Background())
	if err == nil {
		t.Fatal("expected error when server is unreachable")
	}
	if errors.Is(err, ErrResponseNotOK) {
		t.Error("transport failure should not be reported as a non-OK response")
	}
}

func TestClient_FetchProducts_ContextCanceled(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := NewClient(WithEndpoint(server.URL), WithTimeout(0)).FetchProducts(ctx)
		errCh <- err
	}()

	cancel()
	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("FetchProducts did not return after cancellation")
	}
}
