// Package internal contains integration tests that wire the catalog client,
// loader, reducer and both presenters together against a fake products API.
package internal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/Iron-Ham/storefront/internal/productapi"
	"github.com/Iron-Ham/storefront/internal/storefront"
	"github.com/Iron-Ham/storefront/internal/testutil"
	"github.com/Iron-Ham/storefront/internal/tui"
	"github.com/Iron-Ham/storefront/internal/web"
)

// dummyPayload mirrors the shape of https://dummyjson.com/products.
const dummyPayload = `{
  "products": [
    {"id": 1, "title": "iPhone", "category": "phones", "price": 999, "images": ["https://img.example/1.png"]},
    {"id": 2, "title": "Galaxy", "category": "phones", "price": 899, "images": "https://img.example/2.png"},
    {"id": 3, "title": "Shampoo", "category": "beauty", "price": 9.99, "images": []}
  ],
  "total": 3, "skip": 0, "limit": 30
}`

func titlesOf(st storefront.State) []string {
	return testutil.Titles(st.Visible)
}

// TestCatalogFlow_TUI drives the terminal model through a real HTTP load
// and the filter scenarios.
func TestCatalogFlow_TUI(t *testing.T) {
	api, hits := testutil.ProductsServer(t, http.StatusOK, dummyPayload)
	loader := storefront.NewLoader(context.Background(), productapi.NewClient(productapi.WithEndpoint(api.URL)))
	defer loader.Close()

	m := applyLoad(t, tui.NewModel(loader), loader)
	st := m.(tui.Model).State()
	if st.Phase != storefront.PhaseReady {
		t.Fatalf("phase = %v, want ready (error %q)", st.Phase, st.Err)
	}
	if diff := cmp.Diff([]string{"All", "phones", "beauty"}, st.Categories); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}

	// Scenario: query "a" over All.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	if diff := cmp.Diff([]string{"Galaxy", "Shampoo"}, titlesOf(m.(tui.Model).State())); diff != "" {
		t.Errorf("query a mismatch (-want +got):\n%s", diff)
	}

	// Clear the query, then select phones.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if diff := cmp.Diff([]string{"iPhone", "Galaxy"}, titlesOf(m.(tui.Model).State())); diff != "" {
		t.Errorf("category phones mismatch (-want +got):\n%s", diff)
	}

	view := m.View()
	for _, want := range []string{"iPhone", "Galaxy", "Price: $999", "https://img.example/2.png"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	if n := hits.Load(); n != 1 {
		t.Errorf("products API hit %d times, want 1", n)
	}
}

// applyLoad runs the model's load command and feeds the result back.
func applyLoad(t *testing.T, m tea.Model, loader *storefront.Loader) tea.Model {
	t.Helper()
	ev, ok := loader.Load()
	if !ok {
		t.Fatal("load was discarded")
	}
	next, _ := m.Update(loadedMsgFor(t, m, ev))
	return next
}

// loadedMsgFor recovers the message the model's Init batch produces for
// the loader's cached result.
func loadedMsgFor(t *testing.T, m tea.Model, ev storefront.Event) tea.Msg {
	t.Helper()
	batch, ok := m.Init()().(tea.BatchMsg)
	if !ok {
		t.Fatal("Init should return a batch")
	}
	// The first command in the batch is the catalog load; it returns the
	// cached event without a second request.
	msg := batch[0]()
	if msg == nil {
		t.Fatalf("load command produced no message for %T", ev)
	}
	return msg
}

// TestCatalogFlow_Failure checks that a non-2xx response surfaces the
// fixed error text in both presenters.
func TestCatalogFlow_Failure(t *testing.T) {
	api, _ := testutil.ProductsServer(t, http.StatusInternalServerError, `{"message":"boom"}`)
	client := productapi.NewClient(productapi.WithEndpoint(api.URL))

	t.Run("tui", func(t *testing.T) {
		loader := storefront.NewLoader(context.Background(), client)
		defer loader.Close()

		m := applyLoad(t, tui.NewModel(loader), loader)
		view := m.View()
		if !strings.Contains(view, "Error: Network response was not ok") {
			t.Errorf("view = %q", view)
		}
		if strings.Contains(view, "Price:") {
			t.Error("failed view should render no cards")
		}
	})

	t.Run("web", func(t *testing.T) {
		loader := storefront.NewLoader(context.Background(), client)
		defer loader.Close()
		srv := web.NewServer(loader)
		srv.Load()

		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

		var resp struct {
			State    string            `json:"state"`
			Error    string            `json:"error"`
			Products []json.RawMessage `json:"products"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.State != "failed" || resp.Error != productapi.ErrResponseNotOK.Error() || len(resp.Products) != 0 {
			t.Errorf("unexpected response: %+v", resp)
		}
	})
}

// TestCatalogFlow_Web loads through the HTTP client and checks the HTML
// page for the category scenario.
func TestCatalogFlow_Web(t *testing.T) {
	api, hits := testutil.ProductsServer(t, http.StatusOK, dummyPayload)
	loader := storefront.NewLoader(context.Background(), productapi.NewClient(productapi.WithEndpoint(api.URL)))
	defer loader.Close()

	srv := web.NewServer(loader)
	srv.Load()

	for _, target := range []string{"/", "/?category=phones", "/api/products?q=a"} {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d", target, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?category=phones", nil))
	body := rec.Body.String()
	if !strings.Contains(body, `data-product-id="1"`) || !strings.Contains(body, `data-product-id="2"`) {
		t.Error("phones page should list iPhone and Galaxy")
	}
	if strings.Contains(body, `data-product-id="3"`) {
		t.Error("phones page should not list Shampoo")
	}

	if n := hits.Load(); n != 1 {
		t.Errorf("products API hit %d times across requests, want 1", n)
	}
}

// TestCatalogFlow_EmptyCatalog covers a successful load of zero products.
func TestCatalogFlow_EmptyCatalog(t *testing.T) {
	api, _ := testutil.ProductsServer(t, http.StatusOK, `{"products": []}`)
	loader := storefront.NewLoader(context.Background(), productapi.NewClient(productapi.WithEndpoint(api.URL)))
	defer loader.Close()

	m := applyLoad(t, tui.NewModel(loader), loader)
	st := m.(tui.Model).State()

	if diff := cmp.Diff([]string{"All"}, st.Categories); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}
	if len(st.Visible) != 0 {
		t.Errorf("visible = %v, want empty", titlesOf(st))
	}
}

// TestCatalogFlow_PayloadWithoutProducts checks that a 2xx body lacking the
// products field fails the load instead of showing an empty catalog.
func TestCatalogFlow_PayloadWithoutProducts(t *testing.T) {
	api, _ := testutil.ProductsServer(t, http.StatusOK, `{"message":"oops"}`)
	loader := storefront.NewLoader(context.Background(), productapi.NewClient(productapi.WithEndpoint(api.URL)))
	defer loader.Close()

	m := applyLoad(t, tui.NewModel(loader), loader)
	st := m.(tui.Model).State()
	if st.Phase != storefront.PhaseFailed {
		t.Fatalf("phase = %v, want failed", st.Phase)
	}
	if !strings.Contains(st.Err, "missing products field") {
		t.Errorf("err = %q", st.Err)
	}
	if len(st.Visible) != 0 {
		t.Errorf("visible = %v, want empty", titlesOf(st))
	}
}
