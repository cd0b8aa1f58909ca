package web

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"net/url"

	"github.com/Iron-Ham/storefront/internal/catalog"
	"github.com/Iron-Ham/storefront/internal/storefront"
)

//go:embed templates/index.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html.tmpl"))

type categoryButton struct {
	Name   string
	Href   string
	Active bool
}

type productCard struct {
	ID       int
	Title    string
	Category string
	Price    string
	Image    string
}

type pageData struct {
	Phase      string
	Err        string
	Query      string
	Category   string
	Categories []categoryButton
	Products   []productCard
	Total      int
}

func newPageData(st storefront.State) pageData {
	data := pageData{
		Phase:    st.Phase.String(),
		Err:      st.Err,
		Query:    st.Criteria.Query,
		Category: st.Criteria.Category,
		Total:    len(st.Catalog),
	}
	if st.Phase != storefront.PhaseReady {
		return data
	}

	data.Categories = make([]categoryButton, 0, len(st.Categories))
	for _, c := range st.Categories {
		data.Categories = append(data.Categories, categoryButton{
			Name:   c,
			Href:   pageHref(st.Criteria.Query, c),
			Active: st.IsActiveCategory(c),
		})
	}

	data.Products = make([]productCard, 0, len(st.Visible))
	for _, p := range st.Visible {
		data.Products = append(data.Products, productCard{
			ID:       p.ID,
			Title:    p.Title,
			Category: p.Category,
			Price:    catalog.FormatPrice(p.Price),
			Image:    p.ImageURL(),
		})
	}
	return data
}

// pageHref links to the page with the given criteria. The default category
// is left out of the query string.
func pageHref(query, category string) string {
	v := url.Values{}
	if query != "" {
		v.Set("q", query)
	}
	if category != catalog.AllCategories {
		v.Set("category", category)
	}
	if len(v) == 0 {
		return "/"
	}
	return "/?" + v.Encode()
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	st := s.view(r)

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, newPageData(st)); err != nil {
		s.logger.Error("render page", "error", err.Error())
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusFor(st.Phase))
	_, _ = buf.WriteTo(w)
}

// productsResponse is the JSON body of GET /api/products.
type productsResponse struct {
	State      string            `json:"state"`
	Error      string            `json:"error,omitempty"`
	Categories []string          `json:"categories"`
	Products   []catalog.Product `json:"products"`
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	st := s.view(r)

	resp := productsResponse{
		State:      st.Phase.String(),
		Error:      st.Err,
		Categories: []string{},
		Products:   []catalog.Product{},
	}
	if st.Phase == storefront.PhaseReady {
		resp.Categories = st.Categories
		resp.Products = st.Visible
	}
	writeJSON(w, statusFor(st.Phase), resp)
}

// statusFor maps the load phase to a response status. A failed upstream
// load surfaces as a bad gateway; loading and ready are both OK.
func statusFor(p storefront.Phase) int {
	if p == storefront.PhaseFailed {
		return http.StatusBadGateway
	}
	return http.StatusOK
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
