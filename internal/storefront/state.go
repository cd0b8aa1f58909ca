// Package storefront holds the catalog browser's state and the pure
// reducer that advances it. Presenters (terminal, HTML) render a State and
// feed user input back as Events; they never mutate State directly.
package storefront

import (
	"github.com/Iron-Ham/storefront/internal/catalog"
)

// Phase is the lifecycle phase of the catalog fetch.
type Phase int

const (
	PhaseLoading Phase = iota // Request in flight
	PhaseReady                // Catalog loaded
	PhaseFailed               // Load failed, Err holds the message
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is everything a presenter needs to render the catalog browser.
// Visible and Categories are derived from Catalog and Criteria and are
// recomputed on every transition.
type State struct {
	Phase    Phase
	Err      string
	Catalog  []catalog.Product
	Criteria catalog.Criteria

	Visible    []catalog.Product
	Categories []string
}

// NewState returns the initial state: loading, with unrestricted criteria.
func NewState() State {
	return derive(State{
		Phase:    PhaseLoading,
		Criteria: catalog.DefaultCriteria(),
	})
}

// Event is an input to Reduce.
type Event interface {
	storefrontEvent()
}

// LoadSucceeded carries the products from a successful fetch.
type LoadSucceeded struct {
	Products []catalog.Product
}

// LoadFailed carries the fetch error.
type LoadFailed struct {
	Err error
}

// QueryChanged sets the free-text query.
type QueryChanged struct {
	Query string
}

// CategoryChanged sets the selected category.
type CategoryChanged struct {
	Category string
}

func (LoadSucceeded) storefrontEvent()   {}
func (LoadFailed) storefrontEvent()      {}
func (QueryChanged) storefrontEvent()    {}
func (CategoryChanged) storefrontEvent() {}

// Reduce returns the state that results from applying ev to s. It has no
// side effects. Load events are honored only while loading, so a catalog is
// set at most once per lifetime.
func Reduce(s State, ev Event) State {
	switch ev := ev.(type) {
	case LoadSucceeded:
		if s.Phase != PhaseLoading {
			return s
		}
		s.Phase = PhaseReady
		s.Err = ""
		s.Catalog = ev.Products
		if s.Catalog == nil {
			s.Catalog = []catalog.Product{}
		}
	case LoadFailed:
		if s.Phase != PhaseLoading {
			return s
		}
		s.Phase = PhaseFailed
		s.Err = errorMessage(ev.Err)
		s.Catalog = []catalog.Product{}
	case QueryChanged:
		s.Criteria.Query = ev.Query
	case CategoryChanged:
		s.Criteria.Category = ev.Category
	default:
		return s
	}
	return derive(s)
}

// derive recomputes the values that depend on Catalog and Criteria.
func derive(s State) State {
	s.Visible = catalog.Visible(s.Catalog, s.Criteria)
	s.Categories = catalog.CategoryOptions(s.Catalog)
	return s
}

func errorMessage(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}

// IsActiveCategory reports whether category is the current selection.
func (s State) IsActiveCategory(category string) bool {
	return s.Criteria.Category == category
}

// CategoryIndex returns the position of the selected category in
// Categories, or -1 when the selection is not among the options.
func (s State) CategoryIndex() int {
	for i, c := range s.Categories {
		if c == s.Criteria.Category {
			return i
		}
	}
	return -1
}
