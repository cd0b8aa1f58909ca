package catalog

import "strings"

// AllCategories is the category sentinel meaning "no category restriction".
const AllCategories = "All"

// Criteria holds the user-controlled filter inputs.
type Criteria struct {
	Query    string
	Category string
}

// DefaultCriteria returns criteria that match every product.
func DefaultCriteria() Criteria {
	return Criteria{Category: AllCategories}
}

// Unrestricted reports whether the criteria match every product.
func (c Criteria) Unrestricted() bool {
	return c.Query == "" && c.Category == AllCategories
}

// Matches reports whether p satisfies both the text and category filters.
func (c Criteria) Matches(p Product) bool {
	return c.matchesQuery(p) && c.matchesCategory(p)
}

func (c Criteria) matchesQuery(p Product) bool {
	if c.Query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), strings.ToLower(c.Query))
}

// matchesCategory compares exactly. An empty category is a real category
// that selects products with no category set.
func (c Criteria) matchesCategory(p Product) bool {
	if c.Category == AllCategories {
		return true
	}
	return p.Category == c.Category
}

// Visible returns the products in catalog that match criteria, in catalog
// order. It always filters the full catalog and never mutates it. The result
// is never nil so an empty match renders as an empty list.
func Visible(products []Product, criteria Criteria) []Product {
	visible := make([]Product, 0, len(products))
	for _, p := range products {
		if criteria.Matches(p) {
			visible = append(visible, p)
		}
	}
	return visible
}

// CategoryOptions returns AllCategories followed by the distinct categories
// in products, in first-seen order.
func CategoryOptions(products []Product) []string {
	seen := map[string]bool{AllCategories: true}
	options := []string{AllCategories}
	for _, p := range products {
		if seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		options = append(options, p.Category)
	}
	return options
}
