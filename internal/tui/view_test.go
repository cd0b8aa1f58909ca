package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/storefront/internal/catalog"
	"github.com/Iron-Ham/storefront/internal/tui/styles"
)

func TestRenderCard(t *testing.T) {
	s := styles.New(nil)

	t.Run("with image", func(t *testing.T) {
		p := catalog.Product{ID: 1, Title: "iPhone 9", Category: "smartphones", Price: 549,
			Images: catalog.ImageList{"https://cdn.example/1/1.jpg", "https://cdn.example/1/2.jpg"}}
		card := RenderCard(s, p, DefaultCardWidth)

		for _, want := range []string{"iPhone 9", "Category: smartphones", "Price: $549", "https://cdn.example/1/1.jpg"} {
			if !strings.Contains(card, want) {
				t.Errorf("card missing %q:\n%s", want, card)
			}
		}
		if strings.Contains(card, "2.jpg") {
			t.Error("card should show only the first image")
		}
		if got := lipgloss.Width(card); got > DefaultCardWidth {
			t.Errorf("card width = %d, want <= %d", got, DefaultCardWidth)
		}
	})

	t.Run("without image", func(t *testing.T) {
		card := RenderCard(s, catalog.Product{Title: "Plain", Category: "misc", Price: 1}, DefaultCardWidth)
		if strings.Contains(card, "http") {
			t.Errorf("card should have no image line:\n%s", card)
		}
	})

	t.Run("long title is truncated", func(t *testing.T) {
		p := catalog.Product{Title: strings.Repeat("x", 200), Category: "misc"}
		card := RenderCard(s, p, MinCardWidth)
		if got := lipgloss.Width(card); got > MinCardWidth {
			t.Errorf("card width = %d, want <= %d", got, MinCardWidth)
		}
		if !strings.Contains(card, "…") {
			t.Error("expected ellipsis on truncated title")
		}
	})
}

func TestRenderCategories(t *testing.T) {
	row := RenderCategories(styles.New(nil), []string{"All", "phones", "beauty"}, "All", 0)
	for _, want := range []string{"All", "phones", "beauty"} {
		if !strings.Contains(row, want) {
			t.Errorf("category row missing %q: %q", want, row)
		}
	}
	if strings.Index(row, "phones") > strings.Index(row, "beauty") {
		t.Error("categories should render in option order")
	}
}

func TestRenderError(t *testing.T) {
	got := RenderError(styles.New(nil), "Network response was not ok")
	if !strings.Contains(got, "Error: Network response was not ok") {
		t.Errorf("RenderError = %q", got)
	}
}
