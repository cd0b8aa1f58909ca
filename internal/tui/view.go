package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/storefront/internal/catalog"
	"github.com/Iron-Ham/storefront/internal/storefront"
	"github.com/Iron-Ham/storefront/internal/tui/styles"
	"github.com/Iron-Ham/storefront/internal/util"
)

// View renders the current state. Loading and failed states render only
// their indicator; the search box, category row and cards appear once the
// catalog is ready.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state.Phase {
	case storefront.PhaseLoading:
		return m.spinner.View() + " " + m.styles.Loading.Render("Loading...") + "\n"
	case storefront.PhaseFailed:
		return RenderError(m.styles, m.state.Err) + "\n"
	}

	header := m.renderHeader()
	cards := m.visibleCardLines()
	footer := m.styles.HelpBar.Render(m.help.View(m.activeKeys()))

	parts := []string{header}
	if len(cards) > 0 {
		parts = append(parts, strings.Join(cards, "\n"))
	}
	parts = append(parts, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// RenderError renders the failed-load message.
func RenderError(s *styles.Styles, msg string) string {
	return s.Error.Render("Error: " + msg)
}

func (m Model) renderHeader() string {
	title := m.styles.Title.Render("Products")

	box := m.styles.SearchBox
	if m.search.Focused() {
		box = m.styles.SearchBoxFocused
	}
	search := box.Render(m.search.View())

	count := m.styles.Muted.Render(strconv.Itoa(len(m.state.Visible)) + " of " +
		strconv.Itoa(len(m.state.Catalog)) + " products")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		search,
		RenderCategories(m.styles, m.state.Categories, m.state.Criteria.Category, m.cursor),
		count,
	)
}

// RenderCategories renders one button per category. The active category is
// highlighted; the cursor, when on a different button, is underlined.
func RenderCategories(s *styles.Styles, categories []string, active string, cursor int) string {
	buttons := make([]string, 0, len(categories))
	for i, c := range categories {
		style := s.CategoryInactive
		switch {
		case c == active:
			style = s.CategoryActive
		case i == cursor:
			style = s.CategoryCursor
		}
		buttons = append(buttons, style.Render(c))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

// RenderCard renders a single product card of the given outer width.
func RenderCard(s *styles.Styles, p catalog.Product, width int) string {
	inner := width - s.Card.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}

	lines := []string{
		s.CardTitle.Render(util.Truncate(p.Title, inner)),
		s.CardCategory.Render(util.Truncate("Category: "+p.Category, inner)),
		s.CardPrice.Render("Price: $" + catalog.FormatPrice(p.Price)),
	}
	if url := p.ImageURL(); url != "" {
		lines = append(lines, s.CardImage.Render(util.Truncate(url, inner)))
	}

	return s.Card.Width(inner + s.Card.GetHorizontalPadding()).Render(strings.Join(lines, "\n"))
}

// cardLines renders every visible product card and returns the lines.
func (m Model) cardLines() []string {
	if len(m.state.Visible) == 0 {
		return nil
	}
	width := m.cardWidth
	if m.width > 0 && width > m.width {
		width = m.width
	}

	cards := make([]string, 0, len(m.state.Visible))
	for _, p := range m.state.Visible {
		cards = append(cards, RenderCard(m.styles, p, width))
	}
	return strings.Split(strings.Join(cards, "\n"), "\n")
}

// cardAreaHeight is the number of terminal rows available for cards, or 0
// when the terminal size is not yet known.
func (m Model) cardAreaHeight() int {
	if m.height <= 0 {
		return 0
	}
	used := lipgloss.Height(m.renderHeader()) +
		lipgloss.Height(m.styles.HelpBar.Render(m.help.View(m.activeKeys())))
	if h := m.height - used; h > 1 {
		return h
	}
	return 1
}

// visibleCardLines returns the slice of card lines that fits the window
// at the current scroll offset.
func (m Model) visibleCardLines() []string {
	lines := m.cardLines()
	h := m.cardAreaHeight()
	if h == 0 || len(lines) <= h {
		return lines
	}
	start := m.clampOffset(m.offset)
	end := start + h
	if end > len(lines) {
		end = len(lines)
	}
	return lines[start:end]
}

// clampOffset bounds a scroll offset to the rendered card lines.
func (m Model) clampOffset(offset int) int {
	h := m.cardAreaHeight()
	if h == 0 {
		return 0
	}
	maxOffset := len(m.cardLines()) - h
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		return maxOffset
	}
	if offset < 0 {
		return 0
	}
	return offset
}
