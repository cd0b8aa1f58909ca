package styles

import "github.com/charmbracelet/lipgloss"

// Styles holds every lipgloss style the catalog view uses, derived from a
// single palette.
type Styles struct {
	Palette *ColorPalette

	Title   lipgloss.Style
	Loading lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style

	SearchBox        lipgloss.Style
	SearchBoxFocused lipgloss.Style

	CategoryActive   lipgloss.Style
	CategoryInactive lipgloss.Style
	CategoryCursor   lipgloss.Style

	Card         lipgloss.Style
	CardTitle    lipgloss.Style
	CardCategory lipgloss.Style
	CardPrice    lipgloss.Style
	CardImage    lipgloss.Style

	HelpBar lipgloss.Style
	HelpKey lipgloss.Style
}

// New builds the styles for palette p.
func New(p *ColorPalette) *Styles {
	if p == nil {
		p = DefaultPalette()
	}

	return &Styles{
		Palette: p,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			MarginBottom(1),

		Loading: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),

		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Error),

		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),

		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),

		SearchBoxFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1),

		CategoryActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text).
			Background(p.Primary).
			Padding(0, 2).
			MarginRight(1),

		CategoryInactive: lipgloss.NewStyle().
			Foreground(p.Muted).
			Background(p.Surface).
			Padding(0, 2).
			MarginRight(1),

		CategoryCursor: lipgloss.NewStyle().
			Underline(true).
			Foreground(p.Text).
			Background(p.Surface).
			Padding(0, 2).
			MarginRight(1),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),

		CardTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text),

		CardCategory: lipgloss.NewStyle().
			Foreground(p.Muted),

		CardPrice: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Secondary),

		CardImage: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),

		HelpBar: lipgloss.NewStyle().
			Foreground(p.Muted).
			MarginTop(1),

		HelpKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Secondary),
	}
}
