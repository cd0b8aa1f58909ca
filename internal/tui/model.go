package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/storefront/internal/logging"
	"github.com/Iron-Ham/storefront/internal/storefront"
	"github.com/Iron-Ham/storefront/internal/tui/keymap"
	"github.com/Iron-Ham/storefront/internal/tui/styles"
)

// Card width bounds, mirrored by config validation.
const (
	DefaultCardWidth = 60
	MinCardWidth     = 30
	MaxCardWidth     = 120
)

// Model is the Bubbletea model for the catalog browser. All catalog state
// lives in state and changes only through storefront.Reduce.
type Model struct {
	state  storefront.State
	loader *storefront.Loader
	logger *logging.Logger

	styles  *styles.Styles
	keys    keymap.Keymap
	search  textinput.Model
	spinner spinner.Model
	help    help.Model

	cursor    int // Highlighted category button
	offset    int // First card line shown
	width     int
	height    int
	cardWidth int
	quitting  bool
}

// Option configures a Model.
type Option func(*Model)

// WithStyles sets the styles used to render the view.
func WithStyles(s *styles.Styles) Option {
	return func(m *Model) {
		if s != nil {
			m.styles = s
		}
	}
}

// WithLogger sets the logger for UI events.
func WithLogger(l *logging.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithCardWidth sets the product card width, clamped to the supported range.
// Zero keeps the default.
func WithCardWidth(w int) Option {
	return func(m *Model) {
		switch {
		case w == 0:
		case w < MinCardWidth:
			m.cardWidth = MinCardWidth
		case w > MaxCardWidth:
			m.cardWidth = MaxCardWidth
		default:
			m.cardWidth = w
		}
	}
}

// NewModel creates a catalog browser that loads through loader.
func NewModel(loader *storefront.Loader, opts ...Option) Model {
	ti := textinput.New()
	ti.Placeholder = "Search product"
	ti.Prompt = "⌕ "
	ti.CharLimit = 100
	ti.Width = 40
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		state:     storefront.NewState(),
		loader:    loader,
		logger:    logging.NopLogger(),
		styles:    styles.New(nil),
		keys:      keymap.Default(),
		search:    ti,
		spinner:   sp,
		help:      help.New(),
		cardWidth: DefaultCardWidth,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// State returns the current catalog state.
func (m Model) State() storefront.State {
	return m.state
}

// loadedMsg delivers the loader's outcome to Update.
type loadedMsg struct {
	event storefront.Event
}

// loadCatalog returns a command that runs the single catalog fetch.
// A result discarded by the loader produces no message.
func loadCatalog(l *storefront.Loader) tea.Cmd {
	return func() tea.Msg {
		ev, ok := l.Load()
		if !ok {
			return nil
		}
		return loadedMsg{event: ev}
	}
}

// Init starts the catalog fetch and the loading spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadCatalog(m.loader), m.spinner.Tick, textinput.Blink)
}

// Update handles a single message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if m.quitting {
			return m, nil
		}
		m = m.dispatch(msg.event)
		switch m.state.Phase {
		case storefront.PhaseReady:
			m.logger.Info("catalog ready", "products", len(m.state.Catalog), "categories", len(m.state.Categories)-1)
		case storefront.PhaseFailed:
			m.logger.Warn("catalog failed", "error", m.state.Err)
		}
		return m, nil

	case spinner.TickMsg:
		if m.state.Phase != storefront.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.offset = m.clampOffset(m.offset)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.search.Focused() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// dispatch applies ev through the reducer and keeps view-local state
// (category cursor, scroll offset) consistent with the result.
func (m Model) dispatch(ev storefront.Event) Model {
	m.state = storefront.Reduce(m.state, ev)

	if idx := m.state.CategoryIndex(); idx >= 0 {
		m.cursor = idx
	} else if m.cursor >= len(m.state.Categories) {
		m.cursor = len(m.state.Categories) - 1
	}

	switch ev.(type) {
	case storefront.QueryChanged, storefront.CategoryChanged:
		m.offset = 0
	}
	m.offset = m.clampOffset(m.offset)
	return m
}

// activeKeys returns the bindings for the current focus.
func (m Model) activeKeys() keymap.Keymap {
	if m.search.Focused() {
		return m.keys.SearchFocused()
	}
	return m.keys
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.activeKeys()

	if key.Matches(msg, keys.ForceQuit) {
		return m.quit()
	}

	if m.state.Phase != storefront.PhaseReady {
		if key.Matches(msg, m.keys.Quit) {
			return m.quit()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m.quit()

	case key.Matches(msg, keys.ToggleSearch):
		if m.search.Focused() {
			m.search.Blur()
			return m, nil
		}
		return m, m.search.Focus()

	case key.Matches(msg, keys.NextCategory):
		return m.selectCategory(m.cursor + 1), nil

	case key.Matches(msg, keys.PrevCategory):
		return m.selectCategory(m.cursor - 1), nil

	case key.Matches(msg, keys.CursorLeft):
		m.cursor = wrap(m.cursor-1, len(m.state.Categories))
		return m, nil

	case key.Matches(msg, keys.CursorRight):
		m.cursor = wrap(m.cursor+1, len(m.state.Categories))
		return m, nil

	case key.Matches(msg, keys.ApplyCategory):
		return m.selectCategory(m.cursor), nil

	case key.Matches(msg, keys.ScrollDown):
		m.offset = m.clampOffset(m.offset + 1)
		return m, nil

	case key.Matches(msg, keys.ScrollUp):
		m.offset = m.clampOffset(m.offset - 1)
		return m, nil

	case key.Matches(msg, keys.PageDown):
		m.offset = m.clampOffset(m.offset + m.cardAreaHeight())
		return m, nil

	case key.Matches(msg, keys.PageUp):
		m.offset = m.clampOffset(m.offset - m.cardAreaHeight())
		return m, nil
	}

	if !m.search.Focused() {
		return m, nil
	}

	var cmd tea.Cmd
	before := m.search.Value()
	m.search, cmd = m.search.Update(msg)
	if after := m.search.Value(); after != before {
		m = m.dispatch(storefront.QueryChanged{Query: after})
		m.logger.Debug("query changed", "query", after, "visible", len(m.state.Visible))
	}
	return m, cmd
}

// selectCategory moves the cursor to index i (wrapping) and makes that
// category the active filter.
func (m Model) selectCategory(i int) Model {
	if len(m.state.Categories) == 0 {
		return m
	}
	m.cursor = wrap(i, len(m.state.Categories))
	category := m.state.Categories[m.cursor]
	m = m.dispatch(storefront.CategoryChanged{Category: category})
	m.logger.Debug("category changed", "category", category, "visible", len(m.state.Visible))
	return m
}

// quit closes the loader so an in-flight request is cancelled before the
// program exits.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.loader != nil {
		m.loader.Close()
	}
	return m, tea.Quit
}

func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}
