// Package tui implements the terminal catalog browser: a search box, a row
// of category buttons and a list of product cards over storefront.State.
package tui

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/storefront/internal/logging"
	"github.com/Iron-Ham/storefront/internal/productapi"
	"github.com/Iron-Ham/storefront/internal/storefront"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
	loader  *storefront.Loader
	logger  *logging.Logger
	opts    []tea.ProgramOption
}

// New creates a TUI application that loads the catalog from fetcher.
// The loader's lifetime is bounded by ctx and by the program itself.
func New(ctx context.Context, fetcher productapi.Fetcher, logger *logging.Logger, opts ...Option) *App {
	if logger == nil {
		logger = logging.NopLogger()
	}
	loader := storefront.NewLoader(ctx, fetcher, storefront.WithLogger(logger.WithComponent("loader")))
	opts = append([]Option{WithLogger(logger.WithComponent("tui"))}, opts...)

	return &App{
		model:  NewModel(loader, opts...),
		loader: loader,
		logger: logger,
		opts:   []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// Run starts the TUI application and blocks until it exits
func (a *App) Run() error {
	// The loader is closed on every exit path so a pending request never
	// outlives the UI.
	defer a.loader.Close()

	a.program = tea.NewProgram(a.model, a.opts...)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	done := make(chan struct{})
	defer close(done)
	go forwardSignals(sigChan, done, a.program.Send)

	a.logger.Info("starting catalog browser")
	if _, err := a.program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	a.logger.Info("catalog browser exited")
	return nil
}

// forwardSignals turns the first signal into a quit message. It returns
// when a signal arrives or done is closed.
func forwardSignals(sigs <-chan os.Signal, done <-chan struct{}, send func(tea.Msg)) {
	select {
	case <-sigs:
		send(tea.Quit())
	case <-done:
	}
}
