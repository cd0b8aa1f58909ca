package cmd

import (
	"fmt"
	"io"

	"github.com/Iron-Ham/storefront/internal/config"
	"github.com/Iron-Ham/storefront/internal/logging"
	"github.com/Iron-Ham/storefront/internal/productapi"
)

// Version is the build version, set at link time with
// -ldflags "-X github.com/Iron-Ham/storefront/internal/cmd.Version=..."
var Version = "dev"

func userAgent() string {
	return "storefront/" + Version
}

// newClient builds the catalog client described by cfg.
func newClient(cfg *config.Config) *productapi.Client {
	return productapi.NewClient(
		productapi.WithEndpoint(cfg.API.Endpoint),
		productapi.WithTimeout(cfg.API.Timeout),
		productapi.WithUserAgent(userAgent()),
	)
}

// newFileLogger returns a logger writing to the configured log directory,
// or a no-op logger when logging is disabled. Commands that own the
// terminal log here so output never interleaves with the UI.
func newFileLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	logger, err := logging.NewLogger(cfg.Logging.ResolveDir(), cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}
	return logger, nil
}

// newStreamLogger returns a logger writing JSON lines to w at the
// configured level.
func newStreamLogger(cfg *config.Config, w io.Writer) *logging.Logger {
	return logging.NewWriterLogger(w, cfg.Logging.Level)
}
