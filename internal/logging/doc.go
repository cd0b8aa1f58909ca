// Package logging provides structured logging for storefront.
//
// This package wraps Go's log/slog to write JSON-formatted logs. The
// terminal UI owns stdout and stderr while it runs, so interactive sessions
// log to a file; the HTTP server logs to stderr.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger("/path/to/logs", "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("catalog loaded", "products", 30)
//
// # Context
//
// Child loggers carry persistent attributes:
//
//	loaderLogger := logger.WithComponent("loader")
//	loaderLogger.Warn("catalog load failed", "error", err.Error())
//
// Output:
//
//	{"time":"...","level":"WARN","msg":"catalog load failed","component":"loader","error":"..."}
//
// # Testing
//
// Use [NopLogger] to discard all log output.
//
// # Configuration
//
//	logging:
//	  enabled: true
//	  level: info
//	  dir: ~/.local/state/storefront
package logging
