package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/storefront/internal/config"
	"github.com/Iron-Ham/storefront/internal/storefront"
	"github.com/Iron-Ham/storefront/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog as an HTML page and JSON API",
	Long: `Serve the catalog over HTTP.

The catalog is fetched once at startup. Routes:
  GET /                  HTML page (?q=<text>&category=<name>)
  GET /api/products      JSON view of the same filters
  GET /healthz           liveness probe

The server shuts down gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides server.addr)")
	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := newStreamLogger(cfg, cmd.ErrOrStderr())
	loader := storefront.NewLoader(ctx, newClient(cfg),
		storefront.WithLogger(logger.WithComponent("loader")))

	srv := web.NewServer(loader, web.WithLogger(logger.WithComponent("web")))
	return srv.ListenAndServe(ctx, cfg.Server.Addr)
}
