package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/storefront/internal/config"
	"github.com/Iron-Ham/storefront/internal/tui"
	"github.com/Iron-Ham/storefront/internal/tui/styles"
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Browse a product catalog from the terminal",
	Long: `Storefront fetches a product catalog from a remote API once and lets you
filter it by free-text search and by category.

Without a subcommand it opens the interactive terminal browser. Use
'storefront serve' for the HTML view and 'storefront list' for plain output.`,
	SilenceUsage: true,
	RunE:         runBrowse,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/storefront/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/storefront")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("STOREFRONT")
	// e.g., STOREFRONT_API_ENDPOINT for api.endpoint
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newFileLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	palette, err := styles.Resolve(cfg.TUI.Theme, styles.ThemesDir(config.ConfigDir()))
	if err != nil {
		logger.Warn("falling back to default theme", "theme", cfg.TUI.Theme, "error", err.Error())
		palette = styles.DefaultPalette()
	}

	app := tui.New(cmd.Context(), newClient(cfg), logger,
		tui.WithStyles(styles.New(palette)),
		tui.WithCardWidth(cfg.TUI.CardWidth),
	)
	return app.Run()
}
