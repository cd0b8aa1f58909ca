package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/Iron-Ham/storefront/internal/catalog"
	"github.com/Iron-Ham/storefront/internal/config"
	"github.com/Iron-Ham/storefront/internal/storefront"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the filtered catalog",
	Long: `Fetch the catalog once, apply the filters and print the matching products.

Examples:
  # All products as a table
  storefront list

  # Products whose title contains "phone", in the smartphones category
  storefront list -q phone --category smartphones

  # Machine-readable output
  storefront list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listQuery    string
	listCategory string
	listJSON     bool
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Case-insensitive title filter")
	listCmd.Flags().StringVar(&listCategory, "category", catalog.AllCategories, "Category filter")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print products as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newFileLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	loader := storefront.NewLoader(cmd.Context(), newClient(cfg),
		storefront.WithLogger(logger.WithComponent("loader")))
	defer loader.Close()

	st, err := loadState(loader, catalog.Criteria{Query: listQuery, Category: listCategory})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if listJSON {
		return writeProductsJSON(out, st.Visible)
	}
	writeProductsTable(out, st)
	return nil
}

// loadState performs the single load and applies criteria. A failed load
// is returned as an error carrying the display message.
func loadState(loader *storefront.Loader, criteria catalog.Criteria) (storefront.State, error) {
	ev, ok := loader.Load()
	if !ok {
		return storefront.State{}, errors.New("catalog load cancelled")
	}

	st := storefront.Reduce(storefront.NewState(), ev)
	st = storefront.Reduce(st, storefront.QueryChanged{Query: criteria.Query})
	st = storefront.Reduce(st, storefront.CategoryChanged{Category: criteria.Category})

	if st.Phase == storefront.PhaseFailed {
		return st, errors.New(st.Err)
	}
	return st, nil
}

func writeProductsJSON(w io.Writer, products []catalog.Product) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(products); err != nil {
		return fmt.Errorf("failed to encode products: %w", err)
	}
	return nil
}

// writeProductsTable prints the visible products. No match prints the
// header row alone.
func writeProductsTable(w io.Writer, st storefront.State) {
	rows := make([][]string, 0, len(st.Visible))
	for _, p := range st.Visible {
		rows = append(rows, []string{
			strconv.Itoa(p.ID),
			p.Title,
			p.Category,
			"$" + catalog.FormatPrice(p.Price),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE", "CATEGORY", "PRICE").
		Rows(rows...)

	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "%d of %d products\n", len(st.Visible), len(st.Catalog))
}
