// Command storefront browses a remote product catalog.
package main

import (
	"os"

	"github.com/Iron-Ham/storefront/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
