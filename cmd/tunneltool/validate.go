package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Faultbox/tunnel-rush/internal/game/tunnel"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Report content problems",
	Long: `Loads the catalog and reports anything that would crash the game or make
a section impassable. Exits with status 1 when problems are found.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog()
		if err != nil {
			return err
		}
		if n := printProblems(cmd.OutOrStdout(), c); n > 0 {
			return fmt.Errorf("%d problem(s) found in %s", n, flagCatalog)
		}
		return nil
	},
}

// printProblems writes one line per problem and returns how many there were.
func printProblems(w io.Writer, c *tunnel.Catalog) int {
	problems := c.Check()
	if len(problems) == 0 {
		fmt.Fprintf(w, "OK: %d matrices, no problems\n", c.Len())
		return 0
	}
	for _, p := range problems {
		fmt.Fprintf(w, "  %s\n", p)
	}
	return len(problems)
}
