package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Faultbox/tunnel-rush/pkg/formats"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a matrix as a grid",
	Long: `Prints one matrix, one ring per line from the start of the section.
'#' marks an obstacle and '.' an open cell. The last ring is the seam to
the next section and is always open.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid matrix id %q", args[0])
		}
		c, err := loadCatalog()
		if err != nil {
			return err
		}
		m, ok := c.Lookup(id)
		if !ok {
			return fmt.Errorf("matrix %d not in catalog", id)
		}
		printMatrix(cmd.OutOrStdout(), m)
		return nil
	},
}

func printMatrix(w io.Writer, m *formats.Matrix) {
	next := "none"
	if m.HasNext() {
		next = strconv.Itoa(m.Next)
	}
	difficulty := strconv.Itoa(m.Difficulty)
	if !m.InPool() {
		difficulty = "link-only"
	}

	fmt.Fprintf(w, "Matrix %d  difficulty %s  next %s  obstacles %d\n", m.ID, difficulty, next, m.CountObstacles())
	for ring, row := range m.Cells {
		fmt.Fprintf(w, "  %2d  ", ring)
		for _, cell := range row {
			if cell.IsObstacle() {
				fmt.Fprint(w, "#")
			} else {
				fmt.Fprint(w, ".")
			}
		}
		fmt.Fprintln(w)
	}
}
