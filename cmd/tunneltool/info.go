package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Faultbox/tunnel-rush/internal/game/tunnel"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Summarize the catalog",
	Long:  `Shows matrix counts per difficulty, linked matrices and obstacle density.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog()
		if err != nil {
			return err
		}
		printInfo(cmd.OutOrStdout(), flagCatalog, c)
		return nil
	},
}

func printInfo(w io.Writer, path string, c *tunnel.Catalog) {
	layout := c.Layout()
	idx := c.Index()

	linked, unpooled, obstacles := 0, 0, 0
	for _, id := range c.IDs() {
		m := c.Get(id)
		if m.HasNext() {
			linked++
		}
		if !m.InPool() {
			unpooled++
		}
		obstacles += m.CountObstacles()
	}

	fmt.Fprintf(w, "Catalog:   %s\n", path)
	fmt.Fprintf(w, "Layout:    %d rings x %d sides (%d stored cells)\n", layout.Rings, layout.Sides, layout.StoredCells())
	fmt.Fprintf(w, "Matrices:  %d (%d linked, %d link-only)\n", c.Len(), linked, unpooled)

	density := 0.0
	if c.Len() > 0 {
		density = float64(obstacles) / float64(c.Len()*layout.StoredCells()) * 100
	}
	fmt.Fprintf(w, "Obstacles: %d (%.1f%% of cells)\n", obstacles, density)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  %-10s  %s\n", "Difficulty", "Matrices")
	fmt.Fprintf(w, "  %-10s  %s\n", "----------", "--------")
	for _, level := range idx.Levels() {
		fmt.Fprintf(w, "  %-10d  %d\n", level, len(idx.Bucket(level)))
	}
}
