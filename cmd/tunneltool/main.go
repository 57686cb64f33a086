// tunneltool inspects tunnel matrix catalogs.
//
// Usage:
//
//	tunneltool info                 - Summarize the catalog
//	tunneltool show <id>            - Print a matrix as a grid
//	tunneltool pick                 - Simulate the section sequence of a run
//	tunneltool mesh <id>            - Build a section mesh and print its stats
//	tunneltool validate             - Report content problems, exit 1 if any
//	tunneltool config init          - Write a default config for the game
//
// Global flags:
//
//	--catalog <path>  - Catalog file (default: data/matrices.txt)
//	--sides <n>       - Polygon sides per ring
//	--rings <n>       - Rings per section, including the seam ring
//	--radius <r>      - Tunnel radius
//	--debug           - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Faultbox/tunnel-rush/internal/config"
	enginetunnel "github.com/Faultbox/tunnel-rush/internal/engine/tunnel"
	"github.com/Faultbox/tunnel-rush/internal/game/tunnel"
	"github.com/Faultbox/tunnel-rush/internal/logger"
)

var (
	// Global flags
	flagCatalog string
	flagSides   int
	flagRings   int
	flagRadius  float64
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tunneltool",
	Short: "Inspect and validate tunnel matrix catalogs",
	Long: `tunneltool reads a matrix catalog the same way the game does and
reports on its contents.

Examples:
  tunneltool info
  tunneltool show 12
  tunneltool pick --difficulty 2 --count 20 --seed 7
  tunneltool mesh 12 --start-z 100
  tunneltool validate --catalog levels/hard.txt`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "warn"
		if flagDebug {
			level = "debug"
		}
		return logger.Init(level, "")
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func init() {
	defaults := config.Default().Tunnel

	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", defaults.Catalog, "Path to the matrix catalog")
	rootCmd.PersistentFlags().IntVar(&flagSides, "sides", defaults.Sides, "Polygon sides per ring")
	rootCmd.PersistentFlags().IntVar(&flagRings, "rings", defaults.Rings, "Rings per section, including the seam ring")
	rootCmd.PersistentFlags().Float64Var(&flagRadius, "radius", defaults.Radius, "Tunnel radius")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(meshCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(configCmd)
}

// geometry returns the tunnel geometry selected by the global flags.
func geometry() enginetunnel.Geometry {
	return enginetunnel.Geometry{Radius: flagRadius, Sides: flagSides, Rings: flagRings}
}

// loadCatalog loads the catalog selected by the global flags.
func loadCatalog() (*tunnel.Catalog, error) {
	return tunnel.LoadCatalog(flagCatalog, geometry().Layout())
}
