package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/Faultbox/tunnel-rush/internal/config"
)

var (
	flagConfigPath  string
	flagConfigForce bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the game config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config for the game",
	Long: `Writes the default game config, with the tunnel geometry and catalog taken
from the global flags. Without --path the file goes to the user config
directory, where the game looks for it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := initConfig(flagConfigPath, flagConfigForce)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().StringVar(&flagConfigPath, "path", "", "Output file (default: user config directory)")
	configInitCmd.Flags().BoolVar(&flagConfigForce, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
}

// initConfig writes defaults plus the global tunnel flags and returns the
// file written. An existing file is kept unless force is set.
func initConfig(path string, force bool) (string, error) {
	cfg := config.Default()
	cfg.Tunnel.Catalog = flagCatalog
	cfg.Tunnel.Sides = flagSides
	cfg.Tunnel.Rings = flagRings
	cfg.Tunnel.Radius = flagRadius
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	target := path
	if target == "" {
		target = config.UserConfigPath()
	}
	if !force {
		if _, err := os.Stat(target); err == nil {
			return "", fmt.Errorf("%s already exists, use --force to overwrite", target)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}

	var err error
	if path == "" {
		err = cfg.Save()
	} else {
		err = cfg.SaveTo(path)
	}
	if err != nil {
		return "", fmt.Errorf("writing config: %w", err)
	}
	return target, nil
}
