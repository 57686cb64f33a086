package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	enginetunnel "github.com/Faultbox/tunnel-rush/internal/engine/tunnel"
	"github.com/Faultbox/tunnel-rush/internal/game/tunnel"
)

var flagStartZ float64

var meshCmd = &cobra.Command{
	Use:   "mesh <id>",
	Short: "Build a section mesh and print its stats",
	Args:  cobra.ExactArgs(1),
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
		section := tunnel.NewSection(flagStartZ, m, geometry())
		printMeshStats(cmd.OutOrStdout(), section, geometry())
		return nil
	},
}

func init() {
	meshCmd.Flags().Float64Var(&flagStartZ, "start-z", 0, "World z where the section starts")
}

func printMeshStats(w io.Writer, s *tunnel.Section, geom enginetunnel.Geometry) {
	st := s.BuildMesh().Stats()

	fmt.Fprintf(w, "Section:   matrix %d, z %.2f to %.2f\n", s.MatrixID(), s.StartZ, s.EndZ())
	fmt.Fprintf(w, "Geometry:  radius %.2f, edge %.3f, %d sides x %d rings\n",
		geom.Radius, geom.EdgeLength(), geom.Sides, geom.Rings)
	fmt.Fprintf(w, "Vertices:  %d\n", st.Vertices)
	fmt.Fprintf(w, "Indices:   %d (%d triangles)\n", st.Indices, st.Triangles)
	fmt.Fprintf(w, "Obstacles: %d\n", st.Obstacles)
	fmt.Fprintf(w, "Bounds:    %v - %v\n", st.Bounds.Min, st.Bounds.Max)
}
