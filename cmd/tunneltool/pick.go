package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	enginetunnel "github.com/Faultbox/tunnel-rush/internal/engine/tunnel"
	"github.com/Faultbox/tunnel-rush/internal/game/tunnel"
)

var (
	flagPickDifficulty int
	flagPickCount      int
	flagPickSeed       int64
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Simulate the section sequence of a run",
	Long: `Builds a track the way the game does and prints the matrix chosen for
each section: links are followed, otherwise a matrix is drawn at random
from the requested difficulty.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog()
		if err != nil {
			return err
		}
		seed := flagPickSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))
		fmt.Fprintf(cmd.OutOrStdout(), "Seed %d\n", seed)
		printPicks(cmd.OutOrStdout(), c, geometry(), rng, flagPickDifficulty, flagPickCount)
		return nil
	},
}

func init() {
	pickCmd.Flags().IntVar(&flagPickDifficulty, "difficulty", 0, "Difficulty to draw from")
	pickCmd.Flags().IntVar(&flagPickCount, "count", 10, "Number of sections")
	pickCmd.Flags().Int64Var(&flagPickSeed, "seed", 0, "RNG seed (0 = random based on time)")
}

// printPicks lays out count sections on a track and lists their matrices.
func printPicks(w io.Writer, c *tunnel.Catalog, geom enginetunnel.Geometry, rng *rand.Rand, difficulty, count int) {
	if count < 1 {
		return
	}
	difficulty = c.Index().Clamp(difficulty)

	track := tunnel.NewTrack(c, geom, rng, tunnel.TrackConfig{Ahead: count - 1, Behind: count})
	track.Advance(geom.SectionLength()/2, difficulty)

	for i, s := range track.Sections() {
		if i == count {
			break
		}
		how := "random"
		if i > 0 && track.Sections()[i-1].HasNext() {
			how = "linked"
		}
		fmt.Fprintf(w, "  %3d  z=%-9.2f matrix %-4d %s\n", i, s.StartZ, s.MatrixID(), how)
	}
}
