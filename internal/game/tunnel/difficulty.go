package tunnel

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/Faultbox/tunnel-rush/pkg/formats"
)

// DifficultyIndex groups pool-eligible matrix ids by difficulty level.
type DifficultyIndex struct {
	buckets       map[int][]int
	maxDifficulty int
}

// newDifficultyIndex rebuilds the index from the catalog's final contents.
func newDifficultyIndex(c *Catalog) *DifficultyIndex {
	idx := &DifficultyIndex{buckets: make(map[int][]int)}

	// c.ids is sorted, so every bucket comes out sorted too.
	for _, id := range c.ids {
		m := c.matrices[id]
		if !m.InPool() {
			continue
		}
		if m.Difficulty > idx.maxDifficulty {
			idx.maxDifficulty = m.Difficulty
		}
		idx.buckets[m.Difficulty] = append(idx.buckets[m.Difficulty], id)
	}

	return idx
}

// MaxDifficulty returns the highest difficulty of any pooled matrix, or 0.
func (d *DifficultyIndex) MaxDifficulty() int {
	return d.maxDifficulty
}

// Bucket returns the ids at exactly the given difficulty, ascending.
func (d *DifficultyIndex) Bucket(difficulty int) []int {
	return slices.Clone(d.buckets[difficulty])
}

// Levels returns the difficulty levels that have at least one matrix.
func (d *DifficultyIndex) Levels() []int {
	levels := make([]int, 0, len(d.buckets))
	for level := range d.buckets {
		levels = append(levels, level)
	}
	slices.Sort(levels)
	return levels
}

// Clamp lowers difficulty to the maximum available level. It never raises it.
func (d *DifficultyIndex) Clamp(difficulty int) int {
	if difficulty > d.maxDifficulty {
		return d.maxDifficulty
	}
	return difficulty
}

// PickRandom returns a matrix id chosen uniformly among those at the
// (clamped) difficulty. An empty bucket means the catalog has no content
// for that level, which is a configuration bug, so it panics.
func (d *DifficultyIndex) PickRandom(rng *rand.Rand, difficulty int) int {
	level := d.Clamp(difficulty)
	bucket := d.buckets[level]
	if len(bucket) == 0 {
		panic(fmt.Sprintf("tunnel: no matrix at difficulty %d (requested %d)", level, difficulty))
	}
	return bucket[rng.Intn(len(bucket))]
}

// PickLinked returns the forced successor of m.
// Only meaningful when m.HasNext() is true.
func PickLinked(m *formats.Matrix) int {
	return m.Next
}
