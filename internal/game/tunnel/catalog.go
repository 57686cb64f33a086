// Package tunnel holds the gameplay side of the tunnel: the matrix catalog,
// difficulty-based selection, sections and the track that strings them together.
package tunnel

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/Faultbox/tunnel-rush/internal/logger"
	"github.com/Faultbox/tunnel-rush/pkg/formats"
)

// Catalog is the immutable set of obstacle matrices, keyed by id.
// Build it once at startup and share it by pointer.
type Catalog struct {
	layout   formats.MatrixLayout
	matrices map[int]*formats.Matrix
	ids      []int
	index    *DifficultyIndex
}

// NewCatalog builds a catalog from parsed records.
// A record whose id repeats an earlier one replaces it.
func NewCatalog(records []formats.Matrix, layout formats.MatrixLayout) *Catalog {
	c := &Catalog{
		layout:   layout,
		matrices: make(map[int]*formats.Matrix, len(records)),
	}

	for i := range records {
		m := &records[i]
		if _, dup := c.matrices[m.ID]; dup {
			logger.Debug("duplicate matrix id, keeping last", zap.Int("id", m.ID))
		}
		c.matrices[m.ID] = m
	}

	c.ids = make([]int, 0, len(c.matrices))
	for id := range c.matrices {
		c.ids = append(c.ids, id)
	}
	slices.Sort(c.ids)

	c.index = newDifficultyIndex(c)
	return c
}

// LoadCatalog reads and indexes a catalog file.
// Any error means the game has no tunnel content and cannot start.
func LoadCatalog(path string, layout formats.MatrixLayout) (*Catalog, error) {
	records, err := formats.ParseMatricesFile(path, layout)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}

	c := NewCatalog(records, layout)
	logger.Info("matrix catalog loaded",
		zap.String("path", path),
		zap.Int("records", len(records)),
		zap.Int("matrices", c.Len()),
		zap.Int("max_difficulty", c.index.MaxDifficulty()),
	)
	return c, nil
}

// Layout returns the grid size shared by all matrices.
func (c *Catalog) Layout() formats.MatrixLayout {
	return c.layout
}

// Len returns the number of distinct matrices.
func (c *Catalog) Len() int {
	return len(c.matrices)
}

// IDs returns all matrix ids in ascending order.
func (c *Catalog) IDs() []int {
	return slices.Clone(c.ids)
}

// Lookup returns the matrix with the given id.
func (c *Catalog) Lookup(id int) (*formats.Matrix, bool) {
	m, ok := c.matrices[id]
	return m, ok
}

// Get returns the matrix with the given id.
// Ids always originate from the catalog itself, so a miss is a bug and panics.
func (c *Catalog) Get(id int) *formats.Matrix {
	m, ok := c.matrices[id]
	if !ok {
		panic(fmt.Sprintf("tunnel: matrix %d not in catalog", id))
	}
	return m
}

// Index returns the difficulty index derived from this catalog.
func (c *Catalog) Index() *DifficultyIndex {
	return c.index
}

// DanglingLinks returns ids of matrices whose next link names a missing matrix.
func (c *Catalog) DanglingLinks() []int {
	var dangling []int
	for _, id := range c.ids {
		m := c.matrices[id]
		if !m.HasNext() {
			continue
		}
		if _, ok := c.matrices[m.Next]; !ok {
			dangling = append(dangling, id)
		}
	}
	return dangling
}
