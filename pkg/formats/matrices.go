// Package formats provides parsers for tunnel-rush data files.
package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Matrix catalog format errors.
var (
	ErrTruncatedMatrixData = errors.New("truncated matrix data")
	ErrInvalidMatrixToken  = errors.New("invalid matrix token")
	ErrInvalidMatrixCount  = errors.New("invalid matrix count")
	ErrInvalidMatrixCell   = errors.New("invalid matrix cell")
	ErrInvalidMatrixLayout = errors.New("invalid matrix layout")
)

// MatrixCell classifies one cell of a tunnel cross-section grid.
type MatrixCell uint8

// Cell values as stored in the catalog file.
const (
	CellOpen     MatrixCell = 0 // Wall present, nothing to dodge
	CellObstacle MatrixCell = 1 // Extruded block the player must avoid
)

// String returns a human-readable cell name.
func (c MatrixCell) String() string {
	switch c {
	case CellOpen:
		return "Open"
	case CellObstacle:
		return "Obstacle"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}

// IsObstacle returns true if the cell blocks the player.
func (c MatrixCell) IsObstacle() bool {
	return c == CellObstacle
}

// MatrixLayout is the grid size every matrix in a catalog shares.
type MatrixLayout struct {
	Rings int // Rows along z, including the synthesized seam row
	Sides int // Columns around the tunnel circumference
}

// Validate checks the layout can hold at least one stored row.
func (l MatrixLayout) Validate() error {
	if l.Rings < 2 || l.Sides < 3 {
		return fmt.Errorf("%w: %d rings x %d sides", ErrInvalidMatrixLayout, l.Rings, l.Sides)
	}
	return nil
}

// StoredCells returns the number of cell values each record carries on disk.
// The last ring is not stored.
func (l MatrixLayout) StoredCells() int {
	return (l.Rings - 1) * l.Sides
}

// Matrix is one obstacle layout from the catalog.
type Matrix struct {
	ID         int
	Difficulty int // -1 keeps the matrix out of the random pool
	Next       int // Forced successor id, negative for none
	Cells      [][]MatrixCell
}

// HasNext reports whether the matrix forces its successor.
func (m *Matrix) HasNext() bool {
	return m.Next >= 0
}

// InPool reports whether the matrix may be picked by difficulty.
func (m *Matrix) InPool() bool {
	return m.Difficulty >= 0
}

// Cell returns the cell at the given ring and side.
func (m *Matrix) Cell(ring, side int) MatrixCell {
	return m.Cells[ring][side]
}

// CountObstacles returns the number of obstacle cells in the matrix.
func (m *Matrix) CountObstacles() int {
	n := 0
	for _, row := range m.Cells {
		for _, c := range row {
			if c.IsObstacle() {
				n++
			}
		}
	}
	return n
}

// ParseMatrices parses a matrix catalog from raw bytes.
//
// The format is whitespace-delimited integers: a record count, then for each
// record "id difficulty next" followed by (Rings-1)*Sides cells in ring-major
// order. The final ring of every matrix is synthesized as open.
func ParseMatrices(data []byte, layout MatrixLayout) ([]Matrix, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	s := newTokenScanner(data)

	count, err := s.next("matrix count")
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMatrixCount, count)
	}

	matrices := make([]Matrix, 0, count)
	for i := 0; i < count; i++ {
		m, err := parseMatrix(s, layout)
		if err != nil {
			return nil, fmt.Errorf("parsing matrix %d of %d: %w", i+1, count, err)
		}
		matrices = append(matrices, m)
	}

	return matrices, nil
}

// parseMatrix parses a single record.
func parseMatrix(s *tokenScanner, layout MatrixLayout) (Matrix, error) {
	var m Matrix
	var err error

	if m.ID, err = s.next("id"); err != nil {
		return Matrix{}, err
	}
	if m.Difficulty, err = s.next("difficulty"); err != nil {
		return Matrix{}, err
	}
	if m.Next, err = s.next("next"); err != nil {
		return Matrix{}, err
	}

	m.Cells = make([][]MatrixCell, layout.Rings)
	for ring := 0; ring < layout.Rings-1; ring++ {
		row := make([]MatrixCell, layout.Sides)
		for side := range row {
			v, err := s.next("cell")
			if err != nil {
				return Matrix{}, fmt.Errorf("ring %d side %d: %w", ring, side, err)
			}
			if v != int(CellOpen) && v != int(CellObstacle) {
				return Matrix{}, fmt.Errorf("%w: %d at ring %d side %d", ErrInvalidMatrixCell, v, ring, side)
			}
			row[side] = MatrixCell(v)
		}
		m.Cells[ring] = row
	}

	// Seam row connecting to the next section, always open
	m.Cells[layout.Rings-1] = make([]MatrixCell, layout.Sides)

	return m, nil
}

// ParseMatricesFile parses a matrix catalog from disk.
func ParseMatricesFile(path string, layout MatrixLayout) ([]Matrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading matrix file: %w", err)
	}
	return ParseMatrices(data, layout)
}

// tokenScanner yields integer tokens from whitespace-separated text.
type tokenScanner struct {
	sc  *bufio.Scanner
	pos int
}

func newTokenScanner(data []byte) *tokenScanner {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Split(bufio.ScanWords)
	return &tokenScanner{sc: sc}
}

// next reads the next integer, naming the field in errors.
func (t *tokenScanner) next(field string) (int, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, fmt.Errorf("reading %s: %w", field, err)
		}
		return 0, fmt.Errorf("%w: reading %s", ErrTruncatedMatrixData, field)
	}
	t.pos++

	v, err := strconv.Atoi(t.sc.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q at token %d", ErrInvalidMatrixToken, field, t.sc.Text(), t.pos)
	}
	return v, nil
}
