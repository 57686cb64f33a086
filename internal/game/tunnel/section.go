package tunnel

import (
	"math"

	enginetunnel "github.com/Faultbox/tunnel-rush/internal/engine/tunnel"
	"github.com/Faultbox/tunnel-rush/pkg/formats"
)

// Section is one live segment of the tunnel, backed by a single matrix.
type Section struct {
	StartZ float64
	Length float64
	Matrix *formats.Matrix

	geom enginetunnel.Geometry
}

// NewSection creates a section starting at startZ using matrix m.
func NewSection(startZ float64, m *formats.Matrix, geom enginetunnel.Geometry) *Section {
	return &Section{
		StartZ: startZ,
		Length: geom.SectionLength(),
		Matrix: m,
		geom:   geom,
	}
}

// MatrixID returns the id of the matrix this section renders.
func (s *Section) MatrixID() int {
	return s.Matrix.ID
}

// EndZ returns the world z where the next section begins.
func (s *Section) EndZ() float64 {
	return s.StartZ + s.Length
}

// Contains reports whether z lies within [StartZ, EndZ).
func (s *Section) Contains(z float64) bool {
	return z >= s.StartZ && z < s.EndZ()
}

// HasNext reports whether the matrix forces the following section.
func (s *Section) HasNext() bool {
	return s.Matrix.HasNext()
}

// NextID returns the forced successor id.
func (s *Section) NextID() int {
	return PickLinked(s.Matrix)
}

// Radius returns the tunnel radius.
func (s *Section) Radius() float64 {
	return s.geom.Radius
}

// BuildMesh generates the section's renderable geometry.
func (s *Section) BuildMesh() *enginetunnel.Mesh {
	return enginetunnel.BuildMesh(s.StartZ, s.Matrix, s.geom)
}

// CellIndex maps a world angle and z to the matrix ring and side.
// z should lie within the section; outside it both indices wrap modulo
// the grid size rather than clamp.
func (s *Section) CellIndex(angle, z float64) (ring, side int) {
	rings := s.geom.Rings
	sides := s.geom.Sides

	ring = int(math.Floor((z-s.StartZ)/s.Length*float64(rings))) % rings
	side = int(math.Floor(angle/(2*math.Pi)*float64(sides))) % sides
	if ring < 0 {
		ring += rings
	}
	if side < 0 {
		side += sides
	}
	return ring, side
}

// IsObstacleAt returns the cell under the given world angle and z.
// z must lie within [StartZ, EndZ); selecting the right section is the
// caller's job.
func (s *Section) IsObstacleAt(angle, z float64) formats.MatrixCell {
	ring, side := s.CellIndex(angle, z)
	return s.Matrix.Cells[ring][side]
}
