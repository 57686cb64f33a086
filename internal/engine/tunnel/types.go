// Package tunnel builds renderable meshes for tunnel sections.
package tunnel

import (
	"math"

	"github.com/Faultbox/tunnel-rush/pkg/formats"
)

// Edge length is the chord between adjacent sides scaled by this factor.
const edgeStretch = 3

// Geometry holds the fixed tunnel dimensions shared by every section.
type Geometry struct {
	Radius float64 // Distance from the tunnel axis to the wall
	Sides  int     // Polygon sides per ring
	Rings  int     // Rings along z per section, including the seam ring
}

// Layout returns the matrix grid size matching this geometry.
func (g Geometry) Layout() formats.MatrixLayout {
	return formats.MatrixLayout{Rings: g.Rings, Sides: g.Sides}
}

// AngleStep returns the angle between adjacent sides in radians.
func (g Geometry) AngleStep() float64 {
	return 2 * math.Pi / float64(g.Sides)
}

// EdgeLength returns the distance between adjacent rings.
func (g Geometry) EdgeLength() float64 {
	return g.Radius * 2 * math.Sin(math.Pi/float64(g.Sides)) * edgeStretch
}

// SectionLength returns the z span of one section.
func (g Geometry) SectionLength() float64 {
	return g.EdgeLength() * float64(g.Rings-1)
}

// RingVertexCount returns the number of wall vertices in a section mesh.
func (g Geometry) RingVertexCount() int {
	return g.Rings * g.Sides
}

// Vertex represents a tunnel mesh vertex with all attributes.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	Color    [3]float32
	TexCoord [2]float32
}

// Mesh holds the complete section mesh ready for GPU upload.
// Wall vertices come first, obstacle vertices follow.
type Mesh struct {
	Vertices  []Vertex
	Indices   []uint32
	Obstacles int // Obstacle cells extruded into boxes
	Bounds    Bounds
}

// Bounds holds the axis-aligned bounding box of a section.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Stats summarizes a mesh for tooling and logs.
type Stats struct {
	Vertices  int
	Indices   int
	Triangles int
	Obstacles int
	Bounds    Bounds
}

// Stats returns the mesh's element counts and bounds.
func (m *Mesh) Stats() Stats {
	return Stats{
		Vertices:  len(m.Vertices),
		Indices:   len(m.Indices),
		Triangles: m.TriangleCount(),
		Obstacles: m.Obstacles,
		Bounds:    m.Bounds,
	}
}
