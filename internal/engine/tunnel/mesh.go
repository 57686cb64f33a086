package tunnel

import (
	"math"

	"github.com/Faultbox/tunnel-rush/pkg/formats"
)

// Per obstacle cell: two copies of the four inner corners, five quad faces.
const (
	ObstacleVertices = 8
	ObstacleIndices  = 30
	OpenCellIndices  = 6
)

var (
	obstacleColor  = [3]float32{1, 1, 1}
	obstacleNormal = [3]float32{0, 0, -1}
)

// BuildMesh creates the mesh of one section starting at startZ.
//
// Wall normals point from the wall toward the tunnel axis, since the tunnel
// is only ever seen from inside. Open cells become a wall quad between two
// rings; obstacle cells become a box reaching halfway to the axis. The last
// ring only closes the quads of the ring before it.
func BuildMesh(startZ float64, m *formats.Matrix, geom Geometry) *Mesh {
	sides := geom.Sides
	rings := geom.Rings
	ringVerts := uint32(geom.RingVertexCount())

	angleStep := geom.AngleStep()
	edge := geom.EdgeLength()
	length := geom.SectionLength()

	vertices := make([]Vertex, 0, geom.RingVertexCount())
	var cubes []Vertex
	var indices []uint32

	bounds := Bounds{
		Min: [3]float32{float32(-geom.Radius), float32(-geom.Radius), float32(startZ)},
		Max: [3]float32{float32(geom.Radius), float32(geom.Radius), float32(startZ + length)},
	}

	// wall maps (ring, side) to its vertex index, wrapping around the circle.
	wall := func(ring, side int) uint32 {
		return uint32(ring*sides + side%sides)
	}

	obstacles := 0
	for i := range rings {
		z := edge*float64(i) + startZ
		color := depthColor((startZ + float64(i)*edge) / length)

		for j := range sides {
			theta := float64(j) * angleStep
			x := math.Cos(theta) * geom.Radius
			y := math.Sin(theta) * geom.Radius

			vertices = append(vertices, Vertex{
				Position: [3]float32{float32(x), float32(y), float32(z)},
				Normal:   inwardNormal(x, y),
				Color:    color,
				TexCoord: [2]float32{float32(i % 2), float32(j % 2)},
			})

			if i == rings-1 {
				continue
			}

			a := wall(i, j+1)
			c := wall(i, j)
			d := wall(i+1, j)
			e := wall(i+1, j+1)

			if m.Cells[i][j] != formats.CellObstacle {
				indices = append(indices,
					a, c, d,
					a, d, e,
				)
				continue
			}

			b := ringVerts + uint32(len(cubes))
			cubes = appendObstacleVertices(cubes, i, j, z, z+edge, geom.Radius/2, angleStep)
			obstacles++

			indices = append(indices,
				// front
				a, c, b,
				a, b, b+2,
				// up
				b, b+1, b+2,
				b+1, b+3, b+2,
				// back
				b+1, d, b+3,
				b+3, d, e,
				// left
				b+7, a, b+6,
				e, a, b+7,
				// right
				c, b+5, b+4,
				b+5, c, d,
			)
		}
	}

	return &Mesh{
		Vertices:  append(vertices, cubes...),
		Indices:   indices,
		Obstacles: obstacles,
		Bounds:    bounds,
	}
}

// appendObstacleVertices appends the eight inner corners of the box over
// cell (ring, side). The second set of four repeats the first with shifted
// UVs so the side faces are textured independently.
func appendObstacleVertices(dst []Vertex, ring, side int, z0, z1, inner, angleStep float64) []Vertex {
	t0 := float64(side) * angleStep
	t1 := float64(side+1) * angleStep
	x0, y0 := float32(math.Cos(t0)*inner), float32(math.Sin(t0)*inner)
	x1, y1 := float32(math.Cos(t1)*inner), float32(math.Sin(t1)*inner)

	for k := range 2 {
		dst = append(dst,
			obstacleVertex(x0, y0, z0, ring+1+k, side+k),
			obstacleVertex(x0, y0, z1, ring+k, side+k),
			obstacleVertex(x1, y1, z0, ring+1+k, side+1+k),
			obstacleVertex(x1, y1, z1, ring+k, side+1+k),
		)
	}
	return dst
}

func obstacleVertex(x, y float32, z float64, u, v int) Vertex {
	return Vertex{
		Position: [3]float32{x, y, float32(z)},
		Normal:   obstacleNormal,
		Color:    obstacleColor,
		TexCoord: [2]float32{float32(u % 2), float32(v % 2)},
	}
}

// inwardNormal returns the unit vector from a wall point at (x, y) toward
// the axis point at the same z.
func inwardNormal(x, y float64) [3]float32 {
	l := math.Hypot(x, y)
	if l == 0 {
		return [3]float32{0, 0, 0}
	}
	return [3]float32{float32(-x / l), float32(-y / l), 0}
}

// depthColor is the rainbow gradient along the tunnel. Red may exceed 1.
func depthColor(t float64) [3]float32 {
	c, s := math.Cos(t), math.Sin(t)
	return [3]float32{float32(c + s), float32(math.Abs(c)), float32(math.Abs(s))}
}
