package tunnel

import (
	"math"
	"testing"

	"github.com/Faultbox/tunnel-rush/pkg/formats"
)

var testGeometry = Geometry{Radius: 2, Sides: 4, Rings: 4}

// openMatrix returns an all-open matrix sized for geom.
func openMatrix(geom Geometry) *formats.Matrix {
	cells := make([][]formats.MatrixCell, geom.Rings)
	for i := range cells {
		cells[i] = make([]formats.MatrixCell, geom.Sides)
	}
	return &formats.Matrix{ID: 1, Difficulty: 0, Next: -1, Cells: cells}
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestGeometry(t *testing.T) {
	g := Geometry{Radius: 1, Sides: 6, Rings: 5}

	// Hexagon chord equals the radius, stretched by 3
	if got := g.EdgeLength(); math.Abs(got-3) > 1e-9 {
		t.Errorf("EdgeLength() = %v, want 3", got)
	}
	if got := g.SectionLength(); math.Abs(got-12) > 1e-9 {
		t.Errorf("SectionLength() = %v, want 12", got)
	}
	if got := g.AngleStep(); math.Abs(got-math.Pi/3) > 1e-9 {
		t.Errorf("AngleStep() = %v, want pi/3", got)
	}
	if got := g.RingVertexCount(); got != 30 {
		t.Errorf("RingVertexCount() = %d, want 30", got)
	}
}

func TestBuildMesh_AllOpen(t *testing.T) {
	g := testGeometry
	mesh := BuildMesh(0, openMatrix(g), g)

	if got, want := len(mesh.Vertices), g.RingVertexCount(); got != want {
		t.Errorf("expected %d vertices, got %d", want, got)
	}
	if got, want := mesh.TriangleCount(), 2*g.Sides*(g.Rings-1); got != want {
		t.Errorf("expected %d triangles, got %d", want, got)
	}
	if mesh.Obstacles != 0 {
		t.Errorf("expected 0 obstacles, got %d", mesh.Obstacles)
	}
	for i, idx := range mesh.Indices {
		if int(idx) >= len(mesh.Vertices) {
			t.Fatalf("index %d out of range: %d", i, idx)
		}
	}
}

func TestBuildMesh_SingleObstacle(t *testing.T) {
	g := testGeometry
	base := BuildMesh(0, openMatrix(g), g)

	m := openMatrix(g)
	m.Cells[1][2] = formats.CellObstacle
	mesh := BuildMesh(0, m, g)

	if got := len(mesh.Vertices) - len(base.Vertices); got != ObstacleVertices {
		t.Errorf("expected %d extra vertices, got %d", ObstacleVertices, got)
	}
	if got, want := len(mesh.Indices)-len(base.Indices), ObstacleIndices-OpenCellIndices; got != want {
		t.Errorf("expected %d extra indices, got %d", want, got)
	}
	if mesh.Obstacles != 1 {
		t.Errorf("expected 1 obstacle, got %d", mesh.Obstacles)
	}

	// Obstacle vertices sit after every ring vertex
	ringVerts := g.RingVertexCount()
	for i := ringVerts; i < len(mesh.Vertices); i++ {
		v := mesh.Vertices[i]
		r := math.Hypot(float64(v.Position[0]), float64(v.Position[1]))
		if math.Abs(r-g.Radius/2) > 1e-4 {
			t.Errorf("obstacle vertex %d at radius %v, want %v", i, r, g.Radius/2)
		}
		if v.Normal != obstacleNormal {
			t.Errorf("obstacle vertex %d normal %v, want %v", i, v.Normal, obstacleNormal)
		}
	}

	maxIdx := uint32(0)
	for _, idx := range mesh.Indices {
		if idx > maxIdx {
			maxIdx = idx
		}
	}
	if int(maxIdx) != len(mesh.Vertices)-1 {
		t.Errorf("expected highest index %d, got %d", len(mesh.Vertices)-1, maxIdx)
	}
}

func TestBuildMesh_ObstacleOffsetsAccumulate(t *testing.T) {
	g := testGeometry
	m := openMatrix(g)
	m.Cells[0][0] = formats.CellObstacle
	m.Cells[2][3] = formats.CellObstacle

	mesh := BuildMesh(0, m, g)

	if got, want := len(mesh.Vertices), g.RingVertexCount()+2*ObstacleVertices; got != want {
		t.Errorf("expected %d vertices, got %d", want, got)
	}
	want := 2*g.Sides*(g.Rings-1)*3 + 2*(ObstacleIndices-OpenCellIndices)
	if len(mesh.Indices) != want {
		t.Errorf("expected %d indices, got %d", want, len(mesh.Indices))
	}

	// Second box references the second block of eight vertices
	second := uint32(g.RingVertexCount() + ObstacleVertices)
	found := false
	for _, idx := range mesh.Indices {
		if idx == second+7 {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("expected an index referencing vertex %d", second+7)
	}
}

func TestBuildMesh_RingPositions(t *testing.T) {
	g := testGeometry
	startZ := 10.0
	mesh := BuildMesh(startZ, openMatrix(g), g)
	edge := g.EdgeLength()

	for i := range g.Rings {
		for j := range g.Sides {
			v := mesh.Vertices[i*g.Sides+j]
			theta := float64(j) * g.AngleStep()
			wantX := float32(math.Cos(theta) * g.Radius)
			wantY := float32(math.Sin(theta) * g.Radius)
			wantZ := float32(startZ + edge*float64(i))
			if !approx(v.Position[0], wantX) || !approx(v.Position[1], wantY) || !approx(v.Position[2], wantZ) {
				t.Errorf("vertex (%d,%d) at %v, want (%v,%v,%v)", i, j, v.Position, wantX, wantY, wantZ)
			}
			if v.TexCoord != [2]float32{float32(i % 2), float32(j % 2)} {
				t.Errorf("vertex (%d,%d) uv %v", i, j, v.TexCoord)
			}
		}
	}

	if mesh.Bounds.Min[2] != float32(startZ) {
		t.Errorf("expected bounds min z %v, got %v", startZ, mesh.Bounds.Min[2])
	}
}

func TestBuildMesh_NormalsPointInward(t *testing.T) {
	g := Geometry{Radius: 3, Sides: 8, Rings: 3}
	mesh := BuildMesh(0, openMatrix(g), g)

	for i := 0; i < g.RingVertexCount(); i++ {
		v := mesh.Vertices[i]
		n := v.Normal
		length := math.Sqrt(float64(n[0]*n[0] + n[1]*n[1] + n[2]*n[2]))
		if math.Abs(length-1) > 1e-4 {
			t.Errorf("vertex %d normal length %v", i, length)
		}
		// Points toward the axis: opposite the radial direction
		dot := v.Position[0]*n[0] + v.Position[1]*n[1]
		if dot >= 0 {
			t.Errorf("vertex %d normal %v does not point inward", i, n)
		}
		if n[2] != 0 {
			t.Errorf("vertex %d normal has z component %v", i, n[2])
		}
	}
}

func TestBuildMesh_DepthColor(t *testing.T) {
	g := testGeometry
	mesh := BuildMesh(0, openMatrix(g), g)

	// First ring at t=0: (cos0+sin0, |cos0|, |sin0|)
	if got := mesh.Vertices[0].Color; got != [3]float32{1, 1, 0} {
		t.Errorf("expected color (1,1,0) at t=0, got %v", got)
	}

	last := mesh.Vertices[(g.Rings-1)*g.Sides].Color
	want := depthColor(1)
	if last != want {
		t.Errorf("expected color %v at t=1, got %v", want, last)
	}
}

func TestBuildMesh_OpenWinding(t *testing.T) {
	g := testGeometry
	mesh := BuildMesh(0, openMatrix(g), g)

	// Cell (0,3) wraps around to side 0
	cell := 3
	got := mesh.Indices[cell*OpenCellIndices : (cell+1)*OpenCellIndices]
	want := []uint32{0, 3, 7, 0, 7, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cell (0,3) indices = %v, want %v", got, want)
		}
	}
}

func TestMesh_Stats(t *testing.T) {
	m := openMatrix(testGeometry)
	m.Cells[0][0] = formats.CellObstacle
	m.Cells[2][3] = formats.CellObstacle

	st := BuildMesh(10, m, testGeometry).Stats()

	wantVerts := testGeometry.RingVertexCount() + 2*ObstacleVertices
	cells := (testGeometry.Rings - 1) * testGeometry.Sides
	wantIdx := (cells-2)*OpenCellIndices + 2*ObstacleIndices

	if st.Vertices != wantVerts {
		t.Errorf("Vertices = %d, want %d", st.Vertices, wantVerts)
	}
	if st.Indices != wantIdx || st.Triangles != wantIdx/3 {
		t.Errorf("Indices = %d, Triangles = %d; want %d, %d", st.Indices, st.Triangles, wantIdx, wantIdx/3)
	}
	if st.Obstacles != 2 {
		t.Errorf("Obstacles = %d, want 2", st.Obstacles)
	}
	if st.Bounds.Min[2] != 10 {
		t.Errorf("Bounds.Min z = %v, want 10", st.Bounds.Min[2])
	}
}
