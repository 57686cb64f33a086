package tunnel

import (
	"math"
	"testing"

	"github.com/Faultbox/tunnel-rush/pkg/formats"
)

func TestSection_Bounds(t *testing.T) {
	c := newTestCatalog(t, testRecord{id: 1, difficulty: 0, next: -1})
	s := NewSection(5, c.Get(1), testGeometry)

	if s.Length != testGeometry.SectionLength() {
		t.Errorf("expected length %v, got %v", testGeometry.SectionLength(), s.Length)
	}
	if s.EndZ() != 5+s.Length {
		t.Errorf("expected end %v, got %v", 5+s.Length, s.EndZ())
	}
	if !s.Contains(5) || s.Contains(s.EndZ()) || s.Contains(4.99) {
		t.Error("Contains should cover [StartZ, EndZ)")
	}
	if s.MatrixID() != 1 {
		t.Errorf("expected matrix id 1, got %d", s.MatrixID())
	}
}

func TestSection_IsObstacleAtRoundTrip(t *testing.T) {
	c := newTestCatalog(t, testRecord{
		id: 1, difficulty: 0, next: -1,
		obstacles: [][2]int{{1, 2}},
	})
	startZ := 100.0
	s := NewSection(startZ, c.Get(1), testGeometry)

	step := testGeometry.AngleStep()
	edge := testGeometry.EdgeLength()
	const eps = 1e-3

	angle := 2*step + eps
	z := startZ + 1*edge + eps
	if got := s.IsObstacleAt(angle, z); got != formats.CellObstacle {
		t.Errorf("IsObstacleAt(ring 1, side 2) = %v, want Obstacle", got)
	}

	// Neighbors in both directions are open
	neighbors := []struct {
		name     string
		angle, z float64
	}{
		{"next side", 3*step + eps, z},
		{"previous side", 1*step + eps, z},
		{"next ring", angle, startZ + 2*edge + eps},
		{"previous ring", angle, startZ + eps},
	}
	for _, n := range neighbors {
		if got := s.IsObstacleAt(n.angle, n.z); got != formats.CellOpen {
			t.Errorf("%s: IsObstacleAt = %v, want Open", n.name, got)
		}
	}
}

func TestSection_CellIndexNegativeAngle(t *testing.T) {
	c := newTestCatalog(t, testRecord{
		id: 1, difficulty: 0, next: -1,
		obstacles: [][2]int{{0, 3}},
	})
	s := NewSection(0, c.Get(1), testGeometry)

	// Just below zero wraps to the last side.
	_, side := s.CellIndex(-0.01, 0.1)
	if side != testGeometry.Sides-1 {
		t.Errorf("expected side %d, got %d", testGeometry.Sides-1, side)
	}
	if got := s.IsObstacleAt(-0.01, 0.1); got != formats.CellObstacle {
		t.Errorf("IsObstacleAt(-0.01) = %v, want Obstacle", got)
	}

	// A full turn lands on the same side.
	_, side = s.CellIndex(2*math.Pi+0.01, 0.1)
	if side != 0 {
		t.Errorf("expected side 0 after a full turn, got %d", side)
	}
}

func TestSection_CellIndexRings(t *testing.T) {
	c := newTestCatalog(t, testRecord{id: 1, difficulty: 0, next: -1})
	s := NewSection(0, c.Get(1), testGeometry)

	tests := []struct {
		frac float64 // fraction of section length
		want int
	}{
		{0, 0},
		{0.2, 0},
		{0.26, 1},
		{0.74, 2},
		{0.99, 3},
	}
	for _, tc := range tests {
		ring, _ := s.CellIndex(0, tc.frac*s.Length)
		if ring != tc.want {
			t.Errorf("ring at %.2f = %d, want %d", tc.frac, ring, tc.want)
		}
	}
}

func TestSection_CellIndexBeforeStart(t *testing.T) {
	c := newTestCatalog(t, testRecord{id: 1, difficulty: 0, next: -1})
	s := NewSection(10, c.Get(1), testGeometry)

	// Just before StartZ wraps to the seam ring instead of indexing -1.
	ring, _ := s.CellIndex(0, 9.99)
	if ring != testGeometry.Rings-1 {
		t.Errorf("expected ring %d, got %d", testGeometry.Rings-1, ring)
	}
	if got := s.IsObstacleAt(0, 9.99); got != formats.CellOpen {
		t.Errorf("IsObstacleAt before start = %v, want Open", got)
	}
}

func TestSection_BuildMesh(t *testing.T) {
	c := newTestCatalog(t, testRecord{
		id: 1, difficulty: 0, next: -1,
		obstacles: [][2]int{{0, 0}, {2, 1}},
	})
	s := NewSection(0, c.Get(1), testGeometry)

	mesh := s.BuildMesh()
	if mesh.Obstacles != 2 {
		t.Errorf("expected 2 obstacles, got %d", mesh.Obstacles)
	}
}
