package math

import (
	"math"
	"testing"
)

func TestVec3Ops(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add: got %v", got)
	}
	if got := b.Sub(a); got != (Vec3{3, 3, 3}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Scale: got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot: got %v, want 32", got)
	}
	if got := (Vec3{1, 0, 0}).Cross(Vec3{0, 1, 0}); got != (Vec3{0, 0, 1}) {
		t.Errorf("Cross: got %v, want (0, 0, 1)", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	if got := (Vec3{3, 0, 4}).Normalize(); !nearVec(got, Vec3{0.6, 0, 0.8}) {
		t.Errorf("Normalize: got %v", got)
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize zero: got %v", got)
	}
}

func TestRadial(t *testing.T) {
	tests := []struct {
		angle float64
		want  Vec3
	}{
		{0, Vec3{2, 0, 7}},
		{math.Pi / 2, Vec3{0, 2, 7}},
		{math.Pi, Vec3{-2, 0, 7}},
	}
	for _, tc := range tests {
		if got := Radial(2, tc.angle, 7); !nearVec(got, tc.want) {
			t.Errorf("Radial(2, %v, 7) = %v, want %v", tc.angle, got, tc.want)
		}
	}
}
