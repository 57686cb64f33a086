package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/tunnel-rush/pkg/math"
)

func near(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < 1e-4
}

func TestChaseCamera_FollowsBehindPlayer(t *testing.T) {
	c := NewChaseCamera(2, 70, 16.0/9)
	c.Follow(0, 10)

	pos := c.Position()
	if pos.Z >= 10 {
		t.Errorf("eye should trail the player, got z=%v", pos.Z)
	}
	if target := c.Target(); target.Z <= 10 {
		t.Errorf("target should be ahead of the player, got z=%v", target.Z)
	}

	// Eye stays inside the tunnel
	r := gomath.Hypot(float64(pos.X), float64(pos.Y))
	if r >= 2 {
		t.Errorf("eye radius %v should be inside the tunnel", r)
	}
}

func TestNewChaseCamera_ClipPlanes(t *testing.T) {
	c := NewChaseCamera(2.5, 70, 1)
	if !near(c.Near, 0.05) {
		t.Errorf("Near = %v, want 0.05", c.Near)
	}
	if !near(c.Far, 200) {
		t.Errorf("Far = %v, want 200", c.Far)
	}
}

func TestChaseCamera_UpPointsToAxis(t *testing.T) {
	tests := []struct {
		angle float64
		want  math.Vec3
	}{
		{0, math.Vec3{X: -1}},
		{gomath.Pi / 2, math.Vec3{Y: -1}},
		{gomath.Pi, math.Vec3{X: 1}},
	}
	c := NewChaseCamera(2, 70, 1)
	for _, tc := range tests {
		c.Follow(tc.angle, 0)
		up := c.Up()
		if !near(up.X, tc.want.X) || !near(up.Y, tc.want.Y) || up.Z != 0 {
			t.Errorf("Up at angle %v = %v, want %v", tc.angle, up, tc.want)
		}
	}
}

func TestChaseCamera_PlayerInFrontOfView(t *testing.T) {
	c := NewChaseCamera(2, 70, 1)
	c.Follow(1.2, 30)

	view := c.ViewMatrix()
	ahead := view.TransformPoint(math.Radial(1.3, 1.2, 35))
	if ahead.Z >= 0 {
		t.Errorf("point ahead of the player should have negative view z, got %v", ahead.Z)
	}
	behind := view.TransformPoint(math.Radial(1.3, 1.2, 20))
	if behind.Z <= 0 {
		t.Errorf("point behind the eye should have positive view z, got %v", behind.Z)
	}
}

func TestChaseCamera_SetAspect(t *testing.T) {
	c := NewChaseCamera(2, 70, 1)
	c.SetAspect(1920, 1080)
	if !near(c.Aspect, 1920.0/1080.0) {
		t.Errorf("aspect = %v, want %v", c.Aspect, 1920.0/1080.0)
	}
	c.SetAspect(100, 0)
	if !near(c.Aspect, 1920.0/1080.0) {
		t.Error("zero height must not change the aspect")
	}
}
