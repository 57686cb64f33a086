package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestHeldKeys(t *testing.T) {
	in := New()

	in.push(Event{Type: EventKeyDown, Key: sdl.SCANCODE_LEFT})
	if !in.IsKeyHeld(sdl.SCANCODE_LEFT) {
		t.Error("left should be held after key down")
	}
	if !in.IsKeyPressed(sdl.SCANCODE_LEFT) {
		t.Error("left should be pressed this frame")
	}

	in.push(Event{Type: EventKeyUp, Key: sdl.SCANCODE_LEFT})
	if in.IsKeyHeld(sdl.SCANCODE_LEFT) {
		t.Error("left should be released after key up")
	}
}

func TestSteer(t *testing.T) {
	tests := []struct {
		name string
		keys []sdl.Scancode
		want float64
	}{
		{"none", nil, 0},
		{"left arrow", []sdl.Scancode{sdl.SCANCODE_LEFT}, -1},
		{"a key", []sdl.Scancode{sdl.SCANCODE_A}, -1},
		{"right arrow", []sdl.Scancode{sdl.SCANCODE_RIGHT}, 1},
		{"d key", []sdl.Scancode{sdl.SCANCODE_D}, 1},
		{"both cancel", []sdl.Scancode{sdl.SCANCODE_LEFT, sdl.SCANCODE_D}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := New()
			for _, k := range tt.keys {
				in.push(Event{Type: EventKeyDown, Key: k})
			}
			if got := in.Steer(); got != tt.want {
				t.Errorf("Steer() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResize(t *testing.T) {
	in := New()
	if _, _, ok := in.Resize(); ok {
		t.Error("expected no resize without events")
	}

	in.push(Event{Type: EventWindowResize, Width: 800, Height: 600})
	in.push(Event{Type: EventWindowResize, Width: 1024, Height: 768})

	w, h, ok := in.Resize()
	if !ok || w != 1024 || h != 768 {
		t.Errorf("Resize() = %d, %d, %v; want latest 1024x768", w, h, ok)
	}
}
