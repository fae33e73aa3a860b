package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func key(typ uint32, code sdl.Scancode, repeat uint8) *sdl.KeyboardEvent {
	return &sdl.KeyboardEvent{Type: typ, Repeat: repeat, Keysym: sdl.Keysym{Scancode: code}}
}

func TestHeldKeysSurviveFrames(t *testing.T) {
	in := New()
	in.handle(key(sdl.KEYDOWN, sdl.SCANCODE_W, 0))

	if !in.IsKeyPressed(sdl.SCANCODE_W) {
		t.Error("expected W pressed this frame")
	}
	if !in.IsKeyDown(sdl.SCANCODE_W) {
		t.Error("expected W held")
	}

	in.reset()
	if in.IsKeyPressed(sdl.SCANCODE_W) {
		t.Error("expected no new press on the next frame")
	}
	if !in.IsKeyDown(sdl.SCANCODE_W) {
		t.Error("expected W still held on the next frame")
	}

	in.handle(key(sdl.KEYUP, sdl.SCANCODE_W, 0))
	if in.IsKeyDown(sdl.SCANCODE_W) {
		t.Error("expected W released")
	}
}

func TestKeyRepeatIsNotAPress(t *testing.T) {
	in := New()
	in.handle(key(sdl.KEYDOWN, sdl.SCANCODE_Q, 1))

	if in.IsKeyPressed(sdl.SCANCODE_Q) {
		t.Error("expected auto-repeat to be ignored as a press")
	}
	if !in.IsKeyDown(sdl.SCANCODE_Q) {
		t.Error("expected Q held")
	}
}

func TestMouseDeltaAccumulates(t *testing.T) {
	in := New()
	in.handle(&sdl.MouseMotionEvent{XRel: 3, YRel: -2})
	in.handle(&sdl.MouseMotionEvent{XRel: 4, YRel: 1})

	dx, dy := in.MouseDelta()
	if dx != 7 || dy != -1 {
		t.Errorf("expected (7, -1), got (%v, %v)", dx, dy)
	}

	in.reset()
	if dx, dy := in.MouseDelta(); dx != 0 || dy != 0 {
		t.Errorf("expected delta reset, got (%v, %v)", dx, dy)
	}
}

func TestResizeAndQuit(t *testing.T) {
	in := New()
	in.handle(&sdl.WindowEvent{Event: sdl.WINDOWEVENT_RESIZED, Data1: 800, Data2: 600})

	w, h, ok := in.Resized()
	if !ok || w != 800 || h != 600 {
		t.Errorf("expected resize to 800x600, got %dx%d (%v)", w, h, ok)
	}
	if in.Quit() {
		t.Error("expected no quit yet")
	}

	in.handle(&sdl.QuitEvent{})
	if !in.Quit() {
		t.Error("expected quit")
	}
	if got := in.Events()[len(in.Events())-1].Type; got != EventQuit {
		t.Errorf("expected last event EventQuit, got %v", got)
	}
}
