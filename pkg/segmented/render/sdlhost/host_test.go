package sdlhost

import (
	"testing"

	"github.com/BrandonKowalski/segmented/pkg/segmented"
	"github.com/BrandonKowalski/segmented/pkg/segmented/constants"
	"github.com/BrandonKowalski/segmented/pkg/segmented/render/raster"
	"github.com/veandco/go-sdl2/sdl"
)

func TestPlacement(t *testing.T) {
	origin, width := placement(407, 120)

	if width != 375 {
		t.Errorf("placement width failed: expected 375, got %d", width)
	}
	if origin != segmented.Pt(constants.HostPadding, 40) {
		t.Errorf("placement origin failed: expected (16,40), got %v", origin)
	}

	if _, width := placement(10, 10); width != 0 {
		t.Errorf("narrow placement failed: expected 0, got %d", width)
	}
}

func TestPointerEventMouse(t *testing.T) {
	down := &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, X: 30, Y: 50}
	pe, ok := pointerEvent(down, 400, 120)
	if !ok || pe.Kind != segmented.PointerDown || pe.ID != segmented.MousePointerID || pe.Point != segmented.Pt(30, 50) {
		t.Errorf("mouse down failed: got %+v, %v", pe, ok)
	}

	up := &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_LEFT}
	if pe, _ := pointerEvent(up, 400, 120); pe.Kind != segmented.PointerUp {
		t.Errorf("mouse up failed: expected up, got %v", pe.Kind)
	}

	right := &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_RIGHT}
	if _, ok := pointerEvent(right, 400, 120); ok {
		t.Error("right button failed: expected event to be ignored")
	}

	synthesized := &sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, Which: touchMouseID}
	if _, ok := pointerEvent(synthesized, 400, 120); ok {
		t.Error("synthesized mouse failed: expected event to be ignored")
	}
}

func TestPointerEventFinger(t *testing.T) {
	ev := &sdl.TouchFingerEvent{Type: sdl.FINGERMOTION, FingerID: 0, X: 0.5, Y: 0.25}
	pe, ok := pointerEvent(ev, 400, 120)

	if !ok || pe.Kind != segmented.PointerMove {
		t.Fatalf("finger motion failed: got %+v, %v", pe, ok)
	}
	if pe.Point != segmented.Pt(200, 30) {
		t.Errorf("finger scaling failed: expected (200,30), got %v", pe.Point)
	}
	if pe.ID == segmented.MousePointerID {
		t.Error("finger id failed: collides with the mouse pointer")
	}
}

func TestNextAppearanceCycles(t *testing.T) {
	a := segmented.AppearanceUnspecified
	seen := []segmented.Appearance{}
	for i := 0; i < 3; i++ {
		a = nextAppearance(a)
		seen = append(seen, a)
	}

	expected := []segmented.Appearance{segmented.AppearanceLight, segmented.AppearanceDark, segmented.AppearanceUnspecified}
	for i := range expected {
		if seen[i] != expected[i] {
			t.Errorf("nextAppearance failed at %d: expected %v, got %v", i, expected[i], seen[i])
		}
	}
}

func TestWindowSizeDefaults(t *testing.T) {
	t.Setenv(constants.EnvironmentEnvVar, "")

	if w, h := windowSize(0, 0); w != constants.DefaultWindowWidth || h != constants.DefaultWindowHeight {
		t.Errorf("windowSize failed: expected defaults, got %dx%d", w, h)
	}
	if w, h := windowSize(800, 200); w != 800 || h != 200 {
		t.Errorf("windowSize failed: expected 800x200, got %dx%d", w, h)
	}

	t.Setenv(constants.EnvironmentEnvVar, constants.Development)
	if w, h := windowSize(0, 0); w != constants.DevWindowWidth || h != constants.DevWindowHeight {
		t.Errorf("windowSize dev failed: expected dev size, got %dx%d", w, h)
	}
}

func TestMinWindowSize(t *testing.T) {
	r := raster.New(segmented.DefaultTheme())
	items := []string{"Years", "Months", "Days", "All Photos"}

	width, height := minWindowSize(r, items)
	if width != r.MinWidth(items)+2*constants.HostPadding {
		t.Errorf("minWindowSize width failed: expected padded control width, got %d", width)
	}
	if height != constants.StripHeight {
		t.Errorf("minWindowSize height failed: expected %d, got %d", constants.StripHeight, height)
	}

	// The padded minimum still places a control wide enough for its labels.
	if _, placed := placement(width, height); placed < r.MinWidth(items) {
		t.Errorf("placement at minimum failed: expected at least %d, got %d", r.MinWidth(items), placed)
	}
}
