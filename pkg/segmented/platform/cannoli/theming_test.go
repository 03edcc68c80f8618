package cannoli

import (
	"testing"

	"github.com/BrandonKowalski/segmented/pkg/segmented"
)

func TestThemeKeepsTranslucency(t *testing.T) {
	theme := Theme()

	for _, m := range []segmented.Material{segmented.MaterialSystem, segmented.MaterialLight, segmented.MaterialDark} {
		if a := theme.MaterialColor(m).A; a == 0xFF || a == 0 {
			t.Errorf("MaterialColor(%v) failed: expected translucent alpha, got %d", m, a)
		}
	}
	if theme.HighlightOpacity != segmented.DefaultTheme().HighlightOpacity {
		t.Errorf("HighlightOpacity failed: expected default, got %v", theme.HighlightOpacity)
	}
}
