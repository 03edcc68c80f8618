package fyneview

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/BrandonKowalski/segmented/pkg/segmented"
)

func newTestWidget(t *testing.T) *Segmented {
	t.Helper()
	test.NewTempApp(t)

	c := segmented.New(segmented.Options{
		Items:                []string{"Years", "Months", "Days", "All Photos"},
		SnapInitialHighlight: true,
	})
	w := New(c)
	w.Resize(fyne.NewSize(375, 40))
	return w
}

func mouse(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func selected(w *Segmented) string {
	item, _ := w.Control().SelectedItem()
	return item
}

func TestResizeLaysOutControl(t *testing.T) {
	w := newTestWidget(t)

	items := w.Control().LaidOutItems()
	if len(items) != 4 {
		t.Fatalf("LaidOutItems failed: expected 4, got %d", len(items))
	}
	if items[1].Rect.X != 96 || items[3].Rect.W != 91 {
		t.Errorf("Layout failed: got %v and %v", items[1].Rect, items[3].Rect)
	}
}

func TestRendererObjects(t *testing.T) {
	w := newTestWidget(t)
	r := test.WidgetRenderer(w)

	objects := r.Objects()
	if len(objects) != 6 {
		t.Fatalf("Objects failed: expected 6, got %d", len(objects))
	}

	highlight := objects[1].(*canvas.Rectangle)
	if highlight.Hidden {
		t.Error("highlight failed: expected visible")
	}
	if highlight.Position().X != 4 || highlight.Size().Width != 92 {
		t.Errorf("highlight failed: expected x=4 w=92, got %v %v", highlight.Position(), highlight.Size())
	}
	if highlight.CornerRadius != 16 {
		t.Errorf("CornerRadius failed: expected 16, got %v", highlight.CornerRadius)
	}

	label := objects[2].(*canvas.Text)
	if label.Text != "Years" || !label.TextStyle.Bold {
		t.Errorf("label failed: expected bold Years, got %q bold=%v", label.Text, label.TextStyle.Bold)
	}
}

func TestMouseSlideSelects(t *testing.T) {
	w := newTestWidget(t)

	w.MouseDown(mouse(150, 20))
	if got := selected(w); got != "Months" {
		t.Errorf("MouseDown failed: expected Months, got %q", got)
	}

	w.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(300, 20)}})
	if got := selected(w); got != "All Photos" {
		t.Errorf("Dragged failed: expected All Photos, got %q", got)
	}

	w.MouseUp(mouse(300, 20))
	w.DragEnd()
	if w.Control().GestureState() != segmented.GestureIdle {
		t.Errorf("MouseUp failed: expected idle, got %v", w.Control().GestureState())
	}
}

func TestTapSelects(t *testing.T) {
	w := newTestWidget(t)

	w.Tapped(&fyne.PointEvent{Position: fyne.NewPos(200, 20)})
	if got := selected(w); got != "Days" {
		t.Errorf("Tapped failed: expected Days, got %q", got)
	}
	if w.Control().GestureState() != segmented.GestureIdle {
		t.Error("Tapped failed: expected tracker to end idle")
	}
}

func TestTapAfterMouseClick(t *testing.T) {
	w := newTestWidget(t)

	w.MouseDown(mouse(150, 20))
	w.MouseUp(mouse(150, 20))
	w.Control().SetSelectedItem("Years")
	w.Tapped(&fyne.PointEvent{Position: fyne.NewPos(150, 20)})

	if got := selected(w); got != "Years" {
		t.Errorf("Tapped after click failed: expected Years, got %q", got)
	}

	w.Tapped(&fyne.PointEvent{Position: fyne.NewPos(150, 20)})
	if got := selected(w); got != "Months" {
		t.Errorf("Touch tap failed: expected Months, got %q", got)
	}
}

func TestObserveRefreshesAppearance(t *testing.T) {
	w := newTestWidget(t)
	src := segmented.NewAppearanceBroadcaster(segmented.AppearanceLight)
	w.Observe(src)

	src.Set(segmented.AppearanceDark)
	if w.Control().HighlightMaterial() != segmented.MaterialLight {
		t.Errorf("Observe failed: expected light highlight, got %v", w.Control().HighlightMaterial())
	}

	label := test.WidgetRenderer(w).Objects()[2].(*canvas.Text)
	if label.Color != segmented.GetTheme().LabelDarkColor {
		t.Errorf("label color failed: expected dark-appearance label, got %v", label.Color)
	}
}
