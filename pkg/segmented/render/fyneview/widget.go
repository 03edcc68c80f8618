// Package fyneview hosts a segmented Control as a Fyne widget.
package fyneview

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/BrandonKowalski/segmented/pkg/segmented"
	"github.com/BrandonKowalski/segmented/pkg/segmented/constants"
	"github.com/BrandonKowalski/segmented/pkg/segmented/internal"
)

// Segmented is a Fyne widget drawing a Control with canvas rectangles and
// text. Mouse presses and drags feed the control's gesture tracker; taps
// from touch drivers select directly.
type Segmented struct {
	widget.BaseWidget
	control   *segmented.Control
	theme     segmented.Theme
	animation *fyne.Animation
	unlisten  func()
	pressed   bool // a mouse press already handled the coming tap
}

var (
	_ fyne.Tappable     = (*Segmented)(nil)
	_ fyne.Draggable    = (*Segmented)(nil)
	_ desktop.Mouseable = (*Segmented)(nil)
)

// New creates a widget for control using the active theme.
func New(control *segmented.Control) *Segmented {
	s := &Segmented{
		control: control,
		theme:   segmented.GetTheme(),
	}
	s.unlisten = control.OnChange(func(segmented.SelectionChange) {
		s.animate()
	})
	s.ExtendBaseWidget(s)
	return s
}

// Control returns the control behind the widget.
func (s *Segmented) Control() *segmented.Control {
	return s.control
}

// SetTheme replaces the widget's colors.
func (s *Segmented) SetTheme(theme segmented.Theme) {
	s.theme = theme
	s.Refresh()
}

// SetAppearance forwards a to the control and redraws.
func (s *Segmented) SetAppearance(a segmented.Appearance) {
	s.control.SetAppearance(a)
	s.Refresh()
}

// Observe makes the control follow src and redraws on every change.
func (s *Segmented) Observe(src segmented.AppearanceSource) func() {
	return s.control.Observe(refreshingSource{AppearanceSource: src, widget: s})
}

type refreshingSource struct {
	segmented.AppearanceSource
	widget *Segmented
}

func (r refreshingSource) Subscribe(fn func(segmented.Appearance)) func() {
	return r.AppearanceSource.Subscribe(func(a segmented.Appearance) {
		fn(a)
		r.widget.Refresh()
	})
}

// Detach stops following the control's selection changes.
func (s *Segmented) Detach() {
	if s.unlisten != nil {
		s.unlisten()
		s.unlisten = nil
	}
	s.stopAnimation()
}

// animate refreshes every frame for one highlight transition.
func (s *Segmented) animate() {
	s.stopAnimation()

	duration := s.control.HighlightDuration()
	if duration <= 0 {
		s.Refresh()
		return
	}

	s.animation = fyne.NewAnimation(duration+constants.FrameInterval, func(float32) {
		s.Refresh()
	})
	s.animation.Curve = fyne.AnimationLinear
	s.animation.Start()
}

func (s *Segmented) stopAnimation() {
	if s.animation != nil {
		s.animation.Stop()
		s.animation = nil
	}
}

func toPoint(pos fyne.Position) segmented.Point {
	return segmented.Pt(int32(pos.X), int32(pos.Y))
}

// MouseDown starts a gesture on the primary button.
func (s *Segmented) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	s.pressed = true
	s.control.PointerDown(segmented.MousePointerID, toPoint(ev.Position))
}

// MouseUp ends the gesture.
func (s *Segmented) MouseUp(ev *desktop.MouseEvent) {
	s.control.PointerUp(segmented.MousePointerID)
}

// Dragged continues the gesture. Drivers that report drags without a
// preceding MouseDown start one at the first drag position.
func (s *Segmented) Dragged(ev *fyne.DragEvent) {
	p := toPoint(ev.Position)
	if s.control.GestureState() == segmented.GestureIdle {
		s.control.PointerDown(segmented.MousePointerID, p)
		return
	}
	s.control.PointerMove(segmented.MousePointerID, p)
}

// DragEnd ends the gesture.
func (s *Segmented) DragEnd() {
	s.control.PointerUp(segmented.MousePointerID)
}

// Tapped selects the item under the tap. A tap that follows a primary
// mouse press is ignored, since the press already selected.
func (s *Segmented) Tapped(ev *fyne.PointEvent) {
	if s.pressed {
		s.pressed = false
		return
	}
	if s.control.GestureState() != segmented.GestureIdle {
		return
	}
	p := toPoint(ev.Position)
	s.control.PointerDown(segmented.MousePointerID, p)
	s.control.PointerUp(segmented.MousePointerID)
}

func (s *Segmented) CreateRenderer() fyne.WidgetRenderer {
	r := &segmentedRenderer{
		widget:     s,
		background: canvas.NewRectangle(color.Transparent),
		highlight:  canvas.NewRectangle(color.Transparent),
	}
	r.rebuildLabels()
	r.Refresh()
	return r
}

type segmentedRenderer struct {
	widget     *Segmented
	background *canvas.Rectangle
	highlight  *canvas.Rectangle
	labels     []*canvas.Text
	objects    []fyne.CanvasObject
}

func (r *segmentedRenderer) rebuildLabels() {
	items := r.widget.control.Items()

	r.labels = make([]*canvas.Text, len(items))
	for i, item := range items {
		text := canvas.NewText(item, color.Black)
		text.Alignment = fyne.TextAlignCenter
		r.labels[i] = text
	}

	r.objects = make([]fyne.CanvasObject, 0, len(items)+2)
	r.objects = append(r.objects, r.background, r.highlight)
	for _, label := range r.labels {
		r.objects = append(r.objects, label)
	}
}

func (r *segmentedRenderer) Layout(size fyne.Size) {
	control := r.widget.control
	control.Resize(int32(size.Width))
	if control.Animating(control.Now()) {
		r.widget.animate()
	}
	r.Refresh()
}

func (r *segmentedRenderer) MinSize() fyne.Size {
	var widest float32
	for _, label := range r.labels {
		widest = max(widest, label.MinSize().Width)
	}
	n := float32(len(r.labels))
	return fyne.NewSize(widest*n+float32(2*constants.StripMargin), float32(constants.StripHeight))
}

func (r *segmentedRenderer) Refresh() {
	if len(r.labels) != len(r.widget.control.Items()) {
		r.rebuildLabels()
	}

	frame := r.widget.control.Snapshot()
	theme := r.widget.theme

	placeCapsule(r.background, frame.Background, theme.MaterialColor(frame.Background.Material))
	placeCapsule(r.highlight, frame.Highlight,
		internal.WithOpacity(theme.MaterialColor(frame.Highlight.Material), theme.HighlightOpacity))

	textColor := theme.LabelColor(frame.Appearance)
	for i, item := range frame.Items {
		label := r.labels[i]
		label.Text = item.Text
		label.Color = textColor
		label.TextStyle = fyne.TextStyle{Bold: i == frame.Selected}
		label.Move(fyne.NewPos(float32(item.Rect.X), float32(item.Rect.Y)))
		label.Resize(fyne.NewSize(float32(item.Rect.W), float32(item.Rect.H)))
		label.Refresh()
	}

	canvas.Refresh(r.widget)
}

func placeCapsule(rect *canvas.Rectangle, c segmented.Capsule, fill color.NRGBA) {
	rect.Hidden = !c.Visible
	rect.FillColor = fill
	rect.CornerRadius = float32(c.Radius)
	rect.Move(fyne.NewPos(float32(c.Rect.X), float32(c.Rect.Y)))
	rect.Resize(fyne.NewSize(float32(c.Rect.W), float32(c.Rect.H)))
	rect.Refresh()
}

func (r *segmentedRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *segmentedRenderer) Destroy() {
	r.widget.stopAnimation()
}
