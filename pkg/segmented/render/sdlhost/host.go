// Package sdlhost runs a segmented Control in an SDL2 window. Frames are
// rendered in software by the raster package and uploaded to a streaming
// texture; mouse, finger and keyboard input come from the SDL event queue.
package sdlhost

import (
	"context"
	"image"
	"image/draw"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/BrandonKowalski/segmented/pkg/segmented"
	"github.com/BrandonKowalski/segmented/pkg/segmented/constants"
	"github.com/BrandonKowalski/segmented/pkg/segmented/internal"
	"github.com/BrandonKowalski/segmented/pkg/segmented/render/raster"
	"github.com/veandco/go-sdl2/sdl"
)

// Host owns the SDL window. Run must be called from the goroutine that
// called New, and that goroutine must be locked to its OS thread.
type Host struct {
	control  *segmented.Control
	opts     Options
	win      *window
	raster   *raster.Renderer
	logger   *slog.Logger
	calls    chan func()
	done     chan struct{}
	doneOnce sync.Once
	dirty    bool
	err      error
}

// New initializes SDL and opens the window.
func New(control *segmented.Control, opts Options) (*Host, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, segmented.NewInfrastructureError("init_sdl", err)
	}

	width, height := windowSize(opts.Width, opts.Height)
	if opts.Title == "" {
		opts.Title = "Segmented"
	}

	win, err := openWindow(opts.Title, width, height, opts.Window)
	if err != nil {
		sdl.Quit()
		return nil, err
	}

	logger := internal.GetInternalLogger()

	r := opts.Renderer
	if r == nil {
		r, err = raster.Load(segmented.GetTheme())
		if err != nil {
			logger.Warn("Failed to load theme assets", "error", err)
		}
	}
	win.sdlWindow.SetMinimumSize(minWindowSize(r, control.Items()))

	h := &Host{
		control: control,
		opts:    opts,
		win:     win,
		raster:  r,
		logger:  logger,
		calls:   make(chan func(), 16),
		done:    make(chan struct{}),
		dirty:   true,
	}

	h.place(win.size())
	return h, nil
}

// Dispatch queues fn to run on the UI goroutine. It is safe to call from
// any goroutine and returns without running fn once the host is closed.
func (h *Host) Dispatch(fn func()) {
	select {
	case h.calls <- fn:
	case <-h.done:
	}
}

// Run processes events and draws until the window is closed, Escape or Q
// is pressed, or ctx is done.
func (h *Host) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		if event := sdl.WaitEventTimeout(int(constants.FrameInterval.Milliseconds())); event != nil {
			running := h.handleEvent(event)
			for event = sdl.PollEvent(); running && event != nil; event = sdl.PollEvent() {
				running = h.handleEvent(event)
			}
			if !running {
				return h.err
			}
		}

		h.drain()

		now := h.control.Now()
		if h.dirty || h.control.Animating(now) {
			if err := h.draw(now); err != nil {
				return err
			}
			h.dirty = false
		}
	}
}

// SetTheme replaces the renderer's colors.
func (h *Host) SetTheme(theme segmented.Theme) {
	h.raster.SetTheme(theme)
	h.dirty = true
}

// Invalidate forces a redraw on the next loop iteration.
func (h *Host) Invalidate() {
	h.dirty = true
}

// Close destroys the window and shuts SDL down.
func (h *Host) Close() {
	h.doneOnce.Do(func() {
		close(h.done)
		h.win.close()
		sdl.Quit()
	})
}

func (h *Host) handleEvent(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return false

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
			return true
		}
		switch e.Keysym.Sym {
		case sdl.K_ESCAPE, sdl.K_q:
			return false
		case sdl.K_a:
			next := nextAppearance(h.control.Appearance())
			h.logger.Debug("Appearance toggled", "appearance", next.String())
			h.control.SetAppearance(next)
			h.dirty = true
		}

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			if err := h.resize(e.Data1, e.Data2); err != nil {
				h.err = err
				return false
			}
		case sdl.WINDOWEVENT_EXPOSED:
			h.dirty = true
		}

	case *sdl.MouseButtonEvent, *sdl.MouseMotionEvent, *sdl.TouchFingerEvent:
		width, height := h.win.size()
		if pe, ok := pointerEvent(event, width, height); ok {
			h.control.HandlePointer(pe)
			h.dirty = true
		}
	}
	return true
}

// drain runs queued calls and extra pointer events without blocking.
func (h *Host) drain() {
	for {
		select {
		case fn := <-h.calls:
			fn()
			h.dirty = true
		case pe, ok := <-h.opts.Pointers:
			if !ok {
				h.opts.Pointers = nil
				continue
			}
			h.control.HandlePointer(pe)
			h.dirty = true
		default:
			return
		}
	}
}

func (h *Host) resize(width, height int32) error {
	h.logger.Debug("Window resized", "width", width, "height", height)
	if err := h.win.resize(width, height); err != nil {
		return err
	}
	h.place(width, height)
	if h.opts.OnResize != nil {
		h.opts.OnResize(width, height)
	}
	h.dirty = true
	return nil
}

func (h *Host) place(width, height int32) {
	origin, controlWidth := placement(width, height)
	h.control.SetOrigin(origin)
	h.control.Resize(controlWidth)
}

func (h *Host) draw(now time.Time) error {
	frame := h.control.Frame(now)
	canvas := h.win.canvas

	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(raster.BackdropColor(frame.Appearance)), image.Point{}, draw.Src)
	h.raster.Render(canvas, frame)

	if err := h.win.upload(); err != nil {
		return err
	}

	h.win.renderer.Clear()
	if err := h.win.renderer.Copy(h.win.texture, nil, nil); err != nil {
		return segmented.NewInfrastructureError("copy_texture", err)
	}
	h.win.present()
	return nil
}

// placement centers the strip vertically with a fixed horizontal gap.
func placement(width, height int32) (segmented.Point, int32) {
	controlWidth := max(width-2*constants.HostPadding, 0)
	y := max((height-constants.StripHeight)/2, 0)
	return segmented.Pt(constants.HostPadding, y), controlWidth
}

func nextAppearance(a segmented.Appearance) segmented.Appearance {
	switch a {
	case segmented.AppearanceUnspecified:
		return segmented.AppearanceLight
	case segmented.AppearanceLight:
		return segmented.AppearanceDark
	default:
		return segmented.AppearanceUnspecified
	}
}

// touchMouseID is SDL_TOUCH_MOUSEID, the Which of mouse events synthesized
// from touches.
const touchMouseID = math.MaxUint32

// pointerEvent converts SDL mouse and finger events to pointer events.
// Mouse events synthesized from touches are dropped so a finger is only
// seen once. Finger coordinates are normalized and scaled to the window.
func pointerEvent(event sdl.Event, width, height int32) (segmented.PointerEvent, bool) {
	switch e := event.(type) {
	case *sdl.MouseButtonEvent:
		if e.Which == touchMouseID || e.Button != sdl.BUTTON_LEFT {
			return segmented.PointerEvent{}, false
		}
		kind := segmented.PointerUp
		if e.Type == sdl.MOUSEBUTTONDOWN {
			kind = segmented.PointerDown
		}
		return segmented.PointerEvent{Kind: kind, ID: segmented.MousePointerID, Point: segmented.Pt(e.X, e.Y)}, true

	case *sdl.MouseMotionEvent:
		if e.Which == touchMouseID {
			return segmented.PointerEvent{}, false
		}
		return segmented.PointerEvent{Kind: segmented.PointerMove, ID: segmented.MousePointerID, Point: segmented.Pt(e.X, e.Y)}, true

	case *sdl.TouchFingerEvent:
		var kind segmented.PointerKind
		switch e.Type {
		case sdl.FINGERDOWN:
			kind = segmented.PointerDown
		case sdl.FINGERMOTION:
			kind = segmented.PointerMove
		case sdl.FINGERUP:
			kind = segmented.PointerUp
		default:
			return segmented.PointerEvent{}, false
		}
		p := segmented.Pt(int32(e.X*float32(width)), int32(e.Y*float32(height)))
		return segmented.PointerEvent{Kind: kind, ID: fingerPointerID(e.FingerID), Point: p}, true
	}
	return segmented.PointerEvent{}, false
}

// minWindowSize is the smallest window that shows every label unclipped.
func minWindowSize(r *raster.Renderer, items []string) (int32, int32) {
	return r.MinWidth(items) + 2*constants.HostPadding, constants.StripHeight
}

// fingerPointerID places an SDL finger in the windowing-system finger range.
func fingerPointerID(id sdl.FingerID) int64 {
	return segmented.FingerPointerBase + int64(id)
}
