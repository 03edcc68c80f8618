package sdlhost

import (
	"image"

	"github.com/BrandonKowalski/segmented/pkg/segmented"
	"github.com/BrandonKowalski/segmented/pkg/segmented/constants"
	"github.com/BrandonKowalski/segmented/pkg/segmented/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// window wraps the SDL window and renderer plus the streaming texture the
// software-rendered frame is uploaded into.
type window struct {
	sdlWindow   *sdl.Window
	renderer    *sdl.Renderer
	texture     *sdl.Texture
	canvas      *image.RGBA
	hasVSync    bool
	lastPresent uint64
}

func windowSize(width, height int32) (int32, int32) {
	if width > 0 && height > 0 {
		return width, height
	}
	if constants.IsDevMode() {
		return constants.DevWindowWidth, constants.DevWindowHeight
	}
	return constants.DefaultWindowWidth, constants.DefaultWindowHeight
}

func openWindow(title string, width, height int32, opts WindowOptions) (*window, error) {
	if opts.IsZero() {
		opts = WindowOptions{Resizable: true}
	}

	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)
	if constants.IsDevMode() {
		opts.Borderless = false
		x, y = 50, 50
	}

	internal.GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	sdlWindow, err := sdl.CreateWindow(title, x, y, width, height, opts.sdlFlags())
	if err != nil {
		return nil, segmented.NewInfrastructureError("create_window", err)
	}

	renderer, err := sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		internal.GetInternalLogger().Warn("Accelerated renderer unavailable, falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_SOFTWARE)
	}
	if err != nil {
		sdlWindow.Destroy()
		return nil, segmented.NewInfrastructureError("create_renderer", err)
	}

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	w := &window{
		sdlWindow: sdlWindow,
		renderer:  renderer,
		hasVSync:  vsync,
	}

	if err := w.resize(width, height); err != nil {
		w.close()
		return nil, err
	}
	return w, nil
}

func (w *window) size() (int32, int32) {
	return w.sdlWindow.GetSize()
}

// resize recreates the streaming texture and canvas for a new window size.
func (w *window) resize(width, height int32) error {
	if w.texture != nil {
		w.texture.Destroy()
		w.texture = nil
	}

	width, height = max(width, 1), max(height, 1)
	texture, err := w.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888), int(sdl.TEXTUREACCESS_STREAMING), width, height)
	if err != nil {
		return segmented.NewInfrastructureError("create_texture", err)
	}

	w.texture = texture
	w.canvas = image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	return nil
}

// upload copies the canvas into the streaming texture row by row, since
// the texture pitch may differ from the canvas stride.
func (w *window) upload() error {
	pixels, pitch, err := w.texture.Lock(nil)
	if err != nil {
		return segmented.NewInfrastructureError("lock_texture", err)
	}
	defer w.texture.Unlock()

	rowBytes := w.canvas.Rect.Dx() * 4
	for y := 0; y < w.canvas.Rect.Dy(); y++ {
		src := w.canvas.Pix[y*w.canvas.Stride : y*w.canvas.Stride+rowBytes]
		copy(pixels[y*pitch:], src)
	}
	return nil
}

// present swaps the render buffer and enforces ~60fps frame timing when
// VSync is not available.
func (w *window) present() {
	w.renderer.Present()
	if !w.hasVSync {
		interval := uint64(constants.FrameInterval.Milliseconds())
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresent; elapsed < interval {
			sdl.Delay(uint32(interval - elapsed))
		}
		w.lastPresent = sdl.GetTicks64()
	}
}

func (w *window) close() {
	if w.texture != nil {
		w.texture.Destroy()
	}
	if w.renderer != nil {
		w.renderer.Destroy()
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}
}
