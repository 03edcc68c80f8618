package sdlhost

import (
	"github.com/BrandonKowalski/segmented/pkg/segmented"
	"github.com/BrandonKowalski/segmented/pkg/segmented/render/raster"
	"github.com/veandco/go-sdl2/sdl"
)

// WindowOptions selects SDL window flags.
type WindowOptions struct {
	Borderless  bool // Remove window decorations (SDL_WINDOW_BORDERLESS)
	Resizable   bool // Allow window resizing (SDL_WINDOW_RESIZABLE)
	Fullscreen  bool // Fullscreen at desktop resolution (SDL_WINDOW_FULLSCREEN_DESKTOP)
	AlwaysOnTop bool // Window stays above others (SDL_WINDOW_ALWAYS_ON_TOP)
	Hidden      bool // Start hidden (omits SDL_WINDOW_SHOWN)
}

func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

func (wo WindowOptions) sdlFlags() uint32 {
	var flags uint32

	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}
	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	if wo.AlwaysOnTop {
		flags |= sdl.WINDOW_ALWAYS_ON_TOP
	}

	return flags
}

// Options configures a Host.
type Options struct {
	Title  string
	Width  int32 // Window width; defaults per dev mode
	Height int32 // Window height; defaults per dev mode
	Window WindowOptions

	// Renderer draws frames. Defaults to a raster renderer with the active theme.
	Renderer *raster.Renderer

	// Pointers delivers extra pointer events, e.g. from a touch.Source.
	// Coordinates are window coordinates.
	Pointers <-chan segmented.PointerEvent

	// OnResize is called on the UI goroutine after the window size changes.
	OnResize func(width, height int32)
}
