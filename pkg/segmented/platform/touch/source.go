// Package touch reads pointer events from Linux touchscreens through evdev,
// for hosts that run without a windowing system delivering touches.
package touch

import (
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/segmented/pkg/segmented"
	"github.com/BrandonKowalski/segmented/pkg/segmented/internal"
	evdev "github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// Source reads one touchscreen on a background goroutine and delivers
// decoded pointer events on a channel. The host drains the channel on its
// UI goroutine.
type Source struct {
	path    string
	dev     *evdev.InputDevice
	decoder *Decoder
	events  chan segmented.PointerEvent
	done    chan struct{}
	running *atomic.Bool
	width   *atomic.Int32
	height  *atomic.Int32
	logger  *slog.Logger
}

// Open opens the touchscreen at path. Coordinates are scaled to a surface
// of width x height; call SetSize when the surface changes.
func Open(path string, width, height int32) (*Source, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, segmented.NewInfrastructureError("open_device", err)
	}

	infos, err := dev.AbsInfos()
	if err != nil {
		dev.Close()
		return nil, segmented.NewInfrastructureError("read_abs_info", err)
	}

	xi, yi, multi, ok := touchAxes(infos)
	if !ok {
		dev.Close()
		return nil, fmt.Errorf("%s: %w", path, segmented.ErrNoDevice)
	}

	s := &Source{
		path: path,
		dev:  dev,
		decoder: NewDecoder(
			Axis{Min: xi.Minimum, Max: xi.Maximum, Size: width},
			Axis{Min: yi.Minimum, Max: yi.Maximum, Size: height},
			multi,
		),
		events:  make(chan segmented.PointerEvent, 64),
		done:    make(chan struct{}),
		running: atomic.NewBool(false),
		width:   atomic.NewInt32(width),
		height:  atomic.NewInt32(height),
		logger:  internal.GetInternalLogger(),
	}

	name, _ := dev.Name()
	s.logger.Debug("touch device opened", "path", path, "name", name, "multitouch", multi)
	return s, nil
}

// Find returns the path of the first input device with absolute touch axes.
func Find() (string, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return "", segmented.NewInfrastructureError("list_devices", err)
	}

	for _, p := range paths {
		dev, err := evdev.Open(p.Path)
		if err != nil {
			continue
		}
		infos, err := dev.AbsInfos()
		dev.Close()
		if err != nil {
			continue
		}
		if _, _, _, ok := touchAxes(infos); ok {
			return p.Path, nil
		}
	}
	return "", segmented.ErrNoDevice
}

func touchAxes(infos map[evdev.EvCode]evdev.AbsInfo) (x, y evdev.AbsInfo, multi, ok bool) {
	if x, ok = infos[evdev.ABS_MT_POSITION_X]; ok {
		if y, ok = infos[evdev.ABS_MT_POSITION_Y]; ok {
			return x, y, true, true
		}
	}
	if x, ok = infos[evdev.ABS_X]; ok {
		if y, ok = infos[evdev.ABS_Y]; ok {
			return x, y, false, true
		}
	}
	return x, y, false, false
}

// Events returns the channel pointer events are delivered on. It is
// closed when reading stops.
func (s *Source) Events() <-chan segmented.PointerEvent {
	return s.events
}

// SetSize changes the surface coordinates are scaled to. Safe to call
// from any goroutine.
func (s *Source) SetSize(width, height int32) {
	s.width.Store(width)
	s.height.Store(height)
}

// Start begins reading. It returns ErrClosed after Close.
func (s *Source) Start() error {
	select {
	case <-s.done:
		return segmented.ErrClosed
	default:
	}

	if !s.running.CompareAndSwap(false, true) {
		return nil
	}

	go s.read()
	return nil
}

func (s *Source) read() {
	defer close(s.events)

	for s.running.Load() {
		ev, err := s.dev.ReadOne()
		if err != nil {
			if s.running.Load() {
				s.logger.Error("touch device read failed", "path", s.path, "error", err)
			}
			return
		}

		s.decoder.X.Size = s.width.Load()
		s.decoder.Y.Size = s.height.Load()

		var out []segmented.PointerEvent
		if ev.Type == evdev.EV_SYN && ev.Code == evdev.SYN_DROPPED {
			out = s.decoder.Reset()
		} else {
			out = s.decoder.Feed(ev)
		}

		for _, pe := range out {
			select {
			case s.events <- pe:
			case <-s.done:
				return
			}
		}
	}
}

// Close stops reading and releases the device.
func (s *Source) Close() error {
	select {
	case <-s.done:
		return segmented.ErrClosed
	default:
	}

	s.running.Store(false)
	close(s.done)

	if err := s.dev.Close(); err != nil {
		return segmented.NewInfrastructureError("close_device", err)
	}
	return nil
}
