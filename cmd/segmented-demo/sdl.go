package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/BrandonKowalski/segmented/pkg/segmented"
	"github.com/BrandonKowalski/segmented/pkg/segmented/config"
	"github.com/BrandonKowalski/segmented/pkg/segmented/platform/touch"
	"github.com/BrandonKowalski/segmented/pkg/segmented/platform/watch"
	"github.com/BrandonKowalski/segmented/pkg/segmented/render/sdlhost"
	"github.com/spf13/cobra"
)

var (
	touchDevice string
	watchConfig bool
)

var sdlCmd = &cobra.Command{
	Use:   "sdl",
	Short: "Show the control in an SDL window",
	Long: `Open an SDL window with the control. Drag with the mouse or a finger to
select; press A to cycle the appearance and Escape or Q to quit.

With --touch-device the control also reads a Linux touchscreen directly
("auto" picks the first one found). With --watch, edits to the config file
are applied live.`,
	Args: cobra.NoArgs,
	RunE: runSDL,
}

func init() {
	sdlCmd.Flags().StringVar(&touchDevice, "touch-device", "", `evdev touchscreen path, or "auto"`)
	sdlCmd.Flags().BoolVarP(&watchConfig, "watch", "w", false, "reload the config file when it changes")
	rootCmd.AddCommand(sdlCmd)
}

func runSDL(cmd *cobra.Command, args []string) error {
	d, err := setup(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("touch-device") {
		d.cfg.Touch.Device = touchDevice
	}

	logger := segmented.GetLogger()
	win := d.cfg.Window

	opts := sdlhost.Options{
		Title:  win.Title,
		Width:  win.Width,
		Height: win.Height,
		Window: sdlhost.WindowOptions{
			Borderless: win.Borderless,
			Resizable:  win.Resizable,
			Fullscreen: win.Fullscreen,
		},
	}

	var src *touch.Source
	if d.cfg.Touch.Device != "" {
		src, err = openTouch(d.cfg.Touch.Device, win.Width, win.Height)
		if err != nil {
			return err
		}
		defer src.Close()
		opts.Pointers = src.Events()
		opts.OnResize = src.SetSize
	}

	host, err := sdlhost.New(d.control, opts)
	if err != nil {
		return err
	}
	defer host.Close()

	if src != nil {
		if err := src.Start(); err != nil {
			return err
		}
	}

	if watchConfig && configPath != "" {
		w, err := watch.New(configPath, watch.Options{Dispatch: host.Dispatch})
		if err != nil {
			return err
		}
		defer w.Close()

		d.control.Observe(w)
		w.OnConfig(func(cfg config.Config) {
			d.applyReload(cfg)
			host.SetTheme(cfg.ThemeValue())
		})
		w.Start()
		logger.Info("Watching config", "path", w.Path())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return host.Run(ctx)
}

func openTouch(device string, width, height int32) (*touch.Source, error) {
	if device == "auto" {
		found, err := touch.Find()
		if err != nil {
			return nil, err
		}
		device = found
	}
	return touch.Open(device, width, height)
}
