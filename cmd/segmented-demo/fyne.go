package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/BrandonKowalski/segmented/pkg/segmented"
	"github.com/BrandonKowalski/segmented/pkg/segmented/config"
	"github.com/BrandonKowalski/segmented/pkg/segmented/platform/watch"
	"github.com/BrandonKowalski/segmented/pkg/segmented/render/fyneview"
	"github.com/spf13/cobra"
)

var fyneCmd = &cobra.Command{
	Use:   "fyne",
	Short: "Show the control in a Fyne window",
	Long: `Open a Fyne window with the control and a status line showing the
selection. When the configured appearance is unspecified the control
follows the Fyne theme variant. With --watch, edits to the config file are
applied live.`,
	Args: cobra.NoArgs,
	RunE: runFyne,
}

func init() {
	fyneCmd.Flags().BoolVarP(&watchConfig, "watch", "w", false, "reload the config file when it changes")
	rootCmd.AddCommand(fyneCmd)
}

func runFyne(cmd *cobra.Command, args []string) error {
	d, err := setup(cmd)
	if err != nil {
		return err
	}

	a := app.New()
	w := a.NewWindow(d.cfg.Window.Title)

	seg := fyneview.New(d.control)
	status := widget.NewLabel(statusText(d.control))
	d.control.OnChange(func(segmented.SelectionChange) {
		status.SetText(statusText(d.control))
	})

	switch {
	case watchConfig && configPath != "":
		watcher, err := watch.New(configPath, watch.Options{Dispatch: fyne.Do})
		if err != nil {
			return err
		}
		defer watcher.Close()

		seg.Observe(watcher)
		watcher.OnConfig(func(cfg config.Config) {
			d.applyReload(cfg)
			seg.SetTheme(cfg.ThemeValue())
		})
		watcher.Start()
	case d.control.Appearance() == segmented.AppearanceUnspecified:
		seg.Observe(fyneview.NewSettingsAppearance(a))
	}

	w.SetContent(container.NewPadded(container.NewVBox(seg, status)))
	w.Resize(fyne.NewSize(float32(d.cfg.Window.Width), float32(d.cfg.Window.Height)))
	w.ShowAndRun()
	return nil
}

func statusText(c *segmented.Control) string {
	item, ok := c.SelectedItem()
	if !ok {
		return "Nothing selected"
	}
	return fmt.Sprintf("Selected: %s", item)
}
