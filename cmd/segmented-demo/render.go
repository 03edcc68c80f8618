package main

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/BrandonKowalski/segmented/pkg/segmented"
	"github.com/BrandonKowalski/segmented/pkg/segmented/constants"
	"github.com/BrandonKowalski/segmented/pkg/segmented/render/raster"
	"github.com/spf13/cobra"
)

var (
	outDir    string
	fps       int
	sceneTime time.Duration
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a scripted interaction to PNG frames",
	Long: `Render a scripted interaction to numbered PNG frames: a press on the second
item, a slide across to the last item, a release, then a programmatic jump
back to the first item. Frames are sampled on a simulated clock, so the
output is identical on every run.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&outDir, "out", "o", "frames", "output directory")
	renderCmd.Flags().IntVar(&fps, "fps", 60, "frames per second")
	renderCmd.Flags().DurationVar(&sceneTime, "duration", 2*time.Second, "length of the recording")
	rootCmd.AddCommand(renderCmd)
}

// step is one scripted action at a point on the simulated clock.
type step struct {
	at     time.Duration
	action func(c *segmented.Control)
}

// script presses the second item, slides to the last one, releases, and
// then selects the first item programmatically.
func script(items []segmented.LaidOutItem) []step {
	if len(items) == 0 {
		return nil
	}

	center := func(i int) segmented.Point {
		return items[min(i, len(items)-1)].Rect.Center()
	}
	last := len(items) - 1

	return []step{
		{at: 100 * time.Millisecond, action: func(c *segmented.Control) {
			c.PointerDown(segmented.MousePointerID, center(1).Add(c.Origin()))
		}},
		{at: 300 * time.Millisecond, action: func(c *segmented.Control) {
			c.PointerMove(segmented.MousePointerID, center(last-1).Add(c.Origin()))
		}},
		{at: 500 * time.Millisecond, action: func(c *segmented.Control) {
			c.PointerMove(segmented.MousePointerID, center(last).Add(c.Origin()))
		}},
		{at: 700 * time.Millisecond, action: func(c *segmented.Control) {
			c.PointerUp(segmented.MousePointerID)
		}},
		{at: 1200 * time.Millisecond, action: func(c *segmented.Control) {
			c.SetSelectedItem(items[0].Text)
		}},
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", fps)
	}

	d, err := setup(cmd)
	if err != nil {
		return err
	}

	start := time.Unix(0, 0)
	now := start

	width := d.cfg.Window.Width
	height := max(d.cfg.Window.Height, constants.StripHeight)

	opts := d.cfg.ControlOptions(d.control.Items())
	opts.Width = max(width-2*constants.HostPadding, 0)
	opts.Clock = func() time.Time { return now }
	control := segmented.New(opts)
	logChanges(control)
	control.SetOrigin(segmented.Pt(constants.HostPadding, (height-constants.StripHeight)/2))

	r, err := raster.Load(segmented.GetTheme())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	steps := script(control.LaidOutItems())
	interval := time.Second / time.Duration(fps)
	canvas := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))

	frames := 0
	for elapsed := time.Duration(0); elapsed <= sceneTime; elapsed += interval {
		now = start.Add(elapsed)
		for len(steps) > 0 && steps[0].at <= elapsed {
			steps[0].action(control)
			steps = steps[1:]
		}

		frame := control.Frame(now)
		draw.Draw(canvas, canvas.Bounds(), image.NewUniform(raster.BackdropColor(frame.Appearance)), image.Point{}, draw.Src)
		r.Render(canvas, frame)

		path := filepath.Join(outDir, fmt.Sprintf("frame_%04d.png", frames))
		if err := writePNG(path, canvas); err != nil {
			return err
		}
		frames++
	}

	segmented.GetLogger().Info("Rendered frames", "count", frames, "dir", outDir)
	fmt.Printf("Wrote %d frames to %s\n", frames, outDir)
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
