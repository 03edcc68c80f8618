// Package raster draws segmented control frames into images in software.
//
// Capsules are filled with rasterx, labels are drawn with an x/image font
// face, and an optional SVG backdrop is rasterized with oksvg. The SDL host
// presents these images; tests inspect them directly.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"
	"os"

	"github.com/BrandonKowalski/segmented/pkg/segmented"
	"github.com/BrandonKowalski/segmented/pkg/segmented/constants"
	"github.com/BrandonKowalski/segmented/pkg/segmented/internal"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Renderer draws frames. It caches label bitmaps between frames and is not
// safe for concurrent use.
type Renderer struct {
	theme    segmented.Theme
	face     font.Face
	labels   *internal.TextureCache[*image.RGBA]
	backdrop *oksvg.SvgIcon
}

// New creates a renderer for theme using the built-in bitmap font.
func New(theme segmented.Theme) *Renderer {
	return &Renderer{
		theme:  theme,
		face:   basicfont.Face7x13,
		labels: internal.NewTextureCache[*image.RGBA](nil),
	}
}

// Load creates a renderer for theme and loads the backdrop and font files
// it names. The renderer is usable even when an error is returned; it falls
// back to no backdrop and the built-in font.
func Load(theme segmented.Theme) (*Renderer, error) {
	r := New(theme)

	var errs []error
	if theme.BackdropPath != "" {
		errs = append(errs, r.LoadBackdropFile(theme.BackdropPath))
	}
	if theme.FontPath != "" {
		errs = append(errs, r.LoadFontFile(theme.FontPath, theme.FontSize))
	}
	return r, errors.Join(errs...)
}

// LoadFont parses a TrueType or OpenType font and uses it for labels at
// size points.
func (r *Renderer) LoadFont(data []byte, size float64) error {
	if size <= 0 {
		size = constants.LabelFontSize
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return segmented.NewInfrastructureError("load_font", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return segmented.NewInfrastructureError("load_font", err)
	}

	r.SetFace(face)
	return nil
}

// LoadFontFile loads the label font from path.
func (r *Renderer) LoadFontFile(path string, size float64) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return segmented.NewInfrastructureError("load_font", err)
	}
	return r.LoadFont(data, size)
}

// SetFace replaces the label font face and drops cached labels.
func (r *Renderer) SetFace(face font.Face) {
	r.face = face
	r.labels.Destroy()
}

// SetTheme replaces the theme and drops cached labels.
func (r *Renderer) SetTheme(theme segmented.Theme) {
	r.theme = theme
	r.labels.Destroy()
}

// Theme returns the renderer's theme.
func (r *Renderer) Theme() segmented.Theme {
	return r.theme
}

// LoadBackdrop parses an SVG document drawn behind the control.
func (r *Renderer) LoadBackdrop(rd io.Reader) error {
	icon, err := oksvg.ReadIconStream(rd)
	if err != nil {
		return segmented.NewInfrastructureError("load_backdrop", err)
	}
	r.backdrop = icon
	return nil
}

// LoadBackdropFile loads the SVG backdrop from path.
func (r *Renderer) LoadBackdropFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return segmented.NewInfrastructureError("load_backdrop", err)
	}
	defer f.Close()

	return r.LoadBackdrop(f)
}

// NewImage allocates an image large enough for frame at its origin.
func NewImage(frame segmented.Frame) *image.RGBA {
	w := int(frame.Origin.X + frame.Width)
	h := int(frame.Origin.Y + frame.Height)
	return image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
}

// Render draws frame into dst at the frame's origin. dst is not cleared.
func (r *Renderer) Render(dst *image.RGBA, frame segmented.Frame) {
	if dst.Bounds().Empty() {
		return
	}

	if r.backdrop != nil {
		r.drawBackdrop(dst)
	}

	origin := frame.Origin

	if frame.Background.Visible {
		fill := r.theme.MaterialColor(frame.Background.Material)
		fillCapsule(dst, frame.Background, origin, fill)
	}

	if frame.Highlight.Visible {
		fill := internal.WithOpacity(r.theme.MaterialColor(frame.Highlight.Material), r.theme.HighlightOpacity)
		fillCapsule(dst, frame.Highlight, origin, fill)
	}

	textColor := r.theme.LabelColor(frame.Appearance)
	for _, item := range frame.Items {
		r.drawLabel(dst, item, origin, textColor)
	}
}

// BackdropColor is a plain surface color for hosts to clear to when no
// backdrop is loaded, so the translucent materials have something to tint.
func BackdropColor(a segmented.Appearance) color.NRGBA {
	switch a {
	case segmented.AppearanceLight:
		return segmented.HexToColor(0xE5E5EA)
	case segmented.AppearanceDark:
		return segmented.HexToColor(0x2C2C2E)
	default:
		return segmented.HexToColor(0x8E8E93)
	}
}

func (r *Renderer) drawBackdrop(dst *image.RGBA) {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()

	r.backdrop.SetTarget(0, 0, float64(w), float64(h))
	scanner := rasterx.NewScannerGV(w, h, dst, b)
	r.backdrop.Draw(rasterx.NewDasher(w, h, scanner), 1)
}

func fillCapsule(dst *image.RGBA, c segmented.Capsule, origin segmented.Point, fill color.Color) {
	if c.Rect.W <= 0 || c.Rect.H <= 0 {
		return
	}

	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()

	minX := float64(origin.X) + c.Rect.X
	minY := float64(origin.Y) + c.Rect.Y
	maxX := minX + c.Rect.W
	maxY := minY + c.Rect.H
	radius := math.Min(c.Radius, math.Min(c.Rect.W, c.Rect.H)/2)

	scanner := rasterx.NewScannerGV(w, h, dst, b)
	filler := rasterx.NewFiller(w, h, scanner)
	filler.SetColor(fill)
	rasterx.AddRoundRect(minX, minY, maxX, maxY, radius, radius, 0, rasterx.RoundGap, filler)
	filler.Draw()
}

func (r *Renderer) drawLabel(dst *image.RGBA, item segmented.LaidOutItem, origin segmented.Point, col color.NRGBA) {
	if item.Rect.Empty() || item.Text == "" {
		return
	}

	label := r.label(item.Text, col)
	lb := label.Bounds()

	cell := image.Rect(
		int(origin.X+item.Rect.X),
		int(origin.Y+item.Rect.Y),
		int(origin.X+item.Rect.X+item.Rect.W),
		int(origin.Y+item.Rect.Y+item.Rect.H),
	)

	// Centered, clipped to the item's cell.
	at := image.Pt(
		cell.Min.X+(cell.Dx()-lb.Dx())/2,
		cell.Min.Y+(cell.Dy()-lb.Dy())/2,
	)
	placed := lb.Add(at)
	dr := placed.Intersect(cell).Intersect(dst.Bounds())
	if dr.Empty() {
		return
	}

	draw.Draw(dst, dr, label, dr.Min.Sub(at), draw.Over)
}

func (r *Renderer) label(text string, col color.NRGBA) *image.RGBA {
	key := fmt.Sprintf("%02x%02x%02x%02x:%s", col.R, col.G, col.B, col.A, text)
	if img, ok := r.labels.Get(key); ok {
		return img
	}

	img := rasterizeLabel(r.face, text, col)
	r.labels.Set(key, img)
	return img
}

func rasterizeLabel(face font.Face, text string, col color.NRGBA) *image.RGBA {
	metrics := face.Metrics()
	w := font.MeasureString(face, text).Ceil()
	h := (metrics.Ascent + metrics.Descent).Ceil()

	img := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: metrics.Ascent},
	}
	d.DrawString(text)
	return img
}

// LabelSize returns the size of text in the renderer's face.
func (r *Renderer) LabelSize(text string) image.Point {
	metrics := r.face.Metrics()
	return image.Pt(
		font.MeasureString(r.face, text).Ceil(),
		(metrics.Ascent + metrics.Descent).Ceil(),
	)
}

// MinWidth returns the narrowest control width at which every item's label
// fits its equal share with LabelPadding on both sides.
func (r *Renderer) MinWidth(items []string) int32 {
	if len(items) == 0 {
		return 0
	}

	var widest int32
	for _, item := range items {
		widest = max(widest, int32(r.LabelSize(item).X))
	}
	return int32(len(items))*(widest+2*constants.LabelPadding) + 2*constants.StripMargin
}
