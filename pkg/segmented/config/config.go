// Package config loads segmented control settings from TOML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BrandonKowalski/segmented/pkg/segmented"
	"github.com/BrandonKowalski/segmented/pkg/segmented/constants"
	"github.com/BrandonKowalski/segmented/pkg/segmented/platform/cannoli"
	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Config is the on-disk configuration of the demo hosts.
type Config struct {
	Items      []string `toml:"items"`
	Appearance string   `toml:"appearance"`
	Language   string   `toml:"language"`
	Locales    string   `toml:"locales"`
	Backdrop   string   `toml:"backdrop"`
	Font       string   `toml:"font"`

	Log       LogConfig       `toml:"log"`
	Window    WindowConfig    `toml:"window"`
	Highlight HighlightConfig `toml:"highlight"`
	Touch     TouchConfig     `toml:"touch"`
	Theme     ThemeConfig     `toml:"theme"`
}

type LogConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

type WindowConfig struct {
	Title      string `toml:"title"`
	Width      int32  `toml:"width"`
	Height     int32  `toml:"height"`
	Borderless bool   `toml:"borderless"`
	Resizable  bool   `toml:"resizable"`
	Fullscreen bool   `toml:"fullscreen"`
}

type HighlightConfig struct {
	Duration    time.Duration `toml:"duration"`
	SnapInitial bool          `toml:"snap_initial"`
}

type TouchConfig struct {
	Device string `toml:"device"`
}

// ThemeConfig selects a preset and overrides its colors. Colors are
// 0xRRGGBB; zero keeps the preset's value.
type ThemeConfig struct {
	Preset           string  `toml:"preset"`
	MaterialSystem   uint32  `toml:"material_system"`
	MaterialLight    uint32  `toml:"material_light"`
	MaterialDark     uint32  `toml:"material_dark"`
	MaterialAlpha    uint8   `toml:"material_alpha"`
	LabelLight       uint32  `toml:"label_light"`
	LabelDark        uint32  `toml:"label_dark"`
	HighlightOpacity float64 `toml:"highlight_opacity"`
	FontSize         float64 `toml:"font_size"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Items:      []string{"Years", "Months", "Days", "All Photos"},
		Appearance: "unspecified",
		Language:   "en",
		Log: LogConfig{
			Level: "info",
		},
		Window: WindowConfig{
			Title:     "Segmented",
			Width:     constants.DefaultWindowWidth,
			Height:    constants.DefaultWindowHeight,
			Resizable: true,
		},
		Highlight: HighlightConfig{
			Duration: constants.HighlightDuration,
		},
	}
}

// Load reads and validates the file at path on top of the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates TOML on top of the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that TOML decoding cannot.
func (c Config) Validate() error {
	if _, err := segmented.ParseAppearance(c.Appearance); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Language != "" {
		if _, err := language.Parse(c.Language); err != nil {
			return fmt.Errorf("%w: language %q: %v", ErrInvalid, c.Language, err)
		}
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("%w: negative window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Highlight.Duration < 0 {
		return fmt.Errorf("%w: negative highlight duration %s", ErrInvalid, c.Highlight.Duration)
	}
	if _, ok := presets[c.Theme.Preset]; !ok {
		return fmt.Errorf("%w: unknown theme preset %q", ErrInvalid, c.Theme.Preset)
	}
	if o := c.Theme.HighlightOpacity; o < 0 || o > 1 {
		return fmt.Errorf("%w: highlight_opacity %v outside [0, 1]", ErrInvalid, o)
	}
	if c.Theme.FontSize < 0 {
		return fmt.Errorf("%w: negative font_size %v", ErrInvalid, c.Theme.FontSize)
	}
	return nil
}

// ApplyEnv applies environment overrides, the way the hosts read them.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(constants.AppearanceEnvVar); v != "" {
		if _, err := segmented.ParseAppearance(v); err == nil {
			c.Appearance = v
		}
	}
	if v := os.Getenv(constants.TouchDeviceEnvVar); v != "" {
		c.Touch.Device = v
	}
	if v := os.Getenv(constants.WindowWidthEnvVar); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil && n > 0 {
			c.Window.Width = int32(n)
		}
	}
	if v := os.Getenv(constants.WindowHeightEnvVar); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil && n > 0 {
			c.Window.Height = int32(n)
		}
	}
}

// AppearanceValue returns the parsed appearance. Call after Validate.
func (c Config) AppearanceValue() segmented.Appearance {
	a, _ := segmented.ParseAppearance(c.Appearance)
	return a
}

// LanguageTag returns the parsed language, or English.
func (c Config) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Language)
	if err != nil || c.Language == "" {
		return language.English
	}
	return tag
}

// ControlOptions builds options for a Control from the config.
func (c Config) ControlOptions(items []string) segmented.Options {
	return segmented.Options{
		Items:                items,
		Width:                c.Window.Width,
		Appearance:           c.AppearanceValue(),
		HighlightDuration:    c.Highlight.Duration,
		SnapInitialHighlight: c.Highlight.SnapInitial,
	}
}

var presets = map[string]func() segmented.Theme{
	"":                 segmented.DefaultTheme,
	"default":          segmented.DefaultTheme,
	cannoli.PresetName: cannoli.Theme,
}

// ThemeValue applies the theme overrides to the selected preset.
func (c Config) ThemeValue() segmented.Theme {
	preset, ok := presets[c.Theme.Preset]
	if !ok {
		preset = segmented.DefaultTheme
	}
	theme := preset()
	t := c.Theme

	if t.MaterialSystem != 0 {
		theme.MaterialSystemColor = segmented.HexToColorAlpha(t.MaterialSystem, theme.MaterialSystemColor.A)
	}
	if t.MaterialLight != 0 {
		theme.MaterialLightColor = segmented.HexToColorAlpha(t.MaterialLight, theme.MaterialLightColor.A)
	}
	if t.MaterialDark != 0 {
		theme.MaterialDarkColor = segmented.HexToColorAlpha(t.MaterialDark, theme.MaterialDarkColor.A)
	}
	if t.MaterialAlpha != 0 {
		theme.MaterialSystemColor.A = t.MaterialAlpha
		theme.MaterialLightColor.A = t.MaterialAlpha
		theme.MaterialDarkColor.A = t.MaterialAlpha
	}

	if t.LabelLight != 0 {
		theme.LabelLightColor = segmented.HexToColor(t.LabelLight)
	}
	if t.LabelDark != 0 {
		theme.LabelDarkColor = segmented.HexToColor(t.LabelDark)
	}
	if t.HighlightOpacity != 0 {
		theme.HighlightOpacity = t.HighlightOpacity
	}
	if t.FontSize != 0 {
		theme.FontSize = t.FontSize
	}
	theme.BackdropPath = c.Backdrop
	theme.FontPath = c.Font
	return theme
}
