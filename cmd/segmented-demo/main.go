package main

import (
	"fmt"
	"os"
	"runtime"
	"slices"

	"github.com/BrandonKowalski/segmented/pkg/segmented"
	"github.com/BrandonKowalski/segmented/pkg/segmented/config"
	"github.com/BrandonKowalski/segmented/pkg/segmented/localize"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

func init() {
	// SDL and the Fyne desktop driver must stay on the main thread.
	runtime.LockOSThread()
}

var rootCmd = &cobra.Command{
	Use:   "segmented-demo",
	Short: "Interactive demo of the segmented control",
	Long: `segmented-demo shows a segmented control in an SDL window, a Fyne window,
or renders a scripted interaction to PNG frames. Settings come from an
optional TOML config file, environment overrides, and flags, in that order.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	configPath string
	itemsFlag  []string
	appearance string
	lang       string
	locales    string
	logLevel   string
	logPath    string
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "TOML config file")
	flags.StringSliceVar(&itemsFlag, "items", nil, "comma separated item IDs")
	flags.StringVar(&appearance, "appearance", "", "ambient appearance: unspecified, light or dark")
	flags.StringVar(&lang, "lang", "", "label language, e.g. en or de")
	flags.StringVar(&locales, "locales", "", "directory of active.<lang>.toml label catalogs")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&logPath, "log-path", "", "log file path (stdout only when empty)")
}

// demo is everything the subcommands share.
type demo struct {
	cfg       config.Config
	localizer *localize.Localizer
	control   *segmented.Control
}

func setup(cmd *cobra.Command) (*demo, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	flags := cmd.Flags()
	if flags.Changed("items") {
		cfg.Items = itemsFlag
	}
	if flags.Changed("appearance") {
		cfg.Appearance = appearance
	}
	if flags.Changed("lang") {
		cfg.Language = lang
	}
	if flags.Changed("locales") {
		cfg.Locales = locales
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-path") {
		cfg.Log.Path = logPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Log.Path != "" {
		segmented.SetLogPath(cfg.Log.Path)
	}
	segmented.SetRawLogLevel(cfg.Log.Level)
	segmented.SetInternalLogLevel(segmented.ParseLogLevel(cfg.Log.Level))
	segmented.SetTheme(cfg.ThemeValue())

	catalog := localize.NewCatalog(language.English)
	if cfg.Locales != "" {
		if err := catalog.LoadDir(cfg.Locales); err != nil {
			return nil, err
		}
	}
	localizer := catalog.Localizer(cfg.LanguageTag().String())

	control := segmented.New(cfg.ControlOptions(localizer.Labels(cfg.Items)))
	logChanges(control)

	return &demo{cfg: cfg, localizer: localizer, control: control}, nil
}

func logChanges(c *segmented.Control) {
	c.OnChange(func(change segmented.SelectionChange) {
		segmented.GetLogger().Info("Selection changed",
			"previous", change.Previous,
			"current", change.Current,
			"source", change.Source.String(),
		)
	})
}

// applyReload pushes a reloaded config into the running control.
func (d *demo) applyReload(cfg config.Config) {
	d.cfg = cfg
	segmented.SetTheme(cfg.ThemeValue())

	labels := d.localizer.Labels(cfg.Items)
	if !slices.Equal(labels, d.control.Items()) {
		d.control.SetItems(labels)
	}
}

func main() {
	defer segmented.CloseLogger()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		segmented.CloseLogger()
		os.Exit(1)
	}
}
