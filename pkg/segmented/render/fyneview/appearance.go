package fyneview

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/BrandonKowalski/segmented/pkg/segmented"
)

// SettingsAppearance reports the Fyne app's theme variant as an ambient
// appearance. One settings listener serves every subscriber.
type SettingsAppearance struct {
	settings fyne.Settings
	listen   sync.Once
	changes  *segmented.AppearanceBroadcaster
}

// NewSettingsAppearance follows the settings of app.
func NewSettingsAppearance(app fyne.App) *SettingsAppearance {
	settings := app.Settings()
	return &SettingsAppearance{
		settings: settings,
		changes:  segmented.NewAppearanceBroadcaster(variantAppearance(settings.ThemeVariant())),
	}
}

func (s *SettingsAppearance) Appearance() segmented.Appearance {
	return variantAppearance(s.settings.ThemeVariant())
}

// Subscribe delivers changes on the Fyne UI goroutine. It must be called
// from that goroutine too.
func (s *SettingsAppearance) Subscribe(fn func(segmented.Appearance)) func() {
	s.listen.Do(s.start)
	return s.changes.Subscribe(fn)
}

func (s *SettingsAppearance) start() {
	updates := make(chan fyne.Settings, 1)
	s.settings.AddChangeListener(updates)

	go func() {
		for settings := range updates {
			a := variantAppearance(settings.ThemeVariant())
			fyne.Do(func() { s.changes.Set(a) })
		}
	}()
}

func variantAppearance(v fyne.ThemeVariant) segmented.Appearance {
	switch v {
	case theme.VariantDark:
		return segmented.AppearanceDark
	case theme.VariantLight:
		return segmented.AppearanceLight
	default:
		return segmented.AppearanceUnspecified
	}
}
