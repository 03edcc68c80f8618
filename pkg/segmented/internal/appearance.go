package internal

import (
	"fmt"
	"strings"
)

// Appearance is the ambient light/dark color scheme around the control.
type Appearance int

const (
	AppearanceUnspecified Appearance = iota
	AppearanceLight
	AppearanceDark
)

func (a Appearance) String() string {
	switch a {
	case AppearanceLight:
		return "light"
	case AppearanceDark:
		return "dark"
	default:
		return "unspecified"
	}
}

// ParseAppearance parses "light", "dark", "unspecified" or "" (case-insensitive).
func ParseAppearance(raw string) (Appearance, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "unspecified", "system":
		return AppearanceUnspecified, nil
	case "light":
		return AppearanceLight, nil
	case "dark":
		return AppearanceDark, nil
	default:
		return AppearanceUnspecified, fmt.Errorf("unknown appearance %q", raw)
	}
}

// Material is a translucent fill style.
type Material int

const (
	MaterialSystem Material = iota // Neutral, follows the system default
	MaterialLight                  // Light-leaning
	MaterialDark                   // Dark-leaning
)

func (m Material) String() string {
	switch m {
	case MaterialLight:
		return "light"
	case MaterialDark:
		return "dark"
	default:
		return "system"
	}
}

// ResolvedMaterial returns the material that matches the appearance. The
// background of the control uses it.
func ResolvedMaterial(a Appearance) Material {
	switch a {
	case AppearanceLight:
		return MaterialLight
	case AppearanceDark:
		return MaterialDark
	default:
		return MaterialSystem
	}
}

// InvertedMaterial returns the material contrasting with the appearance:
// light surroundings get a dark highlight and the other way round.
func InvertedMaterial(a Appearance) Material {
	switch a {
	case AppearanceLight:
		return MaterialDark
	case AppearanceDark:
		return MaterialLight
	default:
		return MaterialSystem
	}
}
