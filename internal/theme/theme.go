// Package theme resolves the user's theme preference against the terminal
// and exposes the color palette the TUI styles are built from.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Mode is the stored preference. System defers to the terminal background.
type Mode string

const (
	ModeSystem Mode = "system"
	ModeLight  Mode = "light"
	ModeDark   Mode = "dark"
)

// Variant is the effective appearance after resolution.
type Variant string

const (
	VariantLight Variant = "light"
	VariantDark  Variant = "dark"
)

// Resolve combines the preference with the terminal-reported background.
// Unknown modes resolve like system.
func Resolve(mode Mode, darkBackground bool) Variant {
	switch mode {
	case ModeLight:
		return VariantLight
	case ModeDark:
		return VariantDark
	default:
		if darkBackground {
			return VariantDark
		}
		return VariantLight
	}
}

// DetectDark asks the terminal whether its background is dark.
func DetectDark() bool {
	return termenv.HasDarkBackground()
}

// Palette carries the colors the workspace styles use. Accent and border
// values match across variants; surfaces and text flip.
type Palette struct {
	Accent     lipgloss.Color
	AccentText lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color
	Danger     lipgloss.Color
	GlamourSty string
}

func PaletteFor(v Variant) Palette {
	if v == VariantLight {
		return Palette{
			Accent:     lipgloss.Color("#0077CC"),
			AccentText: lipgloss.Color("#FFFFFF"),
			Text:       lipgloss.Color("#222222"),
			Muted:      lipgloss.Color("#777777"),
			Surface:    lipgloss.Color("#EEEEEE"),
			Border:     lipgloss.Color("#BBCCDD"),
			Danger:     lipgloss.Color("#CC3344"),
			GlamourSty: "light",
		}
	}

	return Palette{
		Accent:     lipgloss.Color("#0AF"),
		AccentText: lipgloss.Color("#FFF"),
		Text:       lipgloss.Color("#CCC"),
		Muted:      lipgloss.Color("#888"),
		Surface:    lipgloss.Color("#224"),
		Border:     lipgloss.Color("#334455"),
		Danger:     lipgloss.Color("#F66"),
		GlamourSty: "dracula",
	}
}
