// Package theme activates the Tk theme and configures the named styles used
// by the views.
package theme

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
	_ "modernc.org/tk9.0/themes/azure"
)

// Palette defines core semantic colors used across widgets.
const (
	ColorBg        = "#f7f9fb"
	ColorSurface   = "#ffffff"
	ColorPrimary   = "#2563eb"
	ColorDanger    = "#dc2626"
	ColorAccent    = "#10b981"
	ColorText      = "#1e293b"
	ColorTextMuted = "#64748b"
)

// Style names used with Style("primary.TButton") etc.
const (
	StylePrimaryButton = "primary.TButton"
	StyleDangerButton  = "danger.TButton"
	StyleStatusLabel   = "status.TLabel"
	StyleCounterLabel  = "counter.TLabel"
)

// BaseTheme is the ttk theme activated by InitStyles.
const BaseTheme = "azure light"

// InitStyles activates the base theme and configures the named styles. It
// must run on the Tk thread before any view is built.
func InitStyles() error {
	if err := ActivateTheme(BaseTheme); err != nil {
		return err
	}
	App.Configure(Background(ColorBg))
	StyleConfigure(StylePrimaryButton,
		Background(ColorPrimary),
		Foreground("white"),
		Padding("4p 3p"),
	)
	StyleConfigure(StyleDangerButton,
		Background(ColorDanger),
		Foreground("white"),
		Padding("4p 3p"),
	)
	StyleConfigure(StyleStatusLabel,
		Foreground(ColorText),
		Padding("2p 1p"),
	)
	StyleConfigure(StyleCounterLabel,
		Foreground(ColorAccent),
		Font("Helvetica", 12, "bold"),
	)
	return nil
}
