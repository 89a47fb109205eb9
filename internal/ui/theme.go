package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Planner palette: near-black surfaces with orange accents
var (
	ColorBackground  = color.RGBA{R: 7, G: 7, B: 7, A: 255}       // #070707
	ColorPanel       = color.RGBA{R: 13, G: 13, B: 13, A: 255}    // #0d0d0d
	ColorAccent      = color.RGBA{R: 244, G: 146, B: 33, A: 255}  // #f49221
	ColorAccentHover = color.RGBA{R: 255, G: 173, B: 85, A: 255}  // #ffad55
	ColorLive        = color.RGBA{R: 105, G: 227, B: 107, A: 255} // #69e36b
	ColorOffline     = color.RGBA{R: 255, G: 92, B: 92, A: 255}   // #ff5c5c
	ColorForeground  = color.RGBA{R: 234, G: 234, B: 234, A: 255} // #eaeaea
	ColorMutedAccent = color.RGBA{R: 244, G: 146, B: 33, A: 140}
)

// PlannerTheme defines the planner look: always dark, orange primary,
// green/red status colors
type PlannerTheme struct{}

// NewPlannerTheme creates a new planner theme
func NewPlannerTheme() fyne.Theme {
	return &PlannerTheme{}
}

// Color returns theme colors. The planner ignores the system variant and
// renders dark in both.
func (t *PlannerTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return ColorBackground
	case theme.ColorNameForeground:
		return ColorForeground
	case theme.ColorNamePrimary:
		return ColorAccent
	case theme.ColorNameHover:
		return ColorAccentHover
	case theme.ColorNameSuccess:
		return ColorLive
	case theme.ColorNameError:
		return ColorOffline
	case theme.ColorNameButton:
		return ColorPanel
	case theme.ColorNameInputBackground:
		return color.RGBA{R: 18, G: 18, B: 18, A: 255}
	case theme.ColorNameSeparator:
		return ColorMutedAccent
	}

	// Use dark-variant defaults for everything else
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *PlannerTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *PlannerTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *PlannerTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 5
	case theme.SizeNameInputRadius:
		return 10
	case theme.SizeNameSelectionRadius:
		return 10
	}
	return theme.DefaultTheme().Size(name)
}
