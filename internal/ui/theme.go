package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette is the static color table for one theme variant. Controls never
// inspect widget types at runtime; recoloring happens by swapping the
// installed theme for the other palette.
type Palette struct {
	Background      color.Color
	InputBackground color.Color
	Foreground      color.Color
	Primary         color.Color
	Button          color.Color
}

// The two fixed palettes. There is no third state.
var (
	DarkPalette = Palette{
		Background:      color.RGBA{R: 30, G: 30, B: 30, A: 255},
		InputBackground: color.RGBA{R: 60, G: 63, B: 65, A: 255},
		Foreground:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Primary:         color.RGBA{R: 0, G: 122, B: 204, A: 255},
		Button:          color.RGBA{R: 60, G: 63, B: 65, A: 255},
	}

	LightPalette = Palette{
		Background:      color.RGBA{R: 240, G: 240, B: 240, A: 255},
		InputBackground: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Foreground:      color.RGBA{R: 33, G: 33, B: 33, A: 255},
		Primary:         color.RGBA{R: 0, G: 95, B: 153, A: 255},
		Button:          color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
)

// AppTheme implements fyne.Theme over one of the two fixed palettes with
// compact sizing.
type AppTheme struct {
	palette Palette
}

// NewAppTheme creates the theme for the requested palette.
func NewAppTheme(dark bool) fyne.Theme {
	if dark {
		return &AppTheme{palette: DarkPalette}
	}
	return &AppTheme{palette: LightPalette}
}

// Color returns theme colors from the static palette table
func (t *AppTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return t.palette.Background
	case theme.ColorNameInputBackground:
		return t.palette.InputBackground
	case theme.ColorNameForeground:
		return t.palette.Foreground
	case theme.ColorNamePrimary:
		return t.palette.Primary
	case theme.ColorNameButton:
		return t.palette.Button
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *AppTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *AppTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *AppTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameInputRadius:
		return 3
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}
