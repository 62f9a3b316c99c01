package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines the chrome colors around the highlighted body. Body
// text colors come from the syntax style, not from here.
type ColorTheme struct {
	Background tcell.Color
	HeaderBg   tcell.Color
	HeaderFg   tcell.Color
	AccentFg   tcell.Color
	StatusBg   tcell.Color
	HintFg     tcell.Color
	NoticeFg   tcell.Color
	PausedFg   tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background: tcell.ColorDefault,
		HeaderBg:   tcell.ColorDefault,
		HeaderFg:   tcell.ColorDefault,
		AccentFg:   tcell.Color40, // green program name
		StatusBg:   tcell.ColorDefault,
		HintFg:     tcell.Color242, // dark gray key hints
		NoticeFg:   tcell.Color214, // orange transient notices
		PausedFg:   tcell.Color196, // red PAUSED marker
	}
}
