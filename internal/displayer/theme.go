package displayer

import "github.com/gdamore/tcell/v2"

// Theme is a colour palette for the TUI plus the dynamic colour tags
// used inside text views.
type Theme struct {
	Name string

	Background tcell.Color
	Panel      tcell.Color
	Border     tcell.Color
	Text       tcell.Color
	Accent     tcell.Color
	Highlight  tcell.Color
	FieldBg    tcell.Color

	// Tags are tview dynamic colour tags (hex form, without brackets).
	TagText string
	TagOK   string
	TagWarn string
	TagDim  string
}

// DarkTheme is the default navy/orange palette.
func DarkTheme() Theme {
	return Theme{
		Name:       "dark",
		Background: tcell.NewHexColor(0x0b1f3b),
		Panel:      tcell.NewHexColor(0x16243a),
		Border:     tcell.NewHexColor(0x2b3f5f),
		Text:       tcell.NewHexColor(0xf0f4ff),
		Accent:     tcell.NewHexColor(0xff8c00),
		Highlight:  tcell.NewHexColor(0x2854a0),
		FieldBg:    tcell.NewHexColor(0x12284a),
		TagText:    "#f0f4ff",
		TagOK:      "#7cd67c",
		TagWarn:    "#ff4d4d",
		TagDim:     "#cccccc",
	}
}

// LightTheme is the alternative palette reached with Ctrl+T.
func LightTheme() Theme {
	return Theme{
		Name:       "light",
		Background: tcell.NewHexColor(0xf2f4f8),
		Panel:      tcell.NewHexColor(0xffffff),
		Border:     tcell.NewHexColor(0xb8c0d0),
		Text:       tcell.NewHexColor(0x1a2230),
		Accent:     tcell.NewHexColor(0xc2610c),
		Highlight:  tcell.NewHexColor(0xa9c2e8),
		FieldBg:    tcell.NewHexColor(0xe6eaf2),
		TagText:    "#1a2230",
		TagOK:      "#1d7a2d",
		TagWarn:    "#b00020",
		TagDim:     "#5a6272",
	}
}
