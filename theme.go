package highlight

import "github.com/eyelash/prism/engine"

// Color is a theme color. Themes are an external collaborator to the
// highlighting engine: the engine consumes only the style tag, never a
// Color, but a complete module ships at least enough theme data for the
// illustrative CLI to render something.
type Color struct {
	R, G, B uint8
}

// ThemeStyle is the rendering applied to one style tag.
type ThemeStyle struct {
	Fg     Color
	Italic bool
	Bold   bool
}

// Theme maps style tags to renderable colors, grounded on the reference
// implementation's one_dark theme table.
type Theme struct {
	Name       string
	Background Color
	Styles     map[Style]ThemeStyle
}

// StyleFor returns the rendering for tag, falling back to the theme's
// default (text) style for any tag it has no entry for.
func (t Theme) StyleFor(tag Style) ThemeStyle {
	if s, ok := t.Styles[tag]; ok {
		return s
	}
	return t.Styles[engine.StyleDefault]
}

var oneDarkTheme = Theme{
	Name:       "one-dark",
	Background: Color{R: 40, G: 44, B: 52},
	Styles: map[Style]ThemeStyle{
		StyleDefault:  {Fg: Color{R: 171, G: 178, B: 191}},
		StyleComment:  {Fg: Color{R: 92, G: 99, B: 112}, Italic: true},
		StyleKeyword:  {Fg: Color{R: 198, G: 120, B: 221}},
		StyleOperator: {Fg: Color{R: 198, G: 120, B: 221}},
		StyleType:     {Fg: Color{R: 97, G: 175, B: 239}},
		StyleLiteral:  {Fg: Color{R: 209, G: 154, B: 102}},
		StyleString:   {Fg: Color{R: 152, G: 195, B: 121}},
		StyleEscape:   {Fg: Color{R: 86, G: 182, B: 194}, Bold: true},
		StyleFunction: {Fg: Color{R: 97, G: 175, B: 239}},
	},
}

var plainTheme = Theme{
	Name:       "plain",
	Background: Color{R: 0, G: 0, B: 0},
	Styles: map[Style]ThemeStyle{
		StyleDefault: {Fg: Color{R: 255, G: 255, B: 255}},
	},
}

var themes = map[string]Theme{
	oneDarkTheme.Name: oneDarkTheme,
	plainTheme.Name:   plainTheme,
}

// GetTheme looks up a theme by name, falling back to "one-dark" for an
// unknown name. Theme is opaque styling: the engine itself never consults
// it, only the tag values in §3 do.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return oneDarkTheme
}
