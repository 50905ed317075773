package flagetio

import (
	"fmt"

	"github.com/fatih/color"
)

// Style is a set of SGR attributes applied through an IOManager, so the
// same style renders plain text when the manager has color disabled.
type Style struct {
	attrs []color.Attribute
}

// NewStyle returns a style with the given attributes.
func NewStyle(attrs ...color.Attribute) *Style {
	return &Style{attrs: append([]color.Attribute(nil), attrs...)}
}

func (s *Style) Bold() *Style      { return s.with(color.Bold) }
func (s *Style) Faint() *Style     { return s.with(color.Faint) }
func (s *Style) Underline() *Style { return s.with(color.Underline) }

func (s *Style) with(a color.Attribute) *Style {
	s.attrs = append(s.attrs, a)
	return s
}

// Sprint renders text with the style when m supports color.
func (s *Style) Sprint(m *IOManager, text string) string {
	if !m.SupportsColor() || len(s.attrs) == 0 {
		return text
	}
	c := color.New(s.attrs...)
	c.EnableColor()
	return c.Sprint(text)
}

// Sprintf is Sprint with formatting.
func (s *Style) Sprintf(m *IOManager, format string, a ...any) string {
	if !m.SupportsColor() || len(s.attrs) == 0 {
		return fmt.Sprintf(format, a...)
	}
	c := color.New(s.attrs...)
	c.EnableColor()
	return c.Sprintf(format, a...)
}

// Theme provides semantic colors
type Theme struct {
	Primary, Success, Warning, Error, Info, Debug, Muted *Style
}

// DefaultTheme uses the bright 16-color palette, which every color
// capable terminal renders.
func DefaultTheme() Theme {
	return Theme{
		Primary: NewStyle(color.FgHiBlue),
		Success: NewStyle(color.FgHiGreen),
		Warning: NewStyle(color.FgHiYellow),
		Error:   NewStyle(color.FgHiRed),
		Info:    NewStyle(color.FgHiCyan),
		Debug:   NewStyle(color.FgHiMagenta),
		Muted:   NewStyle(color.FgHiBlack),
	}
}
