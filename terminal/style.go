package terminal

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Style tags the role of printed text; a Theme maps it to colors and attributes
type Style uint8

const (
	StylePlain Style = iota
	StyleHeader
	StyleSundayHeader
	StyleToday
	StyleSunday
	StyleYear
	StyleMonthActive
	StyleMonthInactive
)

var styleNames = map[Style]string{
	StylePlain:         "day",
	StyleHeader:        "header",
	StyleSundayHeader:  "sunday_header",
	StyleToday:         "today",
	StyleSunday:        "sunday",
	StyleYear:          "year",
	StyleMonthActive:   "month_active",
	StyleMonthInactive: "month_inactive",
}

// String returns the config name of the style
func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("style(%d)", uint8(s))
}

// StyleByName resolves a config name to a Style
func StyleByName(name string) (Style, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range styleNames {
		if n == name {
			return s, true
		}
	}
	return StylePlain, false
}

// StyleNames lists the config names in sorted order
func StyleNames() []string {
	names := make([]string, 0, len(styleNames))
	for _, n := range styleNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Theme maps style tags to tcell styles
type Theme map[Style]tcell.Style

// DefaultTheme returns the stock palette
func DefaultTheme() Theme {
	return Theme{
		StylePlain:         tcell.StyleDefault,
		StyleHeader:        tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		StyleSundayHeader:  tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
		StyleToday:         tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true),
		StyleSunday:        tcell.StyleDefault.Foreground(tcell.ColorRed),
		StyleYear:          tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		StyleMonthActive:   tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
		StyleMonthInactive: tcell.StyleDefault.Foreground(tcell.ColorGray),
	}
}

// Resolve returns the tcell style for s, falling back to the default style
func (th Theme) Resolve(s Style) tcell.Style {
	if st, ok := th[s]; ok {
		return st
	}
	return tcell.StyleDefault
}

// WithColors returns a copy of th with foreground colors overridden
// Keys are style names, values W3C color names, "#rrggbb" or "default"
// Attributes (bold, dim) of the base style are kept
func (th Theme) WithColors(colors map[string]string) (Theme, error) {
	result := make(Theme, len(th))
	for s, st := range th {
		result[s] = st
	}

	for name, value := range colors {
		s, ok := StyleByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown style %q (expected one of %s)", name, strings.Join(StyleNames(), ", "))
		}
		c, err := parseColor(value)
		if err != nil {
			return nil, fmt.Errorf("style %q: %w", name, err)
		}
		result[s] = result.Resolve(s).Foreground(c)
	}

	return result, nil
}

func parseColor(value string) (tcell.Color, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "default" || v == "" {
		return tcell.ColorDefault, nil
	}
	c := tcell.GetColor(v)
	if c == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("unknown color %q", value)
	}
	return c, nil
}
