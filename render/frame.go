// Package render lays out one calendar frame: the weekday grid on the right and the year/month index on the left.
package render

import (
	"strconv"

	"github.com/lixenwraith/termcal/calendar"
	"github.com/lixenwraith/termcal/terminal"
)

// Canvas is the drawing surface a frame is rendered onto
// terminal.Terminal implements it; tests use a recorder
type Canvas interface {
	Size() (width, height int)
	Clear()
	Print(x, y int, text string, style terminal.Style)
	Show()
}

// Draw renders the full frame for cal and flushes it once
// Layout is recomputed from the canvas size on every call
func Draw(c Canvas, cal *calendar.Calendar) {
	w, h := c.Size()
	c.Clear()

	drawHeader(c, w, h)
	drawDays(c, cal, w, h)
	drawIndex(c, cal, h)

	c.Show()
}

func drawHeader(c Canvas, w, h int) {
	y := RowY(h, 0)
	for col, name := range Weekdays {
		style := terminal.StyleHeader
		if col == calendar.Sunday {
			style = terminal.StyleSundayHeader
		}
		c.Print(ColumnX(w, col), y, name, style)
	}
}

func drawDays(c Canvas, cal *calendar.Calendar, w, h int) {
	for _, cell := range cal.Grid() {
		style := terminal.StylePlain
		switch {
		case cal.IsHighlighted(cell.Day):
			style = terminal.StyleToday
		case cell.Weekday == calendar.Sunday:
			style = terminal.StyleSunday
		}
		// Grid rows start below the header
		c.Print(ColumnX(w, cell.Weekday), RowY(h, cell.Week+1), strconv.Itoa(cell.Day), style)
	}
}

func drawIndex(c Canvas, cal *calendar.Calendar, h int) {
	top := IndexTop(h)
	c.Print(1, top, strconv.Itoa(cal.Year), terminal.StyleYear)

	for i, name := range Months {
		style := terminal.StyleMonthInactive
		if i == cal.Month-1 {
			style = terminal.StyleMonthActive
		}
		c.Print(1, top+2+i, name, style)
	}
}
