// Package calendar holds the displayed month state and the Gregorian date arithmetic behind the month grid.
package calendar

import "fmt"

// NoDay is the day sentinel for a calendar opened without a highlighted date
const NoDay = 0

// Calendar is the displayed day/month/year plus the anchor captured at construction
// Day is the highlighted day-of-month; it is compared against the grid of whatever month is displayed
// and is never clamped to that month's length
type Calendar struct {
	Day   int
	Month int
	Year  int

	anchorDay   int
	anchorMonth int
	anchorYear  int
}

// From creates a calendar at an explicit date; day may be NoDay
func From(day, month, year int) *Calendar {
	return &Calendar{
		Day:         day,
		Month:       month,
		Year:        year,
		anchorDay:   day,
		anchorMonth: month,
		anchorYear:  year,
	}
}

// Today creates a calendar at the provider's current local date with that day highlighted
func Today(tp TimeProvider) *Calendar {
	year, month, day := tp.Now().Date()
	return From(day, int(month), year)
}

// Anchor returns the day/month/year captured at construction
func (c *Calendar) Anchor() (day, month, year int) {
	return c.anchorDay, c.anchorMonth, c.anchorYear
}

// NextMonth advances one month, rolling December into January of the next year
func (c *Calendar) NextMonth() {
	if c.Month >= 12 {
		c.Month = 1
		c.Year++
		return
	}
	c.Month++
}

// PreviousMonth steps back one month, rolling January into December of the previous year
// January of year 0 stays put
func (c *Calendar) PreviousMonth() {
	if c.Month <= 1 {
		if c.Year == 0 {
			return
		}
		c.Month = 12
		c.Year--
		return
	}
	c.Month--
}

// NextYear advances the year, month and day unchanged
func (c *Calendar) NextYear() {
	c.Year++
}

// PreviousYear steps the year back, clamped at 0
func (c *Calendar) PreviousYear() {
	if c.Year > 0 {
		c.Year--
	}
}

// JumpToToday restores the anchor date
func (c *Calendar) JumpToToday() {
	c.Day, c.Month, c.Year = c.anchorDay, c.anchorMonth, c.anchorYear
}

// DaysInMonth returns the day count of the displayed month
func (c *Calendar) DaysInMonth() int {
	return DaysInMonth(c.Month, c.Year)
}

// WeekdayOffset returns the weekday of the 1st of the displayed month
func (c *Calendar) WeekdayOffset() int {
	return WeekdayOffset(c.Month, c.Year)
}

// Grid returns the day cells of the displayed month
func (c *Calendar) Grid() []Cell {
	return MonthGrid(c.Month, c.Year)
}

// IsHighlighted reports whether day is the highlighted day
func (c *Calendar) IsHighlighted(day int) bool {
	return c.Day != NoDay && day == c.Day
}

// String formats the displayed state for logs
func (c *Calendar) String() string {
	return fmt.Sprintf("%04d-%02d day=%d", c.Year, c.Month, c.Day)
}
