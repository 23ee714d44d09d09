package calendar

// Weekday index of a grid column, Sunday first
const (
	Sunday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// DaysPerWeek is the number of grid columns
const DaysPerWeek = 7

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Sakamoto month offsets relative to March-based years
var monthOffsets = [12]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}

// IsLeapYear applies the Gregorian rule: divisible by 4, except centuries not divisible by 400
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the day count of month (1-12) in year
// Returns 0 for a month outside 1-12
func DaysInMonth(month, year int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthDays[month-1]
}

// WeekdayOffset returns the weekday (0 = Sunday) of the 1st of month in year
// Returns 0 for a month outside 1-12
func WeekdayOffset(month, year int) int {
	if month < 1 || month > 12 {
		return 0
	}
	// A 400-year Gregorian cycle is exactly 20871 weeks; the shift keeps year 0 January/February non-negative
	y := year + 400
	if month < 3 {
		y--
	}
	return (y + y/4 - y/100 + y/400 + monthOffsets[month-1] + 1) % DaysPerWeek
}

// Cell is one day of a month grid
type Cell struct {
	Day     int
	Week    int // zero-based week row within the month
	Weekday int // column, 0 = Sunday
}

// MonthGrid lays out the days of month in year on a Sunday-first week grid
func MonthGrid(month, year int) []Cell {
	days := DaysInMonth(month, year)
	offset := WeekdayOffset(month, year)

	cells := make([]Cell, 0, days)
	for day := 1; day <= days; day++ {
		slot := offset + day - 1
		cells = append(cells, Cell{
			Day:     day,
			Week:    slot / DaysPerWeek,
			Weekday: slot % DaysPerWeek,
		})
	}
	return cells
}
