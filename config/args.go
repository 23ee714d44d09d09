package config

import (
	"errors"
	"strconv"
)

// User-visible argument errors
var (
	ErrMonthNotInteger = errors.New("Month is expected as integer")
	ErrMonthRange      = errors.New("Month should be in range 1 to 12")
	ErrYearMissing     = errors.New("Year not entered")
	ErrYearNotInteger  = errors.New("Year is expected as positive integer")
)

// Start is an explicit month and year to open the calendar at
type Start struct {
	Month int
	Year  int
}

// ParseArgs validates the positional arguments (program name excluded)
// No arguments returns nil: open at today's date
func ParseArgs(args []string) (*Start, error) {
	if len(args) == 0 {
		return nil, nil
	}

	month, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return nil, ErrMonthNotInteger
	}
	if month < 1 || month > 12 {
		return nil, ErrMonthRange
	}

	if len(args) < 2 {
		return nil, ErrYearMissing
	}
	year, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		return nil, ErrYearNotInteger
	}

	return &Start{Month: int(month), Year: int(year)}, nil
}
