package input

import (
	"fmt"
	"sort"
	"strings"
)

// Action is a calendar command bound to a key
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionToday
	ActionPreviousMonth
	ActionNextMonth
	ActionPreviousYear
	ActionNextYear
)

// actionRegistry maps canonical action names to actions
// Used by the key config loader to resolve action strings to bindings
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,

	"quit":           ActionQuit,
	"today":          ActionToday,
	"previous_month": ActionPreviousMonth,
	"next_month":     ActionNextMonth,
	"previous_year":  ActionPreviousYear,
	"next_year":      ActionNextYear,
}

// ActionByName resolves a canonical action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	return a, ok
}

// ActionNames lists the canonical action names in sorted order
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for n := range actionRegistry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// String returns the canonical name of the action
func (a Action) String() string {
	for n, v := range actionRegistry {
		if v == a {
			return n
		}
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}
