package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps unmodified keys to actions
type KeyTable struct {
	// Printable keys, delivered by tcell as KeyRune
	Runes map[rune]Action

	// Special keys (arrows, function keys, navigation)
	Keys map[tcell.Key]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Action{
			'q': ActionQuit,
			't': ActionToday,
		},
		Keys: map[tcell.Key]Action{
			tcell.KeyUp:    ActionPreviousMonth,
			tcell.KeyDown:  ActionNextMonth,
			tcell.KeyRight: ActionNextYear,
			tcell.KeyLeft:  ActionPreviousYear,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		Runes: make(map[rune]Action, len(kt.Runes)),
		Keys:  make(map[tcell.Key]Action, len(kt.Keys)),
	}
	for k, v := range kt.Runes {
		c.Runes[k] = v
	}
	for k, v := range kt.Keys {
		c.Keys[k] = v
	}
	return c
}

// Resolve maps a key event to its action
// Any modifier, or an unbound key, yields ActionNone
func (kt *KeyTable) Resolve(ev *tcell.EventKey) Action {
	if ev == nil || ev.Modifiers() != tcell.ModNone {
		return ActionNone
	}
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.Keys[ev.Key()]
}
