package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that are awkward as bare config keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keysByName indexes tcell special keys by lowercase name, excluding Ctrl combinations
var keysByName = buildKeyNames()

func buildKeyNames() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		lower := strings.ToLower(name)
		if strings.HasPrefix(lower, "ctrl-") {
			continue
		}
		m[lower] = k
	}
	// Backspace2 is normalized to Backspace by tcell
	delete(m, "backspace2")
	return m
}

// LoadKeyConfig parses key name -> action name bindings into a sparse override KeyTable
// Returns error on unknown action names or invalid key names
func LoadKeyConfig(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{}

	for keyStr, actionName := range bindings {
		action, ok := ActionByName(actionName)
		if !ok {
			return nil, fmt.Errorf("key %q: unknown action %q (expected one of %s)",
				keyStr, actionName, strings.Join(ActionNames(), ", "))
		}

		if r, ok := resolveRune(keyStr); ok {
			if kt.Runes == nil {
				kt.Runes = make(map[rune]Action)
			}
			kt.Runes[r] = action
			continue
		}

		k, err := resolveKey(keyStr)
		if err != nil {
			return nil, err
		}
		if kt.Keys == nil {
			kt.Keys = make(map[tcell.Key]Action)
		}
		kt.Keys[k] = action
	}

	return kt, nil
}

// resolveRune converts a config key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}

// resolveKey converts a config key string to a tcell special key
func resolveKey(s string) (tcell.Key, error) {
	lower := strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(lower, "ctrl-") || strings.HasPrefix(lower, "ctrl+") {
		return 0, fmt.Errorf("key %q: modified keys cannot be bound", s)
	}
	k, ok := keysByName[lower]
	if !ok {
		return 0, fmt.Errorf("unknown key name: %q", s)
	}
	return k, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by override entries
// Override entries bound to ActionNone delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}

	for k, v := range override.Runes {
		if v == ActionNone {
			delete(result.Runes, k)
		} else {
			result.Runes[k] = v
		}
	}
	for k, v := range override.Keys {
		if v == ActionNone {
			delete(result.Keys, k)
		} else {
			result.Keys[k] = v
		}
	}

	return result
}
