package terminal

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// ErrClosed is returned by PollEvent once the screen has been finalized
var ErrClosed = errors.New("terminal closed")

// Terminal is a scoped handle over an initialized tcell screen
type Terminal struct {
	screen tcell.Screen
	theme  Theme

	mu        sync.Mutex
	finalized bool
}

var (
	activeMu sync.Mutex
	active   *Terminal
)

// Open initializes screen (a new tcell screen when nil): raw mode, alternate screen, hidden cursor
// The returned Terminal must be released with Close
func Open(screen tcell.Screen, theme Theme) (*Terminal, error) {
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("create screen: %w", err)
		}
		screen = s
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	if theme == nil {
		theme = DefaultTheme()
	}

	t := &Terminal{
		screen: screen,
		theme:  theme,
	}

	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	screen.Clear()

	activeMu.Lock()
	active = t
	activeMu.Unlock()

	return t, nil
}

// Close restores the terminal: cursor shown, alternate screen left, raw mode off
// Safe to call multiple times
func (t *Terminal) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.finalized {
		return
	}
	t.finalized = true
	t.screen.Fini()

	activeMu.Lock()
	if active == t {
		active = nil
	}
	activeMu.Unlock()
}

// Closed reports whether Close has run
func (t *Terminal) Closed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.finalized
}

// Size returns current terminal dimensions
func (t *Terminal) Size() (width, height int) {
	return t.screen.Size()
}

// Clear blanks the back buffer
func (t *Terminal) Clear() {
	t.screen.Clear()
}

// Print draws text starting at (x, y), advancing by each rune's display width
// Cells outside the screen are clipped
func (t *Terminal) Print(x, y int, text string, style Style) {
	st := t.theme.Resolve(style)
	for _, r := range text {
		t.screen.SetContent(x, y, r, nil, st)
		x += runewidth.RuneWidth(r)
	}
}

// Show flushes the back buffer in a single write
func (t *Terminal) Show() {
	t.screen.Show()
}

// Sync forces a full redraw, used after a resize
func (t *Terminal) Sync() {
	t.screen.Sync()
}

// PollEvent blocks until the next input event
func (t *Terminal) PollEvent() (tcell.Event, error) {
	ev := t.screen.PollEvent()
	if ev == nil {
		return nil, ErrClosed
	}
	if evErr, ok := ev.(*tcell.EventError); ok {
		return nil, fmt.Errorf("terminal input: %w", evErr)
	}
	return ev, nil
}
