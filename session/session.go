// Package session runs the interactive calendar: one render, then a blocking key loop until quit.
package session

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termcal/calendar"
	"github.com/lixenwraith/termcal/input"
	"github.com/lixenwraith/termcal/render"
	"github.com/lixenwraith/termcal/terminal"
)

// Options configures Start
type Options struct {
	// Screen overrides the tcell screen; nil opens the real terminal
	Screen tcell.Screen

	Calendar *calendar.Calendar
	Keys     *input.KeyTable
	Theme    terminal.Theme
}

// Session owns the calendar state and the terminal it is drawn on
type Session struct {
	cal  *calendar.Calendar
	term *terminal.Terminal
	keys *input.KeyTable
}

// New creates a session over an opened terminal
func New(term *terminal.Terminal, cal *calendar.Calendar, keys *input.KeyTable) *Session {
	if keys == nil {
		keys = input.DefaultKeyTable()
	}
	return &Session{
		cal:  cal,
		term: term,
		keys: keys,
	}
}

// Start acquires the terminal, runs the session, and restores the terminal on every exit path
func Start(opts Options) error {
	term, err := terminal.Open(opts.Screen, opts.Theme)
	if err != nil {
		return err
	}
	defer term.Close()

	return New(term, opts.Calendar, opts.Keys).Run()
}

// Calendar returns the session's calendar state
func (s *Session) Calendar() *calendar.Calendar {
	return s.cal
}

// Run renders once, then blocks on input until the quit action or an input error
func (s *Session) Run() error {
	log.Printf("session start: %s", s.cal)
	render.Draw(s.term, s.cal)

	for {
		ev, err := s.term.PollEvent()
		if err != nil {
			log.Printf("session input error: %v", err)
			return err
		}

		if s.handleEvent(ev) {
			log.Printf("session end: %s", s.cal)
			return nil
		}

		render.Draw(s.term, s.cal)
	}
}

// handleEvent applies one event to the state, returns true on quit
func (s *Session) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action := s.keys.Resolve(ev)
		if action == input.ActionNone {
			return false
		}
		if s.apply(action) {
			return true
		}
		log.Printf("%s -> %s", action, s.cal)

	case *tcell.EventResize:
		w, h := ev.Size()
		log.Printf("resize %dx%d", w, h)
		s.term.Sync()
	}

	return false
}

// apply performs a resolved action, returns true on quit
func (s *Session) apply(action input.Action) bool {
	switch action {
	case input.ActionQuit:
		return true
	case input.ActionToday:
		s.cal.JumpToToday()
	case input.ActionPreviousMonth:
		s.cal.PreviousMonth()
	case input.ActionNextMonth:
		s.cal.NextMonth()
	case input.ActionPreviousYear:
		s.cal.PreviousYear()
	case input.ActionNextYear:
		s.cal.NextYear()
	}
	return false
}
