package app

import (
	"fmt"

	"cellflow/internal/core"
)

// EventKind identifies an input event delivered by the window system.
type EventKind int

const (
	// EventQuit asks the loop to stop.
	EventQuit EventKind = iota
	// EventDrag is a pointer move while a button is held.
	EventDrag
	// EventKeyDown is a key press.
	EventKeyDown
)

// Key enumerates the keys the controls react to.
type Key int

const (
	KeyUnknown Key = iota
	// KeySpace toggles the brush between solid and water.
	KeySpace
	// KeyBackspace toggles erase mode.
	KeyBackspace
	// KeyReset empties the grid.
	KeyReset
	// KeyGrid toggles the grid line overlay.
	KeyGrid
	// KeyPause stops or resumes ticking.
	KeyPause
	// KeyStep runs a single tick while paused.
	KeyStep
)

// Event is one polled input event.
type Event struct {
	Kind EventKind
	X, Y int
	Key  Key
}

// Quit returns a quit event.
func Quit() Event { return Event{Kind: EventQuit} }

// Drag returns a pointer drag event at pixel (x, y).
func Drag(x, y int) Event { return Event{Kind: EventDrag, X: x, Y: y} }

// KeyDown returns a key press event.
func KeyDown(k Key) Event { return Event{Kind: EventKeyDown, Key: k} }

// Controls holds the interactive editing modes and the loop switches.
type Controls struct {
	Brush     core.Material
	Erase     bool
	ShowGrid  bool
	Paused    bool
	StepOnce  bool
	ResetNext bool

	// Notice is set to a short description whenever a mode changes.
	Notice string
}

// NewControls starts with the solid brush, erase off and grid lines shown.
func NewControls() *Controls {
	return &Controls{Brush: core.Solid, ShowGrid: true}
}

// Handle applies one event. Drags are forwarded to ed when it is non-nil. It
// reports whether the loop should quit.
func (c *Controls) Handle(ev Event, ed core.Editable) bool {
	switch ev.Kind {
	case EventQuit:
		return true
	case EventDrag:
		if ed != nil {
			ed.ApplyEdit(ev.X, ev.Y, c.Brush, c.Erase)
		}
	case EventKeyDown:
		c.handleKey(ev.Key)
	}
	return false
}

// HandleAll drains events in order and stops at the first quit.
func (c *Controls) HandleAll(events []Event, ed core.Editable) bool {
	for _, ev := range events {
		if c.Handle(ev, ed) {
			return true
		}
	}
	return false
}

// Status describes the current brush for display.
func (c *Controls) Status() string {
	if c.Erase {
		return "erase"
	}
	return fmt.Sprintf("paint %s", c.Brush)
}

func (c *Controls) handleKey(k Key) {
	switch k {
	case KeySpace:
		c.Brush = c.Brush.Toggle()
		c.Notice = fmt.Sprintf("Brush: %s", c.Brush)
	case KeyBackspace:
		c.Erase = !c.Erase
		if c.Erase {
			c.Notice = "Erase on"
		} else {
			c.Notice = "Erase off"
		}
	case KeyGrid:
		c.ShowGrid = !c.ShowGrid
	case KeyPause:
		c.Paused = !c.Paused
		if c.Paused {
			c.Notice = "Paused"
		} else {
			c.Notice = "Running"
		}
	case KeyStep:
		c.StepOnce = true
	case KeyReset:
		c.ResetNext = true
		c.Notice = "Reset"
	}
}

// ShouldStep reports whether the sim advances this frame and consumes a
// pending single step.
func (c *Controls) ShouldStep() bool {
	if !c.Paused {
		c.StepOnce = false
		return true
	}
	if c.StepOnce {
		c.StepOnce = false
		return true
	}
	return false
}

// TakeNotice returns and clears the pending mode notice.
func (c *Controls) TakeNotice() string {
	n := c.Notice
	c.Notice = ""
	return n
}
