// Package input samples player intent once per frame.
package input

import (
	"fmt"
	"strings"
)

// State is one frame's worth of input.
type State struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Jump    bool
	Run     bool
	Reset   bool
	Quit    bool
}

// Source produces the input for the next frame.
type Source interface {
	Poll() State
}

// Axis returns -1, 0 or 1 for a pair of opposing buttons.
func Axis(positive, negative bool) float32 {
	var v float32
	if positive {
		v++
	}
	if negative {
		v--
	}
	return v
}

// ParseKeys builds a State from a comma separated list of action names,
// e.g. "forward,run". The empty string is the idle state.
func ParseKeys(s string) (State, error) {
	var st State
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(strings.ToLower(name))
		switch name {
		case "":
		case "forward", "w":
			st.Forward = true
		case "back", "s":
			st.Back = true
		case "left", "a":
			st.Left = true
		case "right", "d":
			st.Right = true
		case "jump", "space":
			st.Jump = true
		case "run", "shift":
			st.Run = true
		case "reset", "r":
			st.Reset = true
		case "quit", "escape":
			st.Quit = true
		default:
			return State{}, fmt.Errorf("unknown key %q", name)
		}
	}
	return st, nil
}
