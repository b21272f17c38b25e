package input

// Script replays a fixed sequence of states, then reports idle input.
type Script struct {
	frames []State
	next   int
}

func NewScript(frames ...State) *Script {
	return &Script{frames: frames}
}

// Hold returns a script that holds base for the given number of frames and
// additionally presses jump on every jumpEvery-th frame (0 disables).
func Hold(base State, frames, jumpEvery int) *Script {
	states := make([]State, frames)
	for i := range states {
		states[i] = base
		if jumpEvery > 0 && (i+1)%jumpEvery == 0 {
			states[i].Jump = true
		}
	}
	return NewScript(states...)
}

func (s *Script) Poll() State {
	if s.next >= len(s.frames) {
		return State{}
	}
	st := s.frames[s.next]
	s.next++
	return st
}

// Remaining returns how many scripted frames are left.
func (s *Script) Remaining() int {
	return len(s.frames) - s.next
}
