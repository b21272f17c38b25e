package components

import "platformer/internal/engine"

// Lifetime counts simulated time down and fires OnExpire once when it
// reaches zero.
type Lifetime struct {
	engine.BaseComponent
	Remaining float32
	OnExpire  engine.Event

	expired bool
}

func NewLifetime(seconds float32) *Lifetime {
	return &Lifetime{Remaining: seconds}
}

func (l *Lifetime) Expired() bool {
	return l.expired
}

func (l *Lifetime) Update(deltaTime float32) {
	if l.expired {
		return
	}
	l.Remaining -= deltaTime
	if l.Remaining <= 0 {
		l.Remaining = 0
		l.expired = true
		l.OnExpire.Invoke()
	}
}
