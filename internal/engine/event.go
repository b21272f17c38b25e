package engine

// Event fans a signal out to its listeners, synchronously and in the order
// they were added.
type Event struct {
	listeners []func()
}

// AddListener registers fn. A nil fn is ignored.
func (e *Event) AddListener(fn func()) {
	if fn != nil {
		e.listeners = append(e.listeners, fn)
	}
}

func (e *Event) Invoke() {
	for _, fn := range e.listeners {
		fn()
	}
}

// EventWithArg is an Event that hands one value to every listener.
type EventWithArg[T any] struct {
	listeners []func(T)
}

// AddListener registers fn. A nil fn is ignored.
func (e *EventWithArg[T]) AddListener(fn func(T)) {
	if fn != nil {
		e.listeners = append(e.listeners, fn)
	}
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, fn := range e.listeners {
		fn(arg)
	}
}
