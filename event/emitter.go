package event

type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) {
	f(e)
}

// Emitter fans events out to the listeners of a single round.
type Emitter struct {
	listeners []Listener
}

func NewEmitter(listeners ...Listener) *Emitter {
	return &Emitter{listeners: listeners}
}

func (e *Emitter) AddListener(listener Listener) {
	e.listeners = append(e.listeners, listener)
}

func (e *Emitter) Emit(events ...Event) {
	for _, payload := range events {
		for _, listener := range e.listeners {
			listener.OnEvent(payload)
		}
	}
}
