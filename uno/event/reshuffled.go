package event

type ReshuffledPayload struct {
	// Cards is the size of the new draw pile.
	Cards int
}

type ReshuffledListener interface {
	OnReshuffled(ReshuffledPayload)
}

type reshuffledEmitter struct {
	listeners []ReshuffledListener
}

func (e *reshuffledEmitter) AddListener(listener ReshuffledListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *reshuffledEmitter) Emit(payload ReshuffledPayload) {
	for _, listener := range e.listeners {
		listener.OnReshuffled(payload)
	}
}
