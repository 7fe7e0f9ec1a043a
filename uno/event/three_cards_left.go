package event

type ThreeCardsLeftPayload struct {
	PlayerName string
}

type ThreeCardsLeftListener interface {
	OnThreeCardsLeft(ThreeCardsLeftPayload)
}

type threeCardsLeftEmitter struct {
	listeners []ThreeCardsLeftListener
}

func (e *threeCardsLeftEmitter) AddListener(listener ThreeCardsLeftListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *threeCardsLeftEmitter) Emit(payload ThreeCardsLeftPayload) {
	for _, listener := range e.listeners {
		listener.OnThreeCardsLeft(payload)
	}
}
