package event

type DummyListener struct {
	receivedPayloads []interface{}
}

func NewDummyListener() *DummyListener {
	return &DummyListener{receivedPayloads: make([]interface{}, 0)}
}

func (l *DummyListener) ReceivedPayloads() []interface{} {
	return l.receivedPayloads
}

func (l *DummyListener) record(payload interface{}) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnFirstCardPlayed(payload FirstCardPlayedPayload) { l.record(payload) }

func (l *DummyListener) OnCardPlayed(payload CardPlayedPayload) { l.record(payload) }

func (l *DummyListener) OnColorPicked(payload ColorPickedPayload) { l.record(payload) }

func (l *DummyListener) OnCardsDrawn(payload CardsDrawnPayload) { l.record(payload) }

func (l *DummyListener) OnReshuffled(payload ReshuffledPayload) { l.record(payload) }

func (l *DummyListener) OnThreeCardsLeft(payload ThreeCardsLeftPayload) { l.record(payload) }

func (l *DummyListener) OnWinnerFound(payload WinnerFoundPayload) { l.record(payload) }

func (l *DummyListener) OnTurnSkipped(payload TurnSkippedPayload) { l.record(payload) }

func (l *DummyListener) OnTurnOrderReversed(payload TurnOrderReversedPayload) { l.record(payload) }

func (l *DummyListener) OnPlayerPassed(payload PlayerPassedPayload) { l.record(payload) }
