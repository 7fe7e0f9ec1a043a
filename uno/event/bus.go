package event

// Bus groups the emitters of a single game. Every game owns its own bus so
// listeners never leak between sessions.
type Bus struct {
	FirstCardPlayed   *firstCardPlayedEmitter
	CardPlayed        *cardPlayedEmitter
	ColorPicked       *colorPickedEmitter
	CardsDrawn        *cardsDrawnEmitter
	Reshuffled        *reshuffledEmitter
	ThreeCardsLeft    *threeCardsLeftEmitter
	WinnerFound       *winnerFoundEmitter
	TurnSkipped       *turnSkippedEmitter
	TurnOrderReversed *turnOrderReversedEmitter
	PlayerPassed      *playerPassedEmitter
}

func NewBus() *Bus {
	return &Bus{
		FirstCardPlayed:   &firstCardPlayedEmitter{},
		CardPlayed:        &cardPlayedEmitter{},
		ColorPicked:       &colorPickedEmitter{},
		CardsDrawn:        &cardsDrawnEmitter{},
		Reshuffled:        &reshuffledEmitter{},
		ThreeCardsLeft:    &threeCardsLeftEmitter{},
		WinnerFound:       &winnerFoundEmitter{},
		TurnSkipped:       &turnSkippedEmitter{},
		TurnOrderReversed: &turnOrderReversedEmitter{},
		PlayerPassed:      &playerPassedEmitter{},
	}
}

// Subscribe adds listener to every emitter whose listener interface it
// implements.
func (b *Bus) Subscribe(listener interface{}) {
	if l, ok := listener.(FirstCardPlayedListener); ok {
		b.FirstCardPlayed.AddListener(l)
	}
	if l, ok := listener.(CardPlayedListener); ok {
		b.CardPlayed.AddListener(l)
	}
	if l, ok := listener.(ColorPickedListener); ok {
		b.ColorPicked.AddListener(l)
	}
	if l, ok := listener.(CardsDrawnListener); ok {
		b.CardsDrawn.AddListener(l)
	}
	if l, ok := listener.(ReshuffledListener); ok {
		b.Reshuffled.AddListener(l)
	}
	if l, ok := listener.(ThreeCardsLeftListener); ok {
		b.ThreeCardsLeft.AddListener(l)
	}
	if l, ok := listener.(WinnerFoundListener); ok {
		b.WinnerFound.AddListener(l)
	}
	if l, ok := listener.(TurnSkippedListener); ok {
		b.TurnSkipped.AddListener(l)
	}
	if l, ok := listener.(TurnOrderReversedListener); ok {
		b.TurnOrderReversed.AddListener(l)
	}
	if l, ok := listener.(PlayerPassedListener); ok {
		b.PlayerPassed.AddListener(l)
	}
}
