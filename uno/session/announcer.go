package session

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/hotseat/uno/event"
	"github.com/ratel-online/hotseat/uno/ui"
)

// announcer shows every public game event on the shared console.
type announcer struct {
	console ui.Console
}

func (a announcer) display(message string) {
	if err := a.console.Display(message); err != nil {
		log.Error(err)
	}
}

func (a announcer) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	a.display(ui.Message.FirstCardPlayed(payload.Card))
}

func (a announcer) OnCardPlayed(payload event.CardPlayedPayload) {
	a.display(ui.Message.PlayerPlayedCard(payload.PlayerName, payload.Card))
}

func (a announcer) OnColorPicked(payload event.ColorPickedPayload) {
	a.display(ui.Message.PlayerPickedColor(payload.PlayerName, payload.Color))
}

func (a announcer) OnCardsDrawn(payload event.CardsDrawnPayload) {
	a.display(ui.Message.PlayerDrewCards(payload.PlayerName, payload.Cards))
}

func (a announcer) OnReshuffled(payload event.ReshuffledPayload) {
	a.display(ui.Message.Reshuffled(payload.Cards))
}

func (a announcer) OnThreeCardsLeft(payload event.ThreeCardsLeftPayload) {
	a.display(ui.Message.ThreeCardsLeft(payload.PlayerName))
}

func (a announcer) OnWinnerFound(payload event.WinnerFoundPayload) {
	a.display(ui.Message.WinnerFound(payload.PlayerName))
}

func (a announcer) OnTurnSkipped(payload event.TurnSkippedPayload) {
	a.display(ui.Message.PlayerTurnSkipped(payload.PlayerName))
}

func (a announcer) OnTurnOrderReversed(event.TurnOrderReversedPayload) {
	a.display(ui.Message.TurnOrderReversed())
}

func (a announcer) OnPlayerPassed(payload event.PlayerPassedPayload) {
	a.display(ui.Message.NoMovesLeft(payload.PlayerName))
}
