package ui

import (
	"fmt"
	"strings"

	"github.com/ratel-online/hotseat/uno/card"
	"github.com/ratel-online/hotseat/uno/card/color"
	"github.com/ratel-online/hotseat/uno/game"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) CardsInHand(hand []card.Card) string {
	var lines []string
	for i, c := range hand {
		lines = append(lines, fmt.Sprintf("  %d) %s", i+1, c))
	}
	return strings.Join(lines, "\n")
}

func (m MessageWriter) FirstCardPlayed(c card.Card) string {
	return fmt.Sprintf("First card is %s", c)
}

func (m MessageWriter) HandOff(playerName string) string {
	return fmt.Sprintf("Pass the device to %s and press Enter when ready.", playerName)
}

func (m MessageWriter) HumanPlayerDrewCards(cards []card.Card) string {
	codes := make([]string, len(cards))
	for i, c := range cards {
		codes[i] = c.String()
	}
	return fmt.Sprintf("You drew %s!", strings.Join(codes, ", "))
}

func (m MessageWriter) HumanPlayerHasNoMatchingCardsInHand(playerName string, top card.Card) string {
	return fmt.Sprintf("%s, none of your cards match %s! Draw a card.", playerName, top)
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return fmt.Sprintf("It's your turn, %s!", playerName)
}

func (m MessageWriter) NoCardsAvailable() string {
	return "There are no cards left to draw, you have to play a card."
}

func (m MessageWriter) NoMovesLeft(playerName string) string {
	return fmt.Sprintf("%s can neither play nor draw and passes.", playerName)
}

func (m MessageWriter) PlayerCount() string {
	return fmt.Sprintf("How many players (%d-%d)?", game.MinPlayers, game.MaxPlayers)
}

func (m MessageWriter) PlayerDrewCards(playerName string, cards []card.Card) string {
	if len(cards) == 1 {
		return fmt.Sprintf("%s drew a card!", playerName)
	}
	return fmt.Sprintf("%s drew %d cards!", playerName, len(cards))
}

func (m MessageWriter) PlayerPickedColor(playerName string, c color.Color) string {
	return fmt.Sprintf("%s picked color %s!", playerName, c)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, c card.Card) string {
	return fmt.Sprintf("%s played %s!", playerName, c)
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return fmt.Sprintf("%s's turn skipped!", playerName)
}

func (m MessageWriter) Rejected(reason error) string {
	return fmt.Sprintf("Not allowed: %v", reason)
}

func (m MessageWriter) Reshuffled(cards int) string {
	return fmt.Sprintf("Draw pile was empty, %d cards shuffled back in.", cards)
}

func (m MessageWriter) StartingColor(playerName string) string {
	return fmt.Sprintf("The first card is wild, %s picks the color.", playerName)
}

func (m MessageWriter) ThreeCardsLeft(playerName string) string {
	return fmt.Sprintf("%s has only three cards left!", playerName)
}

func (m MessageWriter) TurnCommand() string {
	return "Enter a card code or its number, 'draw' to draw a card or 'quit' to leave:"
}

func (m MessageWriter) TurnOrderReversed() string {
	return "Turn order has been reversed!"
}

func (m MessageWriter) Welcome() string {
	return fmt.Sprintf(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return fmt.Sprintf("%s wins!", playerName)
}
