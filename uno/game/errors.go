package game

import (
	"errors"
	"fmt"

	"github.com/ratel-online/hotseat/uno/card"
)

var (
	ErrPlayerCount      = errors.New("player count must be between 2 and 4")
	ErrHandSize         = errors.New("hand size must be positive")
	ErrDeckEmpty        = errors.New("not enough cards in deck")
	ErrNoCardsAvailable = errors.New("no cards available to draw")
	ErrCardNotInHand    = errors.New("card not in hand")
	ErrColorRequired    = errors.New("a color must be chosen")
	ErrColorNotNeeded   = errors.New("no color choice is pending")
	ErrPassNotAllowed   = errors.New("passing is only allowed when nothing can be played or drawn")
	ErrGameOver         = errors.New("game is over")
	ErrUnknownVariant   = errors.New("unknown deck variant")
)

// IllegalPlayError is returned when a card in hand does not match the top
// of the discard pile.
type IllegalPlayError struct {
	Card card.Card
	Top  card.Card
}

func (e *IllegalPlayError) Error() string {
	return fmt.Sprintf("%s cannot be played on %s", e.Card.Code(), e.Top.Code())
}
