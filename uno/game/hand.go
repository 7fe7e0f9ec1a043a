package game

import (
	"fmt"

	"github.com/ratel-online/hotseat/uno/card"
)

const (
	MinPlayers      = 2
	MaxPlayers      = 4
	DefaultHandSize = 7
)

type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, DefaultHandSize)}
}

// Deal gives each of playerCount players handSize consecutive cards from the
// front of deck. What remains in deck is the draw pile.
func Deal(deck *Deck, playerCount int, handSize int) ([]*Hand, error) {
	if playerCount < MinPlayers || playerCount > MaxPlayers {
		return nil, fmt.Errorf("%w: got %d", ErrPlayerCount, playerCount)
	}
	if handSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrHandSize, handSize)
	}
	if deck.Size() < playerCount*handSize {
		return nil, fmt.Errorf("%w: dealing %d hands of %d from %d cards", ErrDeckEmpty, playerCount, handSize, deck.Size())
	}

	hands := make([]*Hand, 0, playerCount)
	for i := 0; i < playerCount; i++ {
		cards, err := deck.Draw(handSize)
		if err != nil {
			return nil, err
		}
		hand := NewHand()
		hand.AddCards(cards)
		hands = append(hands, hand)
	}
	return hands, nil
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Contains(searched card.Card) bool {
	for _, cardInHand := range h.cards {
		if cardInHand.Equal(searched) {
			return true
		}
	}
	return false
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) PlayableCards(top card.Card) []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range h.cards {
		if Playable(candidateCard, top) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}

// RemoveCard takes a single copy of c out of the hand, keeping the order of
// the remaining cards.
func (h *Hand) RemoveCard(c card.Card) bool {
	for index, cardInHand := range h.cards {
		if cardInHand.Equal(c) {
			h.cards = append(h.cards[:index], h.cards[index+1:]...)
			return true
		}
	}
	return false
}

func (h *Hand) Size() int {
	return len(h.cards)
}
