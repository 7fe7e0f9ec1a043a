package game

import (
	"github.com/ratel-online/hotseat/uno/card"
)

// Pile is the discard pile; its last card is the top.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(c card.Card) {
	p.cards = append(p.cards, c)
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) ReplaceTop(c card.Card) {
	p.cards[len(p.cards)-1] = c
}

func (p *Pile) Top() (card.Card, bool) {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return card.Card{}, false
	}
	return p.cards[pileSize-1], true
}

func (p *Pile) Size() int {
	return len(p.cards)
}

// TakeAllButTop empties the pile except for its top and returns the removed
// cards with any nominated wild colours cleared.
func (p *Pile) TakeAllButTop() []card.Card {
	if len(p.cards) <= 1 {
		return nil
	}
	top := p.cards[len(p.cards)-1]
	taken := make([]card.Card, 0, len(p.cards)-1)
	for _, c := range p.cards[:len(p.cards)-1] {
		taken = append(taken, c.Plain())
	}
	p.cards = append(p.cards[:0], top)
	return taken
}
