package game

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/ratel-online/hotseat/uno/card"
	"github.com/ratel-online/hotseat/uno/card/color"
)

type Variant string

const (
	// VariantCompact has one of each coloured action per colour: 96 cards.
	VariantCompact Variant = "compact"
	// VariantStandard is the 108 card box deck.
	VariantStandard Variant = "standard"
)

func ParseVariant(name string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(name))) {
	case VariantCompact, "":
		return VariantCompact, nil
	case VariantStandard:
		return VariantStandard, nil
	default:
		return "", fmt.Errorf("%w: '%s'", ErrUnknownVariant, name)
	}
}

// BuildDeck returns the variant's fixed multiset in a uniformly random order.
func BuildDeck(variant Variant, rng *rand.Rand) []card.Card {
	cards := make([]card.Card, 0, 108)

	cards = append(cards, createBlackCards()...)
	for _, cardColor := range color.All {
		cards = append(cards, createColorCards(variant, cardColor)...)
	}

	shuffleCards(cards, rng)
	return cards
}

// Composition counts every distinct card of the variant.
func Composition(variant Variant) map[card.Card]int {
	counts := make(map[card.Card]int)
	for _, c := range createBlackCards() {
		counts[c]++
	}
	for _, cardColor := range color.All {
		for _, c := range createColorCards(variant, cardColor) {
			counts[c]++
		}
	}
	return counts
}

func createColorCards(variant Variant, cardColor color.Color) []card.Card {
	actionCopies := 1
	if variant == VariantStandard {
		actionCopies = 2
	}

	cards := []card.Card{card.NewNumberCard(cardColor, 0)}
	for number := 1; number <= 9; number++ {
		numberCard := card.NewNumberCard(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}
	for i := 0; i < actionCopies; i++ {
		cards = append(cards,
			card.NewSkipCard(cardColor),
			card.NewReverseCard(cardColor),
			card.NewDrawTwoCard(cardColor),
		)
	}
	return cards
}

func createBlackCards() []card.Card {
	wildCard := card.NewWildCard()
	wildDrawFourCard := card.NewWildDrawFourCard()

	return []card.Card{
		wildCard, wildCard, wildCard, wildCard,
		wildDrawFourCard, wildDrawFourCard, wildDrawFourCard, wildDrawFourCard,
	}
}

func shuffleCards(cards []card.Card, rng *rand.Rand) {
	rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}

// Deck is the draw pile. Cards are taken from the front.
type Deck struct {
	cards []card.Card
}

func NewDeck(cards []card.Card) *Deck {
	deck := &Deck{cards: make([]card.Card, len(cards))}
	copy(deck.cards, cards)
	return deck
}

func (d *Deck) DrawOne() (card.Card, error) {
	cards, err := d.Draw(1)
	if err != nil {
		return card.Card{}, err
	}
	return cards[0], nil
}

func (d *Deck) Draw(amount int) ([]card.Card, error) {
	if len(d.cards) < amount {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrDeckEmpty, amount, len(d.cards))
	}
	cards := make([]card.Card, amount)
	copy(cards, d.cards[:amount])
	d.cards = d.cards[amount:]
	return cards, nil
}

// Refill shuffles cards into the bottom of the pile.
func (d *Deck) Refill(cards []card.Card, rng *rand.Rand) {
	shuffleCards(cards, rng)
	d.cards = append(d.cards, cards...)
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) Size() int {
	return len(d.cards)
}
