package card

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ratel-online/hotseat/uno/card/action"
	"github.com/ratel-online/hotseat/uno/card/color"
)

type Kind int

const (
	Number Kind = iota
	Skip
	Reverse
	DrawTwo
	Wild
	WildDrawFour
)

var ErrUnknownCard = errors.New("unknown card")

// Card is immutable; only its position in a hand or pile changes. Wilds have
// no Color and carry the colour nominated by their player in Chosen once
// they are on the discard pile.
type Card struct {
	Kind   Kind
	Color  color.Color
	Number int
	Chosen color.Color
}

func NewNumberCard(c color.Color, number int) Card {
	return Card{Kind: Number, Color: c, Number: number}
}

func NewSkipCard(c color.Color) Card {
	return Card{Kind: Skip, Color: c}
}

func NewReverseCard(c color.Color) Card {
	return Card{Kind: Reverse, Color: c}
}

func NewDrawTwoCard(c color.Color) Card {
	return Card{Kind: DrawTwo, Color: c}
}

func NewWildCard() Card {
	return Card{Kind: Wild}
}

func NewWildDrawFourCard() Card {
	return Card{Kind: WildDrawFour}
}

func (c Card) IsWild() bool {
	return c.Kind == Wild || c.Kind == WildDrawFour
}

// ActiveColor is the colour the next card has to match.
func (c Card) ActiveColor() color.Color {
	if c.IsWild() {
		return c.Chosen
	}
	return c.Color
}

// WithColor returns the wild carrying the nominated colour. Non-wild cards
// are returned unchanged.
func (c Card) WithColor(chosen color.Color) Card {
	if !c.IsWild() {
		return c
	}
	c.Chosen = chosen
	return c
}

// Plain strips a nominated colour, giving back the card as it sits in a deck.
func (c Card) Plain() Card {
	c.Chosen = color.None
	return c
}

func (c Card) Equal(other Card) bool {
	return c.Plain() == other.Plain()
}

// SameFace reports whether both cards show the same number or the same
// action symbol, regardless of colour.
func (c Card) SameFace(other Card) bool {
	if c.Kind != other.Kind {
		return false
	}
	return c.Kind != Number || c.Number == other.Number
}

func (c Card) Actions() []action.Action {
	switch c.Kind {
	case Skip:
		return []action.Action{action.NewSkipTurnAction()}
	case Reverse:
		return []action.Action{action.NewReverseTurnsAction()}
	case DrawTwo:
		return []action.Action{
			action.NewSkipTurnAction(),
			action.NewDrawCardsAction(2),
		}
	case Wild:
		return []action.Action{action.NewPickColorAction()}
	case WildDrawFour:
		return []action.Action{
			action.NewPickColorAction(),
			action.NewSkipTurnAction(),
			action.NewDrawCardsAction(4),
		}
	default:
		return []action.Action{}
	}
}

func (c Card) face() string {
	switch c.Kind {
	case Skip:
		return "S"
	case Reverse:
		return "R"
	case DrawTwo:
		return "+2"
	case Wild:
		return "WILD"
	case WildDrawFour:
		return "WILD+4"
	default:
		return fmt.Sprintf("%d", c.Number)
	}
}

// Code is the unpainted name players type to play the card.
func (c Card) Code() string {
	if c.IsWild() {
		if c.Chosen != color.None {
			return fmt.Sprintf("%s(%s)", c.face(), c.Chosen.Code())
		}
		return c.face()
	}
	return c.Color.Code() + c.face()
}

func (c Card) String() string {
	if c.IsWild() && c.Chosen == color.None {
		return c.Code()
	}
	return c.ActiveColor().Paint(c.Code())
}

var faces = map[string]Card{
	"S":       {Kind: Skip},
	"SKIP":    {Kind: Skip},
	"R":       {Kind: Reverse},
	"REV":     {Kind: Reverse},
	"REVERSE": {Kind: Reverse},
	"+2":      {Kind: DrawTwo},
	"D":       {Kind: DrawTwo},
	"D2":      {Kind: DrawTwo},
	"DRAW2":   {Kind: DrawTwo},
	"DRAWTWO": {Kind: DrawTwo},
}

var wilds = map[string]Card{
	"W":            NewWildCard(),
	"WILD":         NewWildCard(),
	"W4":           NewWildDrawFourCard(),
	"W+4":          NewWildDrawFourCard(),
	"+4":           NewWildDrawFourCard(),
	"WILD4":        NewWildDrawFourCard(),
	"WILD+4":       NewWildDrawFourCard(),
	"WILDDRAW4":    NewWildDrawFourCard(),
	"WILDDRAWFOUR": NewWildDrawFourCard(),
}

// Parse reads a card code such as "R5", "gs", "B+2" or "wild+4".
func Parse(code string) (Card, error) {
	normalized := strings.ToUpper(strings.Join(strings.Fields(code), ""))
	if wild, ok := wilds[normalized]; ok {
		return wild, nil
	}
	if len(normalized) < 2 {
		return Card{}, fmt.Errorf("%w: '%s'", ErrUnknownCard, code)
	}

	cardColor, err := color.ByName(normalized[:1])
	if err != nil {
		return Card{}, fmt.Errorf("%w: '%s'", ErrUnknownCard, code)
	}

	rest := normalized[1:]
	if len(rest) == 1 && rest[0] >= '0' && rest[0] <= '9' {
		return NewNumberCard(cardColor, int(rest[0]-'0')), nil
	}
	if face, ok := faces[rest]; ok {
		face.Color = cardColor
		return face, nil
	}
	return Card{}, fmt.Errorf("%w: '%s'", ErrUnknownCard, code)
}
