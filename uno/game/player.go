package game

import (
	"github.com/ratel-online/hotseat/uno/card"
	"github.com/ratel-online/hotseat/uno/card/color"
)

// Move is a card from the acting player's hand. Color is the nomination for
// a wild and is ignored for every other card.
type Move struct {
	Card  card.Card
	Color color.Color
}

type DecisionKind int

const (
	DecisionPlay DecisionKind = iota + 1
	DecisionDraw
	DecisionPass
	DecisionQuit
)

type Decision struct {
	Kind DecisionKind
	Move Move
}

// Player sits at one seat and decides its turns from what that seat can see.
type Player interface {
	Name() string
	PickColor(view View) (color.Color, error)
	Decide(view View) (Decision, error)
	// Rejected is called when the engine refused the player's last decision.
	Rejected(decision Decision, reason error)
}
