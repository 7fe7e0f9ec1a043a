package player

import (
	"math/rand"

	"github.com/ratel-online/hotseat/uno/card/color"
	"github.com/ratel-online/hotseat/uno/game"
)

type naivePlayer struct {
	basicPlayer
	rng *rand.Rand
}

// NewNaivePlayer plays its first playable card and picks colours at random.
func NewNaivePlayer(name string, rng *rand.Rand) game.Player {
	return naivePlayer{basicPlayer: basicPlayer{name: name}, rng: rng}
}

func (p naivePlayer) PickColor(game.View) (color.Color, error) {
	return color.All[p.rng.Intn(len(color.All))], nil
}

func (p naivePlayer) Decide(view game.View) (game.Decision, error) {
	if len(view.PlayableCards) == 0 {
		return game.Decision{Kind: game.DecisionDraw}, nil
	}

	move := game.Move{Card: view.PlayableCards[0]}
	if move.Card.IsWild() {
		move.Color, _ = p.PickColor(view)
	}
	return game.Decision{Kind: game.DecisionPlay, Move: move}, nil
}
