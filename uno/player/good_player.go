package player

import (
	"github.com/ratel-online/hotseat/uno/card"
	"github.com/ratel-online/hotseat/uno/card/color"
	"github.com/ratel-online/hotseat/uno/game"
)

type goodPlayer struct {
	basicPlayer
}

// NewGoodPlayer plays the card that leaves the most follow-up plays in hand
// and nominates the colour it holds most of.
func NewGoodPlayer(name string) game.Player {
	return goodPlayer{basicPlayer: basicPlayer{name: name}}
}

func (p goodPlayer) PickColor(view game.View) (color.Color, error) {
	return mostFrequentColor(view), nil
}

func (p goodPlayer) Decide(view game.View) (game.Decision, error) {
	if len(view.PlayableCards) == 0 {
		return game.Decision{Kind: game.DecisionDraw}, nil
	}

	selected := p.mostDiscardableCard(view)
	move := game.Move{Card: selected}
	if selected.IsWild() {
		move.Color = mostFrequentColor(view)
	}
	return game.Decision{Kind: game.DecisionPlay, Move: move}, nil
}

func (p goodPlayer) mostDiscardableCard(view game.View) card.Card {
	mostDiscardableCardIndex := 0
	maxSpareCards := -1

	for cardIndex, playableCard := range view.PlayableCards {
		spareCards := 0
		for _, handCard := range view.Hand {
			if game.Playable(handCard, playableCard) {
				spareCards++
			}
		}
		// keep wilds for when nothing else fits
		if playableCard.IsWild() {
			spareCards = 0
		}
		if spareCards > maxSpareCards {
			maxSpareCards = spareCards
			mostDiscardableCardIndex = cardIndex
		}
	}

	return view.PlayableCards[mostDiscardableCardIndex]
}
