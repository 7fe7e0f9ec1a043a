package game

import (
	"github.com/ratel-online/hotseat/uno/card"
	"github.com/ratel-online/hotseat/uno/card/color"
)

// IsValid decides whether candidate may be placed on top. Wilds are always
// legal once a colour is chosen and come back carrying it as the new top;
// any other card must share the top's active colour or its face.
func IsValid(candidate card.Card, top card.Card, chosen color.Color) (bool, card.Card) {
	if candidate.IsWild() {
		if chosen == color.None {
			return false, top
		}
		return true, candidate.Plain().WithColor(chosen)
	}
	if Playable(candidate, top) {
		return true, candidate
	}
	return false, top
}

// Playable is IsValid without the colour nomination a wild needs.
func Playable(candidate card.Card, top card.Card) bool {
	if candidate.IsWild() {
		return true
	}
	if candidate.Color == top.ActiveColor() {
		return true
	}
	return candidate.SameFace(top)
}
