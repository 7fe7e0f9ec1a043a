package player

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/hotseat/uno/card/color"
	"github.com/ratel-online/hotseat/uno/game"
)

type basicPlayer struct {
	name string
}

func (p basicPlayer) Name() string {
	return p.name
}

func (p basicPlayer) Rejected(decision game.Decision, reason error) {
	log.Errorf("%s: decision %v rejected: %v\n", p.name, decision, reason)
}

// mostFrequentColor counts wilds towards every colour; ties go to the first
// colour in color.All.
func mostFrequentColor(view game.View) color.Color {
	colorCounts := make(map[color.Color]int)
	for _, c := range view.Hand {
		if c.IsWild() {
			for _, each := range color.All {
				colorCounts[each]++
			}
			continue
		}
		colorCounts[c.Color]++
	}

	mostFrequent := color.Blue
	mostFrequentAmount := 0
	for _, each := range color.All {
		if colorCounts[each] > mostFrequentAmount {
			mostFrequentAmount = colorCounts[each]
			mostFrequent = each
		}
	}
	return mostFrequent
}
