package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/hotseat/uno/card"
	"github.com/ratel-online/hotseat/uno/card/color"
)

// State is everything a running game consists of. The engine mutates it in
// place; nothing else holds game data.
type State struct {
	Draw    *Deck
	Discard *Pile
	Hands   []*Hand
	Order   *Cycler
	Winner  int
	Over    bool
	Turns   int
}

func (s *State) Current() int {
	return s.Order.Current()
}

func (s *State) Top() card.Card {
	top, _ := s.Discard.Top()
	return top
}

// CardCount is the number of cards across draw pile, discard pile and hands.
func (s *State) CardCount() int {
	count := s.Draw.Size() + s.Discard.Size()
	for _, hand := range s.Hands {
		count += hand.Size()
	}
	return count
}

// View is what a single seat is allowed to see: its own hand and only the
// sizes of everybody else's.
type View struct {
	Seat          int
	PlayerNames   []string
	Current       int
	Top           card.Card
	ActiveColor   color.Color
	Hand          []card.Card
	PlayableCards []card.Card
	HandCounts    []int
	DrawPileSize  int
	Over          bool
	Winner        int
}

func (v View) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Top card: %s", v.Top))
	if v.Top.IsWild() {
		lines = append(lines, fmt.Sprintf("Active color: %s", v.ActiveColor))
	}

	var playerStatuses []string
	for seat, playerName := range v.PlayerNames {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, v.HandCounts[seat])
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Players: %s", strings.Join(playerStatuses, ", ")))
	lines = append(lines, fmt.Sprintf("Draw pile: %d card(s)", v.DrawPileSize))
	lines = append(lines, fmt.Sprintf("Your hand: %s", v.Hand))

	return strings.Join(lines, "\n")
}
