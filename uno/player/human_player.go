package player

import (
	"github.com/ratel-online/hotseat/uno/card/color"
	"github.com/ratel-online/hotseat/uno/game"
	"github.com/ratel-online/hotseat/uno/ui"
)

type humanPlayer struct {
	basicPlayer
	console ui.Console
}

// NewHumanPlayer asks for every decision on console.
func NewHumanPlayer(name string, console ui.Console) game.Player {
	return humanPlayer{basicPlayer: basicPlayer{name: name}, console: console}
}

func (p humanPlayer) PickColor(game.View) (color.Color, error) {
	return ui.PromptColor(p.console)
}

func (p humanPlayer) Decide(view game.View) (game.Decision, error) {
	messages := []string{
		ui.Message.HumanPlayerTurnStarted(p.name),
		view.String(),
		ui.Message.CardsInHand(view.Hand),
	}
	if len(view.PlayableCards) == 0 {
		messages = append(messages, ui.Message.HumanPlayerHasNoMatchingCardsInHand(p.name, view.Top))
	}
	if err := ui.Displays(p.console, messages...); err != nil {
		return game.Decision{}, err
	}

	command, err := ui.PromptCommand(p.console, ui.Message.TurnCommand(), view.Hand)
	if err != nil {
		return game.Decision{}, err
	}

	switch command.Kind {
	case ui.CommandDraw:
		return game.Decision{Kind: game.DecisionDraw}, nil
	case ui.CommandQuit:
		return game.Decision{Kind: game.DecisionQuit}, nil
	}

	move := game.Move{Card: command.Card, Color: command.Color}
	if move.Card.IsWild() && move.Color == color.None {
		if move.Color, err = p.PickColor(view); err != nil {
			return game.Decision{}, err
		}
	}
	return game.Decision{Kind: game.DecisionPlay, Move: move}, nil
}

func (p humanPlayer) Rejected(_ game.Decision, reason error) {
	if game.IsNoCards(reason) {
		_ = p.console.Display(ui.Message.NoCardsAvailable())
		return
	}
	_ = p.console.Display(ui.Message.Rejected(reason))
}
