package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ratel-online/hotseat/uno/card"
	"github.com/ratel-online/hotseat/uno/card/color"
)

type CommandKind int

const (
	CommandPlay CommandKind = iota + 1
	CommandDraw
	CommandQuit
)

// Command is a parsed turn input. Color is only set when a wild was entered
// together with its colour, as in "wild red".
type Command struct {
	Kind  CommandKind
	Card  card.Card
	Color color.Color
}

type InvalidInputError struct {
	Input  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input '%s': %s", e.Input, e.Reason)
}

func invalid(input string, format string, args ...interface{}) *InvalidInputError {
	return &InvalidInputError{Input: input, Reason: fmt.Sprintf(format, args...)}
}

// ParseCommand reads a turn input: draw, quit, a card code or the number of a
// card in hand.
func ParseCommand(input string, hand []card.Card) (Command, error) {
	trimmed := strings.TrimSpace(input)
	switch strings.ToLower(trimmed) {
	case "":
		return Command{}, invalid(input, "nothing entered")
	case "draw", "d":
		return Command{Kind: CommandDraw}, nil
	case "quit", "q":
		return Command{Kind: CommandQuit}, nil
	}

	if number, err := strconv.Atoi(trimmed); err == nil {
		if number < 1 || number > len(hand) {
			return Command{}, invalid(input, "choose a card between 1 and %d", len(hand))
		}
		return Command{Kind: CommandPlay, Card: hand[number-1]}, nil
	}

	fields := strings.Fields(trimmed)
	if len(fields) > 1 {
		chosen, colorErr := color.ByName(fields[len(fields)-1])
		wild, cardErr := card.Parse(strings.Join(fields[:len(fields)-1], ""))
		if colorErr == nil && cardErr == nil && wild.IsWild() {
			return Command{Kind: CommandPlay, Card: wild, Color: chosen}, nil
		}
	}

	parsed, err := card.Parse(trimmed)
	if err != nil {
		return Command{}, invalid(input, "not a card, draw or quit")
	}
	return Command{Kind: CommandPlay, Card: parsed}, nil
}

func ParseColor(input string) (color.Color, error) {
	chosen, err := color.ByName(input)
	if err != nil {
		return color.None, invalid(input, "pick red, yellow, green or blue")
	}
	return chosen, nil
}

func ParseIntInRange(input string, minimum int, maximum int) (int, error) {
	number, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, invalid(input, "not a number")
	}
	if number < minimum || number > maximum {
		return 0, invalid(input, "out of range (minimum: %d, maximum: %d)", minimum, maximum)
	}
	return number, nil
}
