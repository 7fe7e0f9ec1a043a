package ui

import (
	"errors"
	"fmt"

	"github.com/ratel-online/hotseat/uno/card"
	"github.com/ratel-online/hotseat/uno/card/color"
)

// prompt asks until parse accepts the answer. Invalid answers are shown to
// the player; console errors end the loop.
func prompt[T any](console Console, message string, parse func(string) (T, error)) (T, error) {
	for {
		input, err := console.RequestText(message)
		if err != nil {
			var zero T
			return zero, err
		}
		value, err := parse(input)
		var invalidInput *InvalidInputError
		if errors.As(err, &invalidInput) {
			if err := console.Display(invalidInput.Error()); err != nil {
				var zero T
				return zero, err
			}
			continue
		}
		return value, err
	}
}

func PromptCommand(console Console, message string, hand []card.Card) (Command, error) {
	return prompt(console, message, func(input string) (Command, error) {
		return ParseCommand(input, hand)
	})
}

func PromptColor(console Console) (color.Color, error) {
	colorMessage := fmt.Sprintf(
		"Select a color: '%s', '%s', '%s' or '%s'?",
		color.Red,
		color.Yellow,
		color.Green,
		color.Blue,
	)
	return prompt(console, colorMessage, ParseColor)
}

func PromptIntegerInRange(console Console, minimum int, maximum int, message string) (int, error) {
	return prompt(console, message, func(input string) (int, error) {
		return ParseIntInRange(input, minimum, maximum)
	})
}

// WaitForEnter blocks until the player confirms with any line.
func WaitForEnter(console Console, message string) error {
	_, err := console.RequestText(message)
	return err
}
