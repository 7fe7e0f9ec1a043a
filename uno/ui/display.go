package ui

import "strings"

const clearSequence = "\033[H\033[2J"

// ClearScreen wipes the terminal so the next player cannot see the previous
// hand. Consoles that ignore escape sequences get enough blank lines to push
// it out of view.
func ClearScreen(console Console) error {
	return console.Display(clearSequence + strings.Repeat("\n", 40))
}

func Displays(console Console, messages ...string) error {
	for _, message := range messages {
		if err := console.Display(message); err != nil {
			return err
		}
	}
	return nil
}
