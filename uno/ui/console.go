package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ratel-online/core/util/async"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_console.go github.com/ratel-online/hotseat/uno/ui Console

var ErrCancelled = errors.New("input cancelled")

// Console is all the game needs from a terminal: reading a line of text and
// showing a message.
type Console interface {
	// RequestText shows prompt and blocks until a line is entered. It returns
	// ErrCancelled when the input is closed or the player types exit.
	RequestText(prompt string) (string, error)
	Display(message string) error
}

type Terminal struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (t *Terminal) RequestText(prompt string) (string, error) {
	if prompt != "" {
		if _, err := fmt.Fprintln(t.out, prompt); err != nil {
			return "", err
		}
	}
	if _, err := fmt.Fprint(t.out, "> "); err != nil {
		return "", err
	}

	line, err := t.reader.ReadString('\n')
	if errors.Is(err, io.EOF) && line == "" {
		return "", ErrCancelled
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line = strings.TrimSpace(line)
	if strings.EqualFold(line, "exit") {
		return "", ErrCancelled
	}
	return line, nil
}

func (t *Terminal) Display(message string) error {
	_, err := fmt.Fprintln(t.out, message)
	return err
}

type contextConsole struct {
	Console
	ctx context.Context
}

type reply struct {
	text string
	err  error
}

// WithContext stops waiting for input with ErrCancelled once ctx is done. The
// pending read on console is abandoned.
func WithContext(ctx context.Context, console Console) Console {
	return contextConsole{Console: console, ctx: ctx}
}

func (c contextConsole) RequestText(prompt string) (string, error) {
	if c.ctx.Err() != nil {
		return "", ErrCancelled
	}
	replies := make(chan reply, 1)
	async.Async(func() {
		text, err := c.Console.RequestText(prompt)
		replies <- reply{text: text, err: err}
	})
	select {
	case r := <-replies:
		return r.text, r.err
	case <-c.ctx.Done():
		return "", ErrCancelled
	}
}
