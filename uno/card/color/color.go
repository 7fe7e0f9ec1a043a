package color

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

type Color int

const (
	None Color = iota
	Red
	Yellow
	Green
	Blue
)

var All = []Color{Red, Yellow, Green, Blue}

type attributes struct {
	name          string
	code          string
	colorFunction func(string, ...interface{}) string
}

var palette = map[Color]attributes{
	Red:    {name: "red", code: "R", colorFunction: color.New(color.FgHiRed).SprintfFunc()},
	Yellow: {name: "yellow", code: "Y", colorFunction: color.New(color.FgHiYellow).SprintfFunc()},
	Green:  {name: "green", code: "G", colorFunction: color.New(color.FgHiGreen).SprintfFunc()},
	Blue:   {name: "blue", code: "B", colorFunction: color.New(color.FgHiCyan).SprintfFunc()},
}

func (c Color) Paint(text string) string {
	attrs, ok := palette[c]
	if !ok {
		return text
	}
	return attrs.colorFunction("%s", text)
}

// Code is the one-letter prefix used in card codes.
func (c Color) Code() string {
	return palette[c].code
}

func (c Color) Name() string {
	if c == None {
		return "none"
	}
	return palette[c].name
}

func (c Color) String() string {
	return c.Paint(c.Name())
}

// ByName accepts a full colour name or its code letter, in any case.
func ByName(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range All {
		attrs := palette[c]
		if name == attrs.name || name == strings.ToLower(attrs.code) {
			return c, nil
		}
	}
	return None, fmt.Errorf("invalid color '%s'", name)
}
