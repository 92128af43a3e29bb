package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type Color interface {
	Name() string
	Paint(string) string
	Paintf(string, ...interface{}) string
	String() string
}

type colorStruct struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

func (c *colorStruct) Name() string {
	return c.name
}

func (c *colorStruct) Paint(text string) string {
	return c.colorFunction("%s", text)
}

func (c *colorStruct) Paintf(format string, args ...interface{}) string {
	return c.colorFunction(format, args...)
}

func (c *colorStruct) String() string {
	return c.Paint(c.name)
}

var Red = &colorStruct{
	name:          "red",
	colorFunction: color.New(color.FgHiRed).SprintfFunc(),
}

var Blue = &colorStruct{
	name:          "blue",
	colorFunction: color.New(color.FgHiCyan).SprintfFunc(),
}

var Green = &colorStruct{
	name:          "green",
	colorFunction: color.New(color.FgHiGreen).SprintfFunc(),
}

var Yellow = &colorStruct{
	name:          "yellow",
	colorFunction: color.New(color.FgHiYellow).SprintfFunc(),
}

// Wild is the printed color of wild and wild-draw-four cards. It is never an
// active color.
var Wild = &colorStruct{
	name:          "wild",
	colorFunction: color.New(color.FgHiMagenta, color.Bold).SprintfFunc(),
}

// Base lists the four colors a player can pick, in deck enumeration order.
var Base = []Color{Red, Blue, Green, Yellow}

var Stdout io.Writer = color.Output

// SetEnabled turns terminal escape codes on or off for every color.
func SetEnabled(enabled bool) {
	color.NoColor = !enabled
}

func Enabled() bool {
	return !color.NoColor
}

var colors = map[string]Color{
	Red.name:    Red,
	Blue.name:   Blue,
	Green.name:  Green,
	Yellow.name: Yellow,
}

// ByName resolves one of the base colors. Wild is not a valid pick.
func ByName(name string) (Color, error) {
	color := colors[strings.ToLower(strings.TrimSpace(name))]
	if color == nil {
		return nil, fmt.Errorf("invalid color '%s'", name)
	}
	return color, nil
}

// IsBase reports whether c can serve as the active color.
func IsBase(c Color) bool {
	if c == nil {
		return false
	}
	return colors[c.Name()] == c
}
