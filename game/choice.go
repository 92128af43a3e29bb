package game

import "github.com/ratel-online/uno/card/color"

// Move is what the shell submits for the seat to act: PlayChoice, DrawChoice
// or PassChoice.
type Move interface {
	move()
}

// PlayChoice selects a card by its index in LegalPlaysForCurrent.
type PlayChoice struct {
	Index int
}

type DrawChoice struct{}

// PassChoice keeps a playable card that was just drawn and ends the turn.
type PassChoice struct{}

func (PlayChoice) move() {}
func (DrawChoice) move() {}
func (PassChoice) move() {}

// ColorChoice is the color named when a wild card is played. It is ignored for
// every other card.
type ColorChoice struct {
	Color color.Color
}

func NoColor() ColorChoice {
	return ColorChoice{}
}

func PickColor(c color.Color) ColorChoice {
	return ColorChoice{Color: c}
}
