package game

import (
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/event"
)

// Outcome reports the effects of one accepted move.
type Outcome struct {
	Player *Player

	Card  card.Card
	Color color.Color

	Drawn         card.Card
	DrawnPlayable bool
	Passed        bool

	Reversed     bool
	Skipped      *Player
	Penalized    *Player
	PenaltyCards []card.Card
	Recycled     int

	Winner *Player
	// Next is the seat to act, nil once the round is over.
	Next        *Player
	ActiveColor color.Color
	Direction   int

	Events []event.Event
}

func (o Outcome) Over() bool {
	return o.Winner != nil
}
