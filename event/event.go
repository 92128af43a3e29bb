package event

import (
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
)

// Event is one thing that happened during a round. The concrete payload types
// below are the only implementations.
type Event interface {
	event()
}

// Seat identifies a player inside an event without pulling in the game package.
type Seat struct {
	Index int
	Name  string
}

type FirstCardPlayedPayload struct {
	Card  card.Card
	Color color.Color
	// Buried holds wild starters that were put back under the deck.
	Buried []card.Card
}

type CardPlayedPayload struct {
	Player Seat
	Card   card.Card
}

type ColorPickedPayload struct {
	Player Seat
	Color  color.Color
}

type TurnSkippedPayload struct {
	Player Seat
}

type TurnOrderReversedPayload struct {
	Direction int
}

type CardsDrawnPayload struct {
	Player  Seat
	Cards   []card.Card
	Penalty bool
}

type PlayerPassedPayload struct {
	Player Seat
}

type DeckRecycledPayload struct {
	Cards int
}

type WinnerFoundPayload struct {
	Player Seat
}

func (FirstCardPlayedPayload) event()   {}
func (CardPlayedPayload) event()        {}
func (ColorPickedPayload) event()       {}
func (TurnSkippedPayload) event()       {}
func (TurnOrderReversedPayload) event() {}
func (CardsDrawnPayload) event()        {}
func (PlayerPassedPayload) event()      {}
func (DeckRecycledPayload) event()      {}
func (WinnerFoundPayload) event()       {}
