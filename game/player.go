package game

import (
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/event"
)

type Player struct {
	id   int
	seat int
	name string
	hand *Hand
}

func NewPlayer(seat int, name string) *Player {
	return &Player{
		id:   seat + 1,
		seat: seat,
		name: name,
		hand: NewHand(),
	}
}

// ID is the 1-based ordinal shown to people; Seat is the 0-based turn index.
func (p *Player) ID() int {
	return p.id
}

func (p *Player) Seat() int {
	return p.seat
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Hand() []card.Card {
	return p.hand.Cards()
}

func (p *Player) HandSize() int {
	return p.hand.Size()
}

func (p *Player) LegalPlays(topCard card.Card, activeColor color.Color) []card.Card {
	return p.hand.PlayableCards(topCard, activeColor)
}

func (p *Player) HasLegalPlay(topCard card.Card, activeColor color.Color) bool {
	return len(p.LegalPlays(topCard, activeColor)) > 0
}

func (p *Player) AddCard(c card.Card) {
	p.hand.AddCards([]card.Card{c})
}

func (p *Player) AddCards(cards []card.Card) {
	p.hand.AddCards(cards)
}

func (p *Player) RemoveCard(c card.Card) error {
	return p.hand.RemoveCard(c)
}

func (p *Player) String() string {
	return p.name
}

func (p *Player) eventSeat() event.Seat {
	return event.Seat{Index: p.seat, Name: p.name}
}
