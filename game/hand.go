package game

import (
	"fmt"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/consts"
)

// Hand keeps cards in the order they were received.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, consts.HandSize)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Contains(searched card.Card) bool {
	return h.indexOf(searched) >= 0
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) PlayableCards(lastPlayedCard card.Card, activeColor color.Color) []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range h.cards {
		if card.Matches(candidateCard, lastPlayedCard, activeColor) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}

// RemoveCard drops the first copy of c, keeping the order of the rest.
func (h *Hand) RemoveCard(c card.Card) error {
	index := h.indexOf(c)
	if index < 0 {
		return fmt.Errorf("%w: %s", consts.ErrorsCardNotInHand, c)
	}
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return nil
}

func (h *Hand) Size() int {
	return len(h.cards)
}

func (h *Hand) indexOf(searched card.Card) int {
	for index, cardInHand := range h.cards {
		if cardInHand.Equal(searched) {
			return index
		}
	}
	return -1
}
