package card

import (
	"fmt"

	"github.com/ratel-online/uno/card/action"
	"github.com/ratel-online/uno/card/color"
)

type Card interface {
	Actions() []action.Action
	Color() color.Color
	Rank() Rank
	Equal(other Card) bool
	String() string
}

// New builds the card of the given rank. The color is ignored for wild ranks
// and must be a base color otherwise.
func New(cardColor color.Color, rank Rank) (Card, error) {
	switch {
	case rank == Wild:
		return NewWildCard(), nil
	case rank == WildDrawFour:
		return NewWildDrawFourCard(), nil
	case !color.IsBase(cardColor):
		return nil, fmt.Errorf("%s card needs a base color, got %v", rank, cardColor)
	case rank == Skip:
		return NewSkipCard(cardColor), nil
	case rank == Reverse:
		return NewReverseCard(cardColor), nil
	case rank == DrawTwo:
		return NewDrawTwoCard(cardColor), nil
	case rank.IsNumber():
		return NewNumberCard(cardColor, int(rank)), nil
	}
	return nil, fmt.Errorf("invalid rank %d", int(rank))
}

func IsAction(c Card) bool {
	return c.Rank().IsAction()
}

// NeedsColor reports whether playing c requires the player to pick a color.
func NeedsColor(c Card) bool {
	return action.Includes(c.Actions(), action.NewPickColorAction())
}

func describe(cardColor color.Color, rank Rank) string {
	return cardColor.Paintf("%s %s", cardColor.Name(), rank)
}
