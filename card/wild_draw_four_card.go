package card

import (
	"github.com/ratel-online/uno/card/action"
	"github.com/ratel-online/uno/card/color"
)

type WildDrawFourCard struct{}

func NewWildDrawFourCard() WildDrawFourCard {
	return WildDrawFourCard{}
}

// Actions picks the color before the penalty so the next seat draws under the
// new active color.
func (c WildDrawFourCard) Actions() []action.Action {
	return []action.Action{
		action.NewPickColorAction(),
		action.NewDrawCardsAction(4),
		action.NewSkipTurnAction(),
	}
}

func (c WildDrawFourCard) Color() color.Color {
	return color.Wild
}

func (c WildDrawFourCard) Rank() Rank {
	return WildDrawFour
}

func (c WildDrawFourCard) Equal(other Card) bool {
	_, typeMatched := other.(WildDrawFourCard)
	return typeMatched
}

func (c WildDrawFourCard) String() string {
	return color.Wild.Paint(WildDrawFour.String())
}
