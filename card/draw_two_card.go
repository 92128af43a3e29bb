package card

import (
	"github.com/ratel-online/uno/card/action"
	"github.com/ratel-online/uno/card/color"
)

type DrawTwoCard struct {
	color color.Color
}

func NewDrawTwoCard(color color.Color) DrawTwoCard {
	return DrawTwoCard{color: color}
}

func (c DrawTwoCard) Actions() []action.Action {
	return []action.Action{
		action.NewDrawCardsAction(2),
		action.NewSkipTurnAction(),
	}
}

func (c DrawTwoCard) Color() color.Color {
	return c.color
}

func (c DrawTwoCard) Rank() Rank {
	return DrawTwo
}

func (c DrawTwoCard) Equal(other Card) bool {
	_, typeMatched := other.(DrawTwoCard)
	return typeMatched && c.color == other.Color()
}

func (c DrawTwoCard) String() string {
	return describe(c.color, DrawTwo)
}
