package card

import "github.com/ratel-online/uno/card/color"

// Matches reports whether candidate may be played on top. A colored card is
// legal when it shares the top card's color or rank, or when its own color is
// the active color, so a card can follow through the active color alone.
//
// Wild cards are always legal. This widens the plain color-or-rank rule, under
// which a wild would never match because its color is only the print color.
func Matches(candidate Card, top Card, activeColor color.Color) bool {
	if candidate.Color() == color.Wild {
		return true
	}
	if candidate.Color() == top.Color() {
		return true
	}
	if candidate.Rank() == top.Rank() {
		return true
	}
	return activeColor != nil && candidate.Color() == activeColor
}
