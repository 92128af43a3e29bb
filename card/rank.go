package card

import (
	"fmt"
	"strconv"
	"strings"
)

type Rank int

const (
	Zero Rank = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Skip
	Reverse
	DrawTwo
	Wild
	WildDrawFour
)

// ColoredRanks are the ranks printed twice in each base color, in deck order.
var ColoredRanks = []Rank{
	Zero, One, Two, Three, Four, Five, Six, Seven, Eight, Nine,
	Skip, Reverse, DrawTwo,
}

var rankNames = map[Rank]string{
	Skip:         "skip",
	Reverse:      "reverse",
	DrawTwo:      "draw-two",
	Wild:         "wild",
	WildDrawFour: "wild-draw-four",
}

func (r Rank) IsNumber() bool {
	return r >= Zero && r <= Nine
}

func (r Rank) IsAction() bool {
	return r >= Skip && r <= WildDrawFour
}

func (r Rank) IsWild() bool {
	return r == Wild || r == WildDrawFour
}

func (r Rank) String() string {
	if r.IsNumber() {
		return strconv.Itoa(int(r))
	}
	if name, ok := rankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("rank(%d)", int(r))
}

func ParseRank(text string) (Rank, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if number, err := strconv.Atoi(text); err == nil && Rank(number).IsNumber() {
		return Rank(number), nil
	}
	for rank, name := range rankNames {
		if name == text {
			return rank, nil
		}
	}
	return 0, fmt.Errorf("invalid rank '%s'", text)
}
