package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
)

// State is a read-only snapshot of a round from the current seat's point of
// view.
type State struct {
	LastPlayedCard    card.Card
	ActiveColor       color.Color
	Direction         int
	PlayedCards       []card.Card
	DeckSize          int
	CurrentPlayer     string
	CurrentPlayerHand []card.Card
	LegalPlays        []card.Card
	PendingDraw       card.Card
	PlayerSequence    []string
	PlayerHandCounts  []int
}

func (r *Round) ExtractState() State {
	playerSequence := make([]string, 0, r.players.Len())
	playerHandCounts := make([]int, 0, r.players.Len())

	r.players.ForEach(func(player *Player) {
		playerSequence = append(playerSequence, player.Name())
		playerHandCounts = append(playerHandCounts, player.HandSize())
	})

	current := r.CurrentPlayer()
	return State{
		LastPlayedCard:    r.TopCard(),
		ActiveColor:       r.activeColor,
		Direction:         r.Direction(),
		PlayedCards:       r.pile.Cards(),
		DeckSize:          r.deck.Size(),
		CurrentPlayer:     current.Name(),
		CurrentPlayerHand: current.Hand(),
		LegalPlays:        r.LegalPlaysForCurrent(),
		PendingDraw:       r.pending,
		PlayerSequence:    playerSequence,
		PlayerHandCounts:  playerHandCounts,
	}
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Last played card: %s", s.LastPlayedCard))
	lines = append(lines, fmt.Sprintf("Active color: %s", s.ActiveColor))

	arrow := "->"
	if s.Direction < 0 {
		arrow = "<-"
	}
	var playerStatuses []string
	for index, playerName := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, s.PlayerHandCounts[index])
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Turn order: %s", strings.Join(playerStatuses, " "+arrow+" ")))
	lines = append(lines, fmt.Sprintf("Cards left in deck: %d", s.DeckSize))

	lines = append(lines, fmt.Sprintf("Your hand: %s", s.CurrentPlayerHand))

	return strings.Join(lines, "\n")
}
