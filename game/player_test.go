package game_test

import (
	"testing"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayer(t *testing.T) {
	player := game.NewPlayer(2, "Caitlyn")
	assert.Equal(t, 3, player.ID())
	assert.Equal(t, 2, player.Seat())
	assert.Equal(t, "Caitlyn", player.Name())
	assert.Equal(t, "Caitlyn", player.String())
	assert.Empty(t, player.Hand())
	assert.Equal(t, 0, player.HandSize())
}

func TestPlayerCards(t *testing.T) {
	player := game.NewPlayer(0, "Annie")
	player.AddCards([]card.Card{red(1), blue(2)})
	player.AddCard(card.NewWildCard())
	require.Equal(t, []card.Card{red(1), blue(2), card.NewWildCard()}, player.Hand())

	require.Equal(t, []card.Card{blue(2), card.NewWildCard()}, player.LegalPlays(blue(7), color.Blue))
	require.True(t, player.HasLegalPlay(green(5), color.Green))

	require.NoError(t, player.RemoveCard(card.NewWildCard()))
	require.False(t, player.HasLegalPlay(green(5), color.Green))

	err := player.RemoveCard(yellow(3))
	require.ErrorIs(t, err, consts.ErrorsCardNotInHand)
	require.Equal(t, []card.Card{red(1), blue(2)}, player.Hand())
}

func TestPlayerOrder(t *testing.T) {
	round := newStackedRound(t, [][]card.Card{
		{card.NewReverseCard(color.Red)},
		{red(1)},
		{red(2)},
	}, red(5), yellow(1))

	names := make([]string, 0)
	for _, player := range round.Players() {
		names = append(names, player.Name())
	}
	require.Equal(t, []string{"Annie", "Braum", "Caitlyn"}, names)

	players := round.Players()
	players[0] = nil
	require.NotNil(t, round.Players()[0])
}
