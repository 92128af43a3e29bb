package game_test

import (
	"testing"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/game"
	"github.com/stretchr/testify/require"
)

func TestCards(t *testing.T) {
	pile := game.NewPile()
	pile.Add(card.NewNumberCard(color.Blue, 5))
	pile.Add(card.NewNumberCard(color.Green, 5))
	pile.Add(card.NewNumberCard(color.Green, 7))
	require.Equal(t, []card.Card{
		card.NewNumberCard(color.Blue, 5),
		card.NewNumberCard(color.Green, 5),
		card.NewNumberCard(color.Green, 7),
	}, pile.Cards())
	require.Equal(t, 3, pile.Size())
}

func TestTop(t *testing.T) {
	pile := game.NewPile()
	require.Nil(t, pile.Top())
	pile.Add(card.NewNumberCard(color.Blue, 5))
	pile.Add(card.NewNumberCard(color.Green, 5))
	pile.Add(card.NewNumberCard(color.Green, 7))
	require.Equal(t, card.NewNumberCard(color.Green, 7), pile.Top())
}

func TestTakeUnderTop(t *testing.T) {
	t.Run("keeps_the_face_up_card", func(t *testing.T) {
		pile := game.NewPile()
		pile.Add(card.NewNumberCard(color.Blue, 5))
		pile.Add(card.NewWildCard())
		pile.Add(card.NewNumberCard(color.Green, 7))

		under := pile.TakeUnderTop()
		require.Equal(t, []card.Card{
			card.NewNumberCard(color.Blue, 5),
			card.NewWildCard(),
		}, under)
		require.Equal(t, []card.Card{card.NewNumberCard(color.Green, 7)}, pile.Cards())
	})

	t.Run("returns_nothing_for_a_single_card", func(t *testing.T) {
		pile := game.NewPile()
		pile.Add(card.NewNumberCard(color.Blue, 5))
		require.Empty(t, pile.TakeUnderTop())
		require.Equal(t, 1, pile.Size())
	})
}
