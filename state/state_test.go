package state_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/game"
	"github.com/ratel-online/uno/state"
	"github.com/ratel-online/uno/ui"
	"github.com/stretchr/testify/require"
)

// stack returns a deck that deals drawOrder front to back.
func stack(drawOrder ...card.Card) *game.Deck {
	cards := make([]card.Card, len(drawOrder))
	for index, c := range drawOrder {
		cards[len(drawOrder)-1-index] = c
	}
	return game.NewDeckFromCards(cards)
}

func newSession(input string, handSize int, deck *game.Deck) (*state.Session, *bytes.Buffer) {
	output := &bytes.Buffer{}
	session := &state.Session{
		Terminal: ui.NewTerminal(strings.NewReader(input), output, 0),
		Config:   config.Config{Seed: 7, HandSize: handSize},
	}
	if deck != nil {
		session.RoundOptions = []game.Option{game.WithDeck(deck)}
	}
	return session, output
}

func TestRun(t *testing.T) {
	defer color.SetEnabled(color.Enabled())
	color.SetEnabled(false)

	t.Run("single_card_win", func(t *testing.T) {
		session, output := newSession("2\nAnnie\nBraum\n0\n", 1, stack(
			card.NewNumberCard(color.Red, 1),
			card.NewNumberCard(color.Green, 1),
			card.NewNumberCard(color.Red, 5),
		))
		require.NoError(t, state.Run(session))

		require.True(t, session.Round.Over())
		require.Equal(t, "Annie", session.Round.Winner().Name())
		require.Equal(t, int64(7), session.Seed)
		text := output.String()
		require.Contains(t, text, "WELCOME TO UNO")
		require.Contains(t, text, "First card is red 5")
		require.Contains(t, text, "It's your turn, Annie!")
		require.Contains(t, text, "Annie played red 1!")
		require.Contains(t, text, "Annie wins!")
		require.Contains(t, text, "Round over, Annie emptied their hand first. Bye!")
	})

	t.Run("invalid_input_is_asked_again", func(t *testing.T) {
		session, output := newSession("1\nabc\n2\n\nAnnie\nBraum\n5\nd\n0\n", 1, stack(
			card.NewNumberCard(color.Red, 1),
			card.NewNumberCard(color.Green, 1),
			card.NewNumberCard(color.Red, 5),
		))
		require.NoError(t, state.Run(session))

		require.Equal(t, "Annie", session.Round.Winner().Name())
		text := output.String()
		require.Contains(t, text, "Input out of range (minimum: 2, maximum: 10)")
		require.Contains(t, text, "Name cannot be blank")
		require.Contains(t, text, "No move assigned to '5'")
		require.Contains(t, text, "No move assigned to 'd'")
	})

	t.Run("wild_asks_for_a_color", func(t *testing.T) {
		session, output := newSession("2\nAnnie\nBraum\n0\npurple\nblue\n", 1, stack(
			card.NewWildCard(),
			card.NewNumberCard(color.Green, 1),
			card.NewNumberCard(color.Red, 5),
		))
		require.NoError(t, state.Run(session))

		require.Equal(t, color.Blue, session.Round.ActiveColor())
		require.Contains(t, output.String(), "Unknown color 'purple'")
		require.Contains(t, output.String(), "Annie picked color blue!")
	})

	t.Run("draw_and_pass", func(t *testing.T) {
		session, output := newSession("2\nAnnie\nBraum\nd\n0\nd\np\n0\n", 2, stack(
			card.NewNumberCard(color.Green, 8),
			card.NewNumberCard(color.Green, 9),
			card.NewNumberCard(color.Red, 1),
			card.NewNumberCard(color.Red, 2),
			card.NewNumberCard(color.Red, 5),
			card.NewNumberCard(color.Yellow, 3),
			card.NewNumberCard(color.Red, 4),
		))
		require.NoError(t, state.Run(session))

		require.Equal(t, "Braum", session.Round.Winner().Name())
		require.Len(t, session.Round.Players()[0].Hand(), 4)
		text := output.String()
		require.Contains(t, text, "Annie, none of your cards match red 5!")
		require.Contains(t, text, "Annie drew yellow 3!")
		require.Contains(t, text, "Annie drew red 4!")
		require.Contains(t, text, "keep the drawn card and pass (enter p)")
		require.Equal(t, 2, strings.Count(text, "Annie passed!"))
		require.Contains(t, text, "Braum wins!")
	})

	t.Run("too_many_cards_per_hand_goes_back_to_setup", func(t *testing.T) {
		session, output := newSession("2\nAnnie\nBraum\nexit\n", 60, nil)
		err := state.Run(session)
		require.ErrorIs(t, err, consts.ErrorsExist)
		require.Nil(t, session.Round)
		require.Contains(t, output.String(), "Game players invalid.")
		require.Equal(t, 2, strings.Count(output.String(), "How many players?"))
	})

	t.Run("exit_ends_the_session", func(t *testing.T) {
		session, _ := newSession("2\nAnnie\nBraum\nexit\n", 7, nil)
		err := state.Run(session)
		require.ErrorIs(t, err, consts.ErrorsExist)
		require.False(t, session.Round.Over())
	})

	t.Run("closed_input_ends_the_session", func(t *testing.T) {
		session, _ := newSession("3\nAnnie\n", 7, nil)
		err := state.Run(session)
		require.ErrorIs(t, err, consts.ErrorsChanClosed)
	})
}
