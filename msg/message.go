package msg

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/event"
)

var Message = MessageWriter{}

type MessageWriter struct{}

// Event renders any round event. Unknown events render as an empty string.
func (m MessageWriter) Event(e event.Event) string {
	switch payload := e.(type) {
	case event.FirstCardPlayedPayload:
		return m.FirstCardPlayed(payload)
	case event.CardPlayedPayload:
		return m.PlayerPlayedCard(payload.Player.Name, payload.Card)
	case event.ColorPickedPayload:
		return m.PlayerPickedColor(payload.Player.Name, payload.Color)
	case event.TurnSkippedPayload:
		return m.PlayerTurnSkipped(payload.Player.Name)
	case event.TurnOrderReversedPayload:
		return m.TurnOrderReversed()
	case event.CardsDrawnPayload:
		return m.PlayerDrewCards(payload.Player.Name, payload.Cards, payload.Penalty)
	case event.PlayerPassedPayload:
		return m.PlayerPassed(payload.Player.Name)
	case event.DeckRecycledPayload:
		return m.DeckRecycled(payload.Cards)
	case event.WinnerFoundPayload:
		return m.WinnerFound(payload.Player.Name)
	}
	return ""
}

func (m MessageWriter) FirstCardPlayed(payload event.FirstCardPlayedPayload) string {
	var lines []string
	for _, buried := range payload.Buried {
		lines = append(lines, fmt.Sprintf("%s cannot start the round and goes back under the deck", buried))
	}
	lines = append(lines, fmt.Sprintf("First card is %s", payload.Card))
	return Sprintlns(lines)
}

func (m MessageWriter) HumanPlayerHasNoMatchingCardsInHand(playerName string, lastPlayedCard card.Card) string {
	return Sprintfln("%s, none of your cards match %s!", playerName, lastPlayedCard)
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return Sprintfln("It's your turn, %s!", playerName)
}

func (m MessageWriter) PlayerDrewCards(playerName string, cards []card.Card, penalty bool) string {
	if penalty {
		return Sprintfln("%s draws %d cards!", playerName, len(cards))
	}
	if len(cards) == 1 {
		return Sprintfln("%s drew %s!", playerName, cards[0])
	}
	return Sprintfln("%s drew %d cards!", playerName, len(cards))
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return Sprintfln("%s passed!", playerName)
}

func (m MessageWriter) PlayerPickedColor(playerName string, color color.Color) string {
	return Sprintfln("%s picked color %s!", playerName, color)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, card card.Card) string {
	return Sprintfln("%s played %s!", playerName, card)
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return Sprintfln("%s's turn skipped!", playerName)
}

func (m MessageWriter) TurnOrderReversed() string {
	return Sprintln("Turn order has been reversed!")
}

func (m MessageWriter) DeckRecycled(cards int) string {
	return Sprintfln("The deck ran out, %d played card(s) were shuffled back in!", cards)
}

func (m MessageWriter) Welcome() string {
	return Sprintfln(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return Sprintfln("%s wins!", playerName)
}

func (m MessageWriter) PromptPlayerCount() string {
	return Sprintfln("How many players? (%d-%d)", consts.MinPlayers, consts.MaxPlayers)
}

func (m MessageWriter) PromptName(playerID int) string {
	return Sprintfln("Name of player %d:", playerID)
}

// PromptMove lists the legal plays by index followed by the draw or pass
// option that applies.
func (m MessageWriter) PromptMove(legalPlays []card.Card, pending bool) string {
	lines := []string{"Select a card to play:"}
	for index, c := range legalPlays {
		lines = append(lines, fmt.Sprintf("%s (enter %d)", c, index))
	}
	if pending {
		lines = append(lines, fmt.Sprintf("keep the drawn card and pass (enter %s)", consts.InputPass))
	} else if len(legalPlays) == 0 {
		lines = []string{fmt.Sprintf("Draw a card (enter %s)", consts.InputDraw)}
	}
	return Sprintlns(lines)
}

func (m MessageWriter) PromptColor() string {
	return Sprintfln(
		"Select a color: '%s', '%s', '%s' or '%s'?",
		color.Red,
		color.Yellow,
		color.Green,
		color.Blue,
	)
}

func (m MessageWriter) InputOutOfRange(minimum int, maximum int) string {
	return Sprintfln("Input out of range (minimum: %d, maximum: %d)", minimum, maximum)
}

func (m MessageWriter) BlankName() string {
	return Sprintln("Name cannot be blank")
}

func (m MessageWriter) NoMoveAssigned(input string) string {
	return Sprintfln("No move assigned to '%s'", input)
}

func (m MessageWriter) UnknownColor(colorName string) string {
	return Sprintfln("Unknown color '%s'", colorName)
}

func (m MessageWriter) Error(err error) string {
	return Sprintln(strings.TrimSpace(err.Error()))
}

func (m MessageWriter) RoundOver(winnerName string) string {
	return Sprintfln("Round over, %s emptied their hand first. Bye!", winnerName)
}
