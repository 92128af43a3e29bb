package state

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/game"
	"github.com/ratel-online/uno/msg"
)

type play struct{}

func (*play) Next(session *Session) (consts.StateID, error) {
	round := session.Round
	for !round.Over() {
		err := handlePlay(session, round)
		if err == nil {
			continue
		}
		if consts.IsExit(err) {
			log.Errorf("round %s aborted: %v\n", round.ID(), err)
			return 0, err
		}
		session.Terminal.Print(msg.Message.Error(err))
	}
	return consts.StateOver, nil
}

func handlePlay(session *Session, round *game.Round) error {
	terminal := session.Terminal
	gameState := round.ExtractState()
	terminal.Print(msg.Message.HumanPlayerTurnStarted(gameState.CurrentPlayer))
	terminal.Print(msg.Sprintln(gameState))

	pending := gameState.PendingDraw != nil
	if len(gameState.LegalPlays) == 0 {
		terminal.Print(msg.Message.HumanPlayerHasNoMatchingCardsInHand(gameState.CurrentPlayer, gameState.LastPlayedCard))
	}
	move, err := terminal.PromptMove(gameState.LegalPlays, pending)
	if err != nil {
		return err
	}
	pick := game.NoColor()
	if choice, ok := move.(game.PlayChoice); ok && card.NeedsColor(gameState.LegalPlays[choice.Index]) {
		pick, err = terminal.PromptColor()
		if err != nil {
			return err
		}
	}
	_, err = round.Apply(move, pick)
	return err
}
