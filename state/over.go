package state

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/msg"
)

type over struct{}

func (*over) Next(session *Session) (consts.StateID, error) {
	winner := session.Round.Winner()
	session.Terminal.Print(msg.Message.RoundOver(winner.Name()))
	log.Infof("round %s won by %s, seed %d\n", session.Round.ID(), winner.Name(), session.Seed)
	return 0, nil
}
