package state

import (
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/msg"
)

type welcome struct{}

func (*welcome) Next(session *Session) (consts.StateID, error) {
	session.Terminal.Print(msg.Message.Welcome())
	return consts.StateSetup, nil
}
