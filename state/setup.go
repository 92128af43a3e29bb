package state

import (
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/game"
	"github.com/ratel-online/uno/msg"
)

type setup struct{}

func (*setup) Next(session *Session) (consts.StateID, error) {
	count, err := session.Terminal.PromptPlayerCount()
	if err != nil {
		return 0, err
	}
	names := make([]string, 0, count)
	for playerID := 1; playerID <= count; playerID++ {
		name, err := session.Terminal.PromptName(playerID)
		if err != nil {
			return 0, err
		}
		names = append(names, name)
	}

	seed := session.Config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := []game.Option{
		game.WithSeed(seed),
		game.WithHandSize(session.Config.HandSize),
		game.WithListener(session.Terminal),
	}
	round, err := game.New(names, append(opts, session.RoundOptions...)...)
	if err != nil {
		if consts.IsExit(err) {
			return 0, err
		}
		session.Terminal.Print(msg.Message.Error(err))
		return consts.StateSetup, nil
	}
	round.AddListener(roundLogger(round.ID()))
	session.Round = round
	session.Seed = seed
	log.Infof("round %s started with %v, seed %d\n", round.ID(), names, seed)
	return consts.StatePlay, nil
}
