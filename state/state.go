package state

import (
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/game"
	"github.com/ratel-online/uno/ui"
)

var states = map[consts.StateID]State{}

func init() {
	register(consts.StateWelcome, &welcome{})
	register(consts.StateSetup, &setup{})
	register(consts.StatePlay, &play{})
	register(consts.StateOver, &over{})
}

func register(id consts.StateID, state State) {
	states[id] = state
}

// Session is everything the states share while one round is set up and played.
type Session struct {
	Terminal *ui.Terminal
	Config   config.Config
	// RoundOptions are appended to the options derived from Config.
	RoundOptions []game.Option

	Round *game.Round
	Seed  int64
}

type State interface {
	Next(session *Session) (consts.StateID, error)
}

func Root() consts.StateID {
	return consts.StateWelcome
}

// Run walks the states from Root until one of them returns zero.
func Run(session *Session) error {
	stateID := Root()
	for stateID > 0 {
		state, ok := states[stateID]
		if !ok {
			return consts.ErrorsInputInvalid
		}
		next, err := state.Next(session)
		if err != nil {
			return err
		}
		stateID = next
	}
	return nil
}
