package state

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/event"
)

// roundLogger keeps the events that change the deck in the log.
func roundLogger(roundID string) event.Listener {
	return event.ListenerFunc(func(e event.Event) {
		if payload, ok := e.(event.DeckRecycledPayload); ok {
			log.Infof("round %s recycled %d played card(s) into the deck\n", roundID, payload.Cards)
		}
	})
}
