package game

import (
	"fmt"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/action"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/event"
)

// Apply dispatches a shell move. pick is only read when the selected card needs
// a color.
func (r *Round) Apply(move Move, pick ColorChoice) (Outcome, error) {
	if r.Over() {
		return Outcome{}, consts.ErrorsRoundOver
	}
	switch move := move.(type) {
	case PlayChoice:
		legalPlays := r.LegalPlaysForCurrent()
		if move.Index < 0 || move.Index >= len(legalPlays) {
			return Outcome{}, fmt.Errorf("%w: card index %d out of range [0, %d)", consts.ErrorsInvalidChoice, move.Index, len(legalPlays))
		}
		return r.Play(legalPlays[move.Index], pick)
	case DrawChoice:
		return r.Draw()
	case PassChoice:
		return r.Pass()
	}
	return Outcome{}, fmt.Errorf("%w: unknown move %T", consts.ErrorsInvalidChoice, move)
}

// Play moves c from the current hand to the pile and applies its effects. The
// round is left untouched when an error is returned.
func (r *Round) Play(c card.Card, pick ColorChoice) (Outcome, error) {
	if !r.guard.TryLock() {
		return Outcome{}, consts.ErrorsBusy
	}
	defer r.guard.Unlock()

	if r.Over() {
		return Outcome{}, consts.ErrorsRoundOver
	}
	player := r.players.Current()
	if !player.hand.Contains(c) {
		return Outcome{}, fmt.Errorf("%w: %w: %s", consts.ErrorsInvalidPlay, consts.ErrorsCardNotInHand, c)
	}
	if !card.Matches(c, r.TopCard(), r.activeColor) {
		return Outcome{}, fmt.Errorf("%w: %s does not follow %s under %s", consts.ErrorsInvalidPlay, c, r.TopCard(), r.activeColor.Name())
	}
	if card.NeedsColor(c) && !color.IsBase(pick.Color) {
		return Outcome{}, fmt.Errorf("%w: %s needs one of red, blue, green or yellow", consts.ErrorsInvalidChoice, c)
	}
	// Everything already on the pile can be recycled once c covers it. A winning
	// card is never refused; its penalty shrinks to what is left instead.
	winning := player.HandSize() == 1
	if penalty := action.DrawAmount(c.Actions()); penalty > r.deck.Size()+r.pile.Size() && !winning {
		return Outcome{}, fmt.Errorf("%w: %s needs %d cards", consts.ErrorsDeckEmpty, c, penalty)
	}

	if err := player.RemoveCard(c); err != nil {
		return Outcome{}, err
	}
	r.pile.Add(c)
	r.pending = nil

	outcome := Outcome{Player: player, Card: c}
	outcome.Events = append(outcome.Events, event.CardPlayedPayload{Player: player.eventSeat(), Card: c})
	if c.Color() != color.Wild {
		r.activeColor = c.Color()
	}
	if player.hand.Empty() {
		r.winner = player
	}

	steps := 1
	for _, cardAction := range c.Actions() {
		switch cardAction := cardAction.(type) {
		case action.PickColorAction:
			r.activeColor = pick.Color
			outcome.Color = pick.Color
			outcome.Events = append(outcome.Events, event.ColorPickedPayload{Player: player.eventSeat(), Color: pick.Color})
		case action.ReverseTurnsAction:
			direction := r.players.Reverse()
			outcome.Reversed = true
			outcome.Events = append(outcome.Events, event.TurnOrderReversedPayload{Direction: direction})
		case action.DrawCardsAction:
			target := r.players.Peek(1)
			amount := cardAction.Amount()
			if available := r.deck.Size() + r.pile.Size() - 1; amount > available {
				amount = available
			}
			cards := r.drawCards(amount, &outcome)
			target.AddCards(cards)
			outcome.Penalized = target
			outcome.PenaltyCards = cards
			outcome.Events = append(outcome.Events, event.CardsDrawnPayload{Player: target.eventSeat(), Cards: cards, Penalty: true})
		case action.SkipTurnAction:
			steps = 2
			outcome.Skipped = r.players.Peek(1)
			outcome.Events = append(outcome.Events, event.TurnSkippedPayload{Player: outcome.Skipped.eventSeat()})
		}
	}
	r.players.Advance(steps)

	if r.winner != nil {
		outcome.Winner = r.winner
		outcome.Events = append(outcome.Events, event.WinnerFoundPayload{Player: r.winner.eventSeat()})
	}
	return r.finish(outcome), nil
}

// Draw gives the current seat one card. A playable draw keeps the turn so the
// card can be played or kept with Pass; otherwise the turn moves on.
func (r *Round) Draw() (Outcome, error) {
	if !r.guard.TryLock() {
		return Outcome{}, consts.ErrorsBusy
	}
	defer r.guard.Unlock()

	if r.Over() {
		return Outcome{}, consts.ErrorsRoundOver
	}
	player := r.players.Current()
	if r.pending != nil || player.HasLegalPlay(r.TopCard(), r.activeColor) {
		return Outcome{}, consts.ErrorsMustPlay
	}
	if r.deck.Size()+r.pile.Size()-1 < 1 {
		return Outcome{}, fmt.Errorf("%w: nothing left to draw or recycle", consts.ErrorsDeckEmpty)
	}

	outcome := Outcome{Player: player}
	drawn := r.drawCards(1, &outcome)[0]
	player.AddCard(drawn)
	outcome.Drawn = drawn
	outcome.Events = append(outcome.Events, event.CardsDrawnPayload{Player: player.eventSeat(), Cards: []card.Card{drawn}})

	if card.Matches(drawn, r.TopCard(), r.activeColor) {
		r.pending = drawn
		outcome.DrawnPlayable = true
	} else {
		outcome.Passed = true
		outcome.Events = append(outcome.Events, event.PlayerPassedPayload{Player: player.eventSeat()})
		r.players.Next()
	}
	return r.finish(outcome), nil
}

// Pass ends the turn after a playable draw without playing the drawn card.
func (r *Round) Pass() (Outcome, error) {
	if !r.guard.TryLock() {
		return Outcome{}, consts.ErrorsBusy
	}
	defer r.guard.Unlock()

	if r.Over() {
		return Outcome{}, consts.ErrorsRoundOver
	}
	if r.pending == nil {
		return Outcome{}, fmt.Errorf("%w: passing is only allowed after drawing a playable card", consts.ErrorsInvalidChoice)
	}
	player := r.players.Current()
	r.pending = nil
	outcome := Outcome{Player: player, Passed: true}
	outcome.Events = append(outcome.Events, event.PlayerPassedPayload{Player: player.eventSeat()})
	r.players.Next()
	return r.finish(outcome), nil
}

// drawCards takes amount cards from the deck, recycling the pile under its top
// card first when the deck runs short. Callers check availability beforehand.
func (r *Round) drawCards(amount int, outcome *Outcome) []card.Card {
	if r.deck.Size() < amount {
		recycled := r.pile.TakeUnderTop()
		r.deck.Refill(recycled, r.shuffler)
		outcome.Recycled += len(recycled)
		outcome.Events = append(outcome.Events, event.DeckRecycledPayload{Cards: len(recycled)})
	}
	cards, err := r.deck.DrawN(amount)
	if err != nil {
		panic(err)
	}
	return cards
}

func (r *Round) finish(outcome Outcome) Outcome {
	outcome.ActiveColor = r.activeColor
	outcome.Direction = r.players.Direction()
	if !r.Over() {
		outcome.Next = r.players.Current()
	}
	r.emitter.Emit(outcome.Events...)
	return outcome
}
