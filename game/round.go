package game

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/event"
)

// Round is the state of one round from the deal until a hand is emptied.
// It is not safe for concurrent use; overlapping commands fail with
// consts.ErrorsBusy.
type Round struct {
	id          string
	players     *PlayerIterator
	deck        *Deck
	pile        *Pile
	activeColor color.Color
	shuffler    Shuffler
	emitter     *event.Emitter

	starter card.Card
	buried  []card.Card
	pending card.Card
	winner  *Player

	guard sync.Mutex
}

type options struct {
	shuffler  Shuffler
	deck      *Deck
	handSize  int
	listeners []event.Listener
}

type Option func(*options)

// WithRand sets the source used to shuffle the deck and recycled cards.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.shuffler = rng
	}
}

func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithDeck deals from a prepared stack instead of a shuffled standard deck.
func WithDeck(deck *Deck) Option {
	return func(o *options) {
		o.deck = deck
	}
}

func WithHandSize(size int) Option {
	return func(o *options) {
		o.handSize = size
	}
}

func WithListener(listener event.Listener) Option {
	return func(o *options) {
		o.listeners = append(o.listeners, listener)
	}
}

// New seats the players in the given order, deals their hands and flips the
// starter. Seat 0 acts first.
func New(names []string, opts ...Option) (*Round, error) {
	o := options{handSize: consts.HandSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.shuffler == nil {
		o.shuffler = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if len(names) < consts.MinPlayers {
		return nil, fmt.Errorf("%w: need at least %d players, got %d", consts.ErrorsGamePlayersInvalid, consts.MinPlayers, len(names))
	}
	if o.handSize < 1 {
		return nil, fmt.Errorf("%w: hand size %d", consts.ErrorsInvalidChoice, o.handSize)
	}
	for seat, name := range names {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: player %d has no name", consts.ErrorsInvalidChoice, seat+1)
		}
	}

	deck := o.deck
	if deck == nil {
		deck = NewDeck()
		deck.Shuffle(o.shuffler)
	}
	if needed := len(names)*o.handSize + 1; deck.Size() < needed {
		return nil, fmt.Errorf("%w: %d players need %d cards, deck holds %d", consts.ErrorsGamePlayersInvalid, len(names), needed, deck.Size())
	}

	r := &Round{
		id:       uuid.NewString(),
		players:  newPlayerIterator(names),
		deck:     deck,
		pile:     NewPile(),
		shuffler: o.shuffler,
		emitter:  event.NewEmitter(o.listeners...),
	}
	if err := r.dealStartingCards(o.handSize); err != nil {
		return nil, err
	}
	if err := r.playFirstCard(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Round) dealStartingCards(handSize int) error {
	var err error
	r.players.ForEach(func(player *Player) {
		if err != nil {
			return
		}
		var hand []card.Card
		hand, err = r.deck.DrawN(handSize)
		player.AddCards(hand)
	})
	return err
}

// playFirstCard flips the starter. Wild starters go back under the deck so the
// active color is always one of the base colors; other action cards take no
// effect.
func (r *Round) playFirstCard() error {
	for attempts := r.deck.Size(); attempts > 0; attempts-- {
		firstCard, err := r.deck.Draw()
		if err != nil {
			return err
		}
		if firstCard.Color() == color.Wild {
			r.buried = append(r.buried, firstCard)
			r.deck.PutBottom(firstCard)
			continue
		}
		r.starter = firstCard
		r.pile.Add(firstCard)
		r.activeColor = firstCard.Color()
		r.emitter.Emit(event.FirstCardPlayedPayload{
			Card:   firstCard,
			Color:  r.activeColor,
			Buried: r.buried,
		})
		return nil
	}
	return fmt.Errorf("%w: no colored card to start with", consts.ErrorsDeckEmpty)
}

func (r *Round) ID() string {
	return r.id
}

func (r *Round) AddListener(listener event.Listener) {
	r.emitter.AddListener(listener)
}

func (r *Round) CurrentPlayer() *Player {
	return r.players.Current()
}

func (r *Round) Players() []*Player {
	return r.players.Players()
}

func (r *Round) TopCard() card.Card {
	return r.pile.Top()
}

// Starter is the card flipped to open the discard pile.
func (r *Round) Starter() card.Card {
	return r.starter
}

func (r *Round) ActiveColor() color.Color {
	return r.activeColor
}

func (r *Round) Direction() int {
	return r.players.Direction()
}

func (r *Round) DeckSize() int {
	return r.deck.Size()
}

func (r *Round) PlayedCards() []card.Card {
	return r.pile.Cards()
}

func (r *Round) LegalPlaysForCurrent() []card.Card {
	if r.Over() {
		return nil
	}
	return r.CurrentPlayer().LegalPlays(r.TopCard(), r.activeColor)
}

// PendingDraw is the card the current seat just drew when it can be played
// right away, nil otherwise.
func (r *Round) PendingDraw() card.Card {
	return r.pending
}

func (r *Round) Winner() *Player {
	return r.winner
}

func (r *Round) Over() bool {
	return r.winner != nil
}
