package game

import (
	"fmt"
	"sync"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/consts"
)

// Shuffler is satisfied by *rand.Rand.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Deck is a stack of cards; the top is the end of the slice.
type Deck struct {
	sync.Mutex
	cards []card.Card
}

// NewDeck returns the 108 standard cards in enumeration order, unshuffled.
func NewDeck() *Deck {
	return &Deck{cards: StandardCards()}
}

// NewDeckFromCards wraps a prepared stack. The last card is drawn first.
func NewDeckFromCards(cards []card.Card) *Deck {
	stack := make([]card.Card, len(cards))
	copy(stack, cards)
	return &Deck{cards: stack}
}

func StandardCards() []card.Card {
	cards := make([]card.Card, 0, consts.DeckSize)
	for _, cardColor := range color.Base {
		cards = append(cards, createColorCards(cardColor)...)
	}
	cards = append(cards, createBlackCards()...)
	return cards
}

func createColorCards(cardColor color.Color) []card.Card {
	cards := make([]card.Card, 0, 2*len(card.ColoredRanks)-1)
	for _, rank := range card.ColoredRanks {
		colorCard, err := card.New(cardColor, rank)
		if err != nil {
			panic(err)
		}
		cards = append(cards, colorCard)
		if rank != card.Zero {
			cards = append(cards, colorCard)
		}
	}
	return cards
}

func createBlackCards() []card.Card {
	cards := make([]card.Card, 0, 8)
	for i := 0; i < 4; i++ {
		cards = append(cards, card.NewWildCard(), card.NewWildDrawFourCard())
	}
	return cards
}

func (d *Deck) Shuffle(shuffler Shuffler) {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	shuffleCards(d.cards, shuffler)
}

func (d *Deck) Draw() (card.Card, error) {
	cards, err := d.DrawN(1)
	if err != nil {
		return nil, err
	}
	return cards[0], nil
}

// DrawN pops amount cards in draw order. Nothing is removed when the deck holds
// fewer than amount cards.
func (d *Deck) DrawN(amount int) ([]card.Card, error) {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	if len(d.cards) < amount {
		return nil, fmt.Errorf("%w: need %d, deck holds %d", consts.ErrorsDeckEmpty, amount, len(d.cards))
	}
	cards := make([]card.Card, 0, amount)
	for i := 0; i < amount; i++ {
		top := len(d.cards) - 1
		cards = append(cards, d.cards[top])
		d.cards = d.cards[:top]
	}
	return cards, nil
}

func (d *Deck) PutBottom(c card.Card) {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	d.cards = append([]card.Card{c}, d.cards...)
}

// Refill shuffles cards and slides them under the remaining stack.
func (d *Deck) Refill(cards []card.Card, shuffler Shuffler) {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	refill := make([]card.Card, len(cards), len(cards)+len(d.cards))
	copy(refill, cards)
	shuffleCards(refill, shuffler)
	d.cards = append(refill, d.cards...)
}

func (d *Deck) Size() int {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	return len(d.cards)
}

func (d *Deck) Cards() []card.Card {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func shuffleCards(cards []card.Card, shuffler Shuffler) {
	shuffler.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}
