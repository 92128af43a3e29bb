package game

import (
	"sync"

	"github.com/ratel-online/uno/card"
)

// Pile is the discard pile; the last card added is face up.
type Pile struct {
	sync.Mutex
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(card card.Card) {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	p.cards = append(p.cards, card)
}

func (p *Pile) Cards() []card.Card {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) Size() int {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	return len(p.cards)
}

// TakeUnderTop removes and returns every card except the face-up one.
func (p *Pile) TakeUnderTop() []card.Card {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	if len(p.cards) <= 1 {
		return nil
	}
	top := len(p.cards) - 1
	under := make([]card.Card, top)
	copy(under, p.cards[:top])
	p.cards = append(p.cards[:0], p.cards[top])
	return under
}

func (p *Pile) Top() card.Card {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	pileSize := len(p.cards)
	if pileSize == 0 {
		return nil
	}
	return p.cards[pileSize-1]
}
