package game

// PlayerIterator binds the seated players to a Cycler.
type PlayerIterator struct {
	players []*Player
	cycler  *Cycler
}

func newPlayerIterator(names []string) *PlayerIterator {
	players := make([]*Player, 0, len(names))
	for seat, name := range names {
		players = append(players, NewPlayer(seat, name))
	}
	return &PlayerIterator{
		players: players,
		cycler:  NewCycler(len(players)),
	}
}

func (i *PlayerIterator) Current() *Player {
	return i.players[i.cycler.Current()]
}

func (i *PlayerIterator) Direction() int {
	return i.cycler.Direction()
}

// ForEach visits players in seat order regardless of direction.
func (i *PlayerIterator) ForEach(function func(player *Player)) {
	for _, player := range i.players {
		function(player)
	}
}

func (i *PlayerIterator) Len() int {
	return len(i.players)
}

func (i *PlayerIterator) Peek(steps int) *Player {
	return i.players[i.cycler.Peek(steps)]
}

func (i *PlayerIterator) Advance(steps int) *Player {
	return i.players[i.cycler.Advance(steps)]
}

// Next moves the turn one seat along the current direction.
func (i *PlayerIterator) Next() *Player {
	return i.players[i.cycler.Next()]
}

func (i *PlayerIterator) Players() []*Player {
	players := make([]*Player, len(i.players))
	copy(players, i.players)
	return players
}

func (i *PlayerIterator) Reverse() int {
	return i.cycler.Reverse()
}
