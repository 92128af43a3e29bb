package action

type Action interface{}

// DrawCardsAction makes the next seat draw amount cards.
type DrawCardsAction struct {
	amount int
}

func NewDrawCardsAction(amount int) Action {
	return DrawCardsAction{amount: amount}
}

func (a DrawCardsAction) Amount() int {
	return a.amount
}

type ReverseTurnsAction struct{}

func NewReverseTurnsAction() Action {
	return ReverseTurnsAction{}
}

// SkipTurnAction passes over the next seat.
type SkipTurnAction struct{}

func NewSkipTurnAction() Action {
	return SkipTurnAction{}
}

type PickColorAction struct{}

func NewPickColorAction() Action {
	return PickColorAction{}
}

// Includes reports whether actions holds an action of the same kind as target.
func Includes(actions []Action, target Action) bool {
	for _, candidate := range actions {
		switch target.(type) {
		case DrawCardsAction:
			if _, ok := candidate.(DrawCardsAction); ok {
				return true
			}
		default:
			if candidate == target {
				return true
			}
		}
	}
	return false
}

// DrawAmount sums the penalty cards carried by actions.
func DrawAmount(actions []Action) int {
	total := 0
	for _, candidate := range actions {
		if drawCards, ok := candidate.(DrawCardsAction); ok {
			total += drawCards.Amount()
		}
	}
	return total
}
