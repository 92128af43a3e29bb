package consts

import "errors"

type StateID int

const (
	_ StateID = iota
	StateWelcome
	StateSetup
	StatePlay
	StateOver
)

const (
	MinPlayers = 2
	MaxPlayers = 10

	HandSize = 7

	DeckSize = 108
)

// Typed shell input besides card indices.
const (
	InputExit = "exit"
	InputDraw = "d"
	InputPass = "p"
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

// IsExit reports whether err ends the session instead of asking again.
func IsExit(err error) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Exit
	}
	return err != nil
}

var (
	ErrorsExist              = NewErr(1, true, "Exist. ")
	ErrorsChanClosed         = NewErr(1, true, "Input closed. ")
	ErrorsInputInvalid       = NewErr(1, false, "Input invalid. ")
	ErrorsGamePlayersInvalid = NewErr(1, false, "Game players invalid. ")

	ErrorsInvalidPlay   = NewErr(2, false, "Invalid play. ")
	ErrorsInvalidChoice = NewErr(2, false, "Invalid choice. ")
	ErrorsMustPlay      = NewErr(2, false, "There is a card that can be played and must be played. ")
	ErrorsBusy          = NewErr(2, false, "Another move is being applied. ")

	ErrorsDeckEmpty     = NewErr(3, true, "No cards left to draw. ")
	ErrorsCardNotInHand = NewErr(3, true, "Card not in hand. ")
	ErrorsRoundOver     = NewErr(3, true, "Round is over. ")
)
