package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/game"
	"github.com/ratel-online/uno/msg"
	"github.com/spf13/cast"
)

// AskForString reads one trimmed line. Typing exit yields consts.ErrorsExist
// and a closed input yields consts.ErrorsChanClosed.
func (t *Terminal) AskForString() (string, error) {
	line, err := t.reader.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		if errors.Is(err, io.EOF) {
			return "", consts.ErrorsChanClosed
		}
		return "", err
	}
	line = strings.TrimSpace(line)
	if strings.ToLower(line) == consts.InputExit {
		return "", consts.ErrorsExist
	}
	return line, nil
}

func (t *Terminal) AskForInt() (int, error) {
	input, err := t.AskForString()
	if err != nil {
		return 0, err
	}
	number, err := cast.ToIntE(input)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", consts.ErrorsInputInvalid, input)
	}
	return number, nil
}

func (t *Terminal) PromptPlayerCount() (int, error) {
	for {
		t.Print(msg.Message.PromptPlayerCount())
		count, err := t.AskForInt()
		if err != nil {
			if consts.IsExit(err) {
				return 0, err
			}
			t.Print(msg.Message.Error(err))
			continue
		}
		if count < consts.MinPlayers || count > consts.MaxPlayers {
			t.Print(msg.Message.InputOutOfRange(consts.MinPlayers, consts.MaxPlayers))
			continue
		}
		return count, nil
	}
}

// PromptName asks for the name of the player with the given 1-based ID.
func (t *Terminal) PromptName(playerID int) (string, error) {
	for {
		t.Print(msg.Message.PromptName(playerID))
		name, err := t.AskForString()
		if err != nil {
			return "", err
		}
		if name == "" {
			t.Print(msg.Message.BlankName())
			continue
		}
		return name, nil
	}
}

// PromptMove accepts an index into legalPlays, the draw input when nothing is
// playable or the pass input after a playable draw.
func (t *Terminal) PromptMove(legalPlays []card.Card, pending bool) (game.Move, error) {
	for {
		t.Print(msg.Message.PromptMove(legalPlays, pending))
		input, err := t.AskForString()
		if err != nil {
			return nil, err
		}
		switch strings.ToLower(input) {
		case consts.InputDraw:
			if len(legalPlays) == 0 && !pending {
				return game.DrawChoice{}, nil
			}
		case consts.InputPass:
			if pending {
				return game.PassChoice{}, nil
			}
		default:
			index, err := cast.ToIntE(input)
			if err == nil && index >= 0 && index < len(legalPlays) {
				return game.PlayChoice{Index: index}, nil
			}
		}
		t.Print(msg.Message.NoMoveAssigned(input))
	}
}

func (t *Terminal) PromptColor() (game.ColorChoice, error) {
	for {
		t.Print(msg.Message.PromptColor())
		colorName, err := t.AskForString()
		if err != nil {
			return game.NoColor(), err
		}
		chosenColor, err := color.ByName(colorName)
		if err != nil {
			t.Print(msg.Message.UnknownColor(colorName))
			continue
		}
		return game.PickColor(chosenColor), nil
	}
}
