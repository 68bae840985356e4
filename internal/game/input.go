package game

import (
	"strconv"
	"strings"
)

// Menu tokens that are not moves.
const (
	ExitToken = "0"
	HelpToken = "?"
)

// InputKind classifies one line typed at the menu.
type InputKind int

const (
	InputMalformed InputKind = iota
	InputExit
	InputHelp
	InputMove
)

func (k InputKind) String() string {
	switch k {
	case InputExit:
		return "exit"
	case InputHelp:
		return "help"
	case InputMove:
		return "move"
	default:
		return "malformed"
	}
}

// Input is a classified menu line. Choice is set only for InputMove.
type Input struct {
	Kind   InputKind
	Choice DisplayChoice
}

// ParseInput classifies line against a menu of n moves. Surrounding
// whitespace is ignored; a move must be plain decimal digits in [1, n].
func ParseInput(line string, n int) Input {
	line = strings.TrimSpace(line)
	switch line {
	case ExitToken:
		return Input{Kind: InputExit}
	case HelpToken:
		return Input{Kind: InputHelp}
	}

	if line == "" || !isDigits(line) {
		return Input{Kind: InputMalformed}
	}
	v, err := strconv.Atoi(line)
	if err != nil || v < 1 || v > n {
		return Input{Kind: InputMalformed}
	}
	return Input{Kind: InputMove, Choice: DisplayChoice(v)}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
