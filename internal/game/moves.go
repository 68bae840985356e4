package game

import (
	"errors"
	"fmt"
	"strconv"
)

// MinMoves is the smallest move set that forms a cycle.
const MinMoves = 3

var (
	ErrInvalidMoveSet = errors.New("invalid move set")
	ErrInvalidIndex   = errors.New("invalid move index")
)

// MoveIndex is the zero-based position of a move inside a MoveSet.
type MoveIndex int

// DisplayChoice is the one-based number a human picks from the menu.
type DisplayChoice int

// Index converts a menu choice to the move index it names.
func (c DisplayChoice) Index() MoveIndex {
	return MoveIndex(c - 1)
}

// Display converts a move index to the number shown in the menu.
func (i MoveIndex) Display() DisplayChoice {
	return DisplayChoice(i + 1)
}

func (c DisplayChoice) String() string {
	return strconv.Itoa(int(c))
}

// MoveSet is the ordered universe of legal moves. The order of the names
// decides who beats whom; the names themselves carry no meaning.
type MoveSet struct {
	names []string
	index map[string]MoveIndex
}

// NewMoveSet validates names and returns an immutable MoveSet. The count must
// be odd and at least MinMoves, and every name must be distinct and non-empty.
func NewMoveSet(names []string) (*MoveSet, error) {
	n := len(names)
	if n < MinMoves {
		return nil, fmt.Errorf("%w: need at least %d moves, got %d", ErrInvalidMoveSet, MinMoves, n)
	}
	if n%2 == 0 {
		return nil, fmt.Errorf("%w: move count must be odd, got %d", ErrInvalidMoveSet, n)
	}

	ms := &MoveSet{
		names: make([]string, n),
		index: make(map[string]MoveIndex, n),
	}
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("%w: move %d is empty", ErrInvalidMoveSet, i+1)
		}
		if _, dup := ms.index[name]; dup {
			return nil, fmt.Errorf("%w: duplicate move %q", ErrInvalidMoveSet, name)
		}
		ms.names[i] = name
		ms.index[name] = MoveIndex(i)
	}
	return ms, nil
}

// Len returns N.
func (ms *MoveSet) Len() int {
	return len(ms.names)
}

// Name returns the move at i.
func (ms *MoveSet) Name(i MoveIndex) (string, error) {
	if err := ms.check(i); err != nil {
		return "", err
	}
	return ms.names[i], nil
}

// Lookup returns the index of a move name.
func (ms *MoveSet) Lookup(name string) (MoveIndex, bool) {
	i, ok := ms.index[name]
	return i, ok
}

// Names returns a copy of the ordered move names.
func (ms *MoveSet) Names() []string {
	out := make([]string, len(ms.names))
	copy(out, ms.names)
	return out
}

// Valid reports whether i addresses a move of this set.
func (ms *MoveSet) Valid(i MoveIndex) bool {
	return i >= 0 && int(i) < len(ms.names)
}

func (ms *MoveSet) check(i MoveIndex) error {
	if !ms.Valid(i) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidIndex, i, len(ms.names))
	}
	return nil
}
