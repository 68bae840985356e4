package game

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// Selector picks the opponent's move out of n.
type Selector interface {
	Select(n int) (MoveIndex, error)
}

// SelectorFunc adapts a function to Selector.
type SelectorFunc func(n int) (MoveIndex, error)

func (f SelectorFunc) Select(n int) (MoveIndex, error) {
	return f(n)
}

// RandomSelector draws a uniform index from Reader (crypto/rand when nil).
type RandomSelector struct {
	Reader io.Reader
}

func (s RandomSelector) Select(n int) (MoveIndex, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: empty move set", ErrInvalidIndex)
	}
	reader := s.Reader
	if reader == nil {
		reader = rand.Reader
	}
	v, err := rand.Int(reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEntropySource, err)
	}
	return MoveIndex(v.Int64()), nil
}
