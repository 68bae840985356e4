package game

// Outcome is the result of a round from one move's point of view.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLose Outcome = "lose"
	OutcomeDraw Outcome = "draw"
)

// String returns the label shown to players.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "Win"
	case OutcomeLose:
		return "Lose"
	case OutcomeDraw:
		return "Draw"
	default:
		return string(o)
	}
}

// Invert returns the same result seen from the other side.
func (o Outcome) Invert() Outcome {
	switch o {
	case OutcomeWin:
		return OutcomeLose
	case OutcomeLose:
		return OutcomeWin
	default:
		return o
	}
}

// Relation is the N×N outcome grid. Relation[row][col] is the result of
// the row move played against the col move.
type Relation [][]Outcome

// Beats reports whether move a defeats move b in a cycle of n moves. Every
// move defeats the (n-1)/2 moves that precede it in cyclic order and loses
// to the (n-1)/2 that follow it.
func Beats(n int, a, b MoveIndex) bool {
	if n <= 0 {
		return false
	}
	d := ((int(a)-int(b))%n + n) % n
	return d >= 1 && d <= (n-1)/2
}

// BuildRelation materializes the dominance relation of ms. The result does
// not share memory with ms.
func BuildRelation(ms *MoveSet) Relation {
	n := ms.Len()
	rel := make(Relation, n)
	for i := range rel {
		rel[i] = make([]Outcome, n)
		for j := range rel[i] {
			rel[i][j] = OutcomeDraw
		}
	}

	half := (n - 1) / 2
	for i := 0; i < n; i++ {
		for j := 1; j <= half; j++ {
			k := (i + j) % n
			rel[k][i] = OutcomeWin
			rel[i][k] = OutcomeLose
		}
	}
	return rel
}

// Resolve decides the round from the human's perspective.
func Resolve(ms *MoveSet, human, opponent MoveIndex) (Outcome, error) {
	if err := ms.check(human); err != nil {
		return "", err
	}
	if err := ms.check(opponent); err != nil {
		return "", err
	}

	if human == opponent {
		return OutcomeDraw, nil
	}
	if Beats(ms.Len(), human, opponent) {
		return OutcomeWin, nil
	}
	return OutcomeLose, nil
}

// Size returns N.
func (r Relation) Size() int {
	return len(r)
}

// Count returns how many cells of row hold o.
func (r Relation) Count(row int, o Outcome) int {
	c := 0
	for _, cell := range r[row] {
		if cell == o {
			c++
		}
	}
	return c
}
