package game

import (
	"errors"
	"fmt"
	"testing"
)

func moveSetOf(t *testing.T, n int) *MoveSet {
	t.Helper()
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("m%d", i)
	}
	ms, err := NewMoveSet(names)
	if err != nil {
		t.Fatalf("new move set: %v", err)
	}
	return ms
}

var testSizes = []int{3, 5, 7, 9, 11, 21}

func TestBuildRelationRowCounts(t *testing.T) {
	for _, n := range testSizes {
		rel := BuildRelation(moveSetOf(t, n))
		if rel.Size() != n {
			t.Fatalf("n=%d: relation size %d", n, rel.Size())
		}
		half := (n - 1) / 2
		for i := 0; i < n; i++ {
			if got := rel.Count(i, OutcomeWin); got != half {
				t.Fatalf("n=%d row %d: %d wins, want %d", n, i, got, half)
			}
			if got := rel.Count(i, OutcomeLose); got != half {
				t.Fatalf("n=%d row %d: %d losses, want %d", n, i, got, half)
			}
			if got := rel.Count(i, OutcomeDraw); got != 1 {
				t.Fatalf("n=%d row %d: %d draws, want 1", n, i, got)
			}
			if rel[i][i] != OutcomeDraw {
				t.Fatalf("n=%d: diagonal %d is %s", n, i, rel[i][i])
			}
		}
	}
}

func TestBuildRelationAntisymmetric(t *testing.T) {
	for _, n := range testSizes {
		rel := BuildRelation(moveSetOf(t, n))
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if (rel[i][j] == OutcomeWin) != (rel[j][i] == OutcomeLose) {
					t.Fatalf("n=%d: rel[%d][%d]=%s but rel[%d][%d]=%s", n, i, j, rel[i][j], j, i, rel[j][i])
				}
			}
		}
	}
}

func TestResolveAgreesWithRelation(t *testing.T) {
	for _, n := range testSizes {
		ms := moveSetOf(t, n)
		rel := BuildRelation(ms)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				got, err := Resolve(ms, MoveIndex(i), MoveIndex(j))
				if err != nil {
					t.Fatalf("resolve: %v", err)
				}
				if got != rel[i][j] {
					t.Fatalf("n=%d: Resolve(%d,%d)=%s, relation says %s", n, i, j, got, rel[i][j])
				}
			}
		}
	}
}

func TestResolveSameMoveIsDraw(t *testing.T) {
	ms := moveSetOf(t, 7)
	for i := 0; i < ms.Len(); i++ {
		got, err := Resolve(ms, MoveIndex(i), MoveIndex(i))
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if got != OutcomeDraw {
			t.Fatalf("Resolve(%d,%d)=%s, want draw", i, i, got)
		}
	}
}

func TestResolveInvalidIndex(t *testing.T) {
	ms := moveSetOf(t, 3)
	cases := []struct {
		human, opponent MoveIndex
	}{
		{-1, 0},
		{3, 0},
		{0, 3},
		{0, -2},
	}
	for _, tc := range cases {
		if _, err := Resolve(ms, tc.human, tc.opponent); !errors.Is(err, ErrInvalidIndex) {
			t.Fatalf("Resolve(%d,%d): expected ErrInvalidIndex, got %v", tc.human, tc.opponent, err)
		}
	}
}

func TestResolveClassicThree(t *testing.T) {
	ms, err := NewMoveSet([]string{"rock", "paper", "scissors"})
	if err != nil {
		t.Fatalf("new move set: %v", err)
	}

	cases := []struct {
		a, b string
		want Outcome
	}{
		{"rock", "scissors", OutcomeWin},
		{"rock", "paper", OutcomeLose},
		{"paper", "rock", OutcomeWin},
		{"scissors", "paper", OutcomeWin},
		{"scissors", "scissors", OutcomeDraw},
	}
	for _, tc := range cases {
		a, _ := ms.Lookup(tc.a)
		b, _ := ms.Lookup(tc.b)
		got, err := Resolve(ms, a, b)
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if got != tc.want {
			t.Fatalf("Resolve(%s,%s) = %s; want %s", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestRelationFiveMoves(t *testing.T) {
	names := []string{"rock", "spock", "paper", "lizard", "scissors"}
	ms, err := NewMoveSet(names)
	if err != nil {
		t.Fatalf("new move set: %v", err)
	}

	first := BuildRelation(ms)
	wins, losses := 0, 0
	for j := 1; j < 5; j++ {
		switch first[0][j] {
		case OutcomeWin:
			wins++
		case OutcomeLose:
			losses++
		}
	}
	if wins != 2 || losses != 2 {
		t.Fatalf("rock row: %d wins %d losses, want 2 and 2", wins, losses)
	}

	// rock crushes lizard and scissors, loses to spock and paper
	want := []Outcome{OutcomeDraw, OutcomeLose, OutcomeLose, OutcomeWin, OutcomeWin}
	for i := 0; i < 10; i++ {
		rel := BuildRelation(ms)
		for j, o := range want {
			if rel[0][j] != o {
				t.Fatalf("build %d: rock vs %s = %s, want %s", i, names[j], rel[0][j], o)
			}
		}
	}
}

func TestBuildRelationIsSnapshot(t *testing.T) {
	ms := moveSetOf(t, 3)
	rel := BuildRelation(ms)
	rel[0][1] = OutcomeDraw
	if again := BuildRelation(ms); again[0][1] == OutcomeDraw {
		t.Fatal("relation shares memory between builds")
	}
}

func TestOutcomeInvert(t *testing.T) {
	cases := map[Outcome]Outcome{
		OutcomeWin:  OutcomeLose,
		OutcomeLose: OutcomeWin,
		OutcomeDraw: OutcomeDraw,
	}
	for in, want := range cases {
		if got := in.Invert(); got != want {
			t.Fatalf("%s.Invert() = %s, want %s", in, got, want)
		}
	}
}
