package game

import (
	"bytes"
	"errors"
	"testing"

	"github.com/mazenLavey/rock-paper-scissors-game/internal/logger"
)

func fixedSelector(i MoveIndex) Selector {
	return SelectorFunc(func(int) (MoveIndex, error) { return i, nil })
}

func newTestSession(t *testing.T, names []string, opponent MoveIndex, opts ...Option) *Session {
	t.Helper()
	ms, err := NewMoveSet(names)
	if err != nil {
		t.Fatalf("new move set: %v", err)
	}
	opts = append([]Option{
		WithSelector(fixedSelector(opponent)),
		WithLogger(logger.Discard()),
	}, opts...)
	s, err := NewSession(ms, opts...)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if s.State() != StateCommitmentPublished {
		t.Fatalf("expected commitment_published, got %s", s.State())
	}
	if err := s.AwaitChoice(); err != nil {
		t.Fatalf("await choice: %v", err)
	}
	return s
}

var classic = []string{"rock", "paper", "scissors"}

func TestSessionScenarioAgainstScissors(t *testing.T) {
	tests := []struct {
		line  string
		human string
		want  Outcome
	}{
		{"1", "rock", OutcomeWin},
		{"2", "paper", OutcomeLose},
		{"3", "scissors", OutcomeDraw},
	}

	for _, tt := range tests {
		t.Run(tt.human, func(t *testing.T) {
			s := newTestSession(t, classic, 2)
			res, err := s.Submit(tt.line)
			if err != nil {
				t.Fatalf("submit: %v", err)
			}
			if res.State != StateResolved || s.State() != StateResolved {
				t.Fatalf("expected resolved, got %s / %s", res.State, s.State())
			}
			if res.Outcome != tt.want {
				t.Fatalf("outcome %s, want %s", res.Outcome, tt.want)
			}
			if res.HumanMove != tt.human || res.OpponentMove != "scissors" {
				t.Fatalf("moves %s vs %s", res.HumanMove, res.OpponentMove)
			}
			if res.Reveal == nil {
				t.Fatal("expected reveal on resolution")
			}
			if res.Reveal.DigestHex != s.PublishedDigest() || res.Reveal.Move != "scissors" {
				t.Fatalf("reveal does not match published commitment: %+v", res.Reveal)
			}
			ok, err := VerifyCommitment("scissors", res.Reveal.Key, s.PublishedDigest())
			if err != nil || !ok {
				t.Fatalf("published digest does not verify: %v %v", ok, err)
			}
			if got, ok := s.Outcome(); !ok || got != tt.want {
				t.Fatalf("Outcome() = %s, %v", got, ok)
			}
		})
	}
}

func TestSessionExitDoesNotReveal(t *testing.T) {
	s := newTestSession(t, classic, 0)
	res, err := s.Submit("0")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.State != StateExited || s.State() != StateExited {
		t.Fatalf("expected exited, got %s", res.State)
	}
	if res.Reveal != nil || res.OpponentMove != "" || res.Outcome != "" {
		t.Fatalf("exit leaked round data: %+v", res)
	}
	if _, ok := s.Outcome(); ok {
		t.Fatal("exited session has an outcome")
	}
}

func TestSessionRejectsMalformed(t *testing.T) {
	s := newTestSession(t, classic, 0)
	res, err := s.Submit("abc")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.State != StateRejected || s.State() != StateRejected {
		t.Fatalf("expected rejected, got %s", res.State)
	}
	if res.Reveal != nil || res.Outcome != "" {
		t.Fatalf("rejected input resolved: %+v", res)
	}
}

func TestSessionSingleShot(t *testing.T) {
	s := newTestSession(t, classic, 1)
	if _, err := s.Submit("1"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := s.Submit("2"); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}
	if err := s.AwaitChoice(); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}
}

func TestSessionRequiresMenu(t *testing.T) {
	ms, _ := NewMoveSet(classic)
	s, err := NewSession(ms, WithLogger(logger.Discard()))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if _, err := s.Submit("1"); !errors.Is(err, ErrNotAwaitingChoice) {
		t.Fatalf("expected ErrNotAwaitingChoice, got %v", err)
	}
}

func TestSessionHelpTerminates(t *testing.T) {
	s := newTestSession(t, classic, 0)
	res, err := s.Submit("?")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.State != StateHelpRequested || s.State() != StateHelpRequested {
		t.Fatalf("expected help_requested, got %s", s.State())
	}
	if res.Reveal != nil {
		t.Fatal("help revealed the key")
	}
	if _, err := s.Submit("1"); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}
}

func TestSessionHelpReprompts(t *testing.T) {
	s := newTestSession(t, classic, 2, WithHelpPolicy(HelpReprompts))
	res, err := s.Submit("?")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.State != StateHelpRequested {
		t.Fatalf("expected help_requested result, got %s", res.State)
	}
	if s.State() != StateAwaitingChoice {
		t.Fatalf("expected session to await another choice, got %s", s.State())
	}

	res, err = s.Submit("1")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Outcome != OutcomeWin {
		t.Fatalf("outcome %s, want win", res.Outcome)
	}
}

func TestNewSessionEntropyFailure(t *testing.T) {
	ms, _ := NewMoveSet(classic)
	s, err := NewSession(ms,
		WithSelector(fixedSelector(0)),
		WithCommitmentScheme(NewCommitmentScheme(16, errReader{})),
		WithLogger(logger.Discard()),
	)
	if !errors.Is(err, ErrEntropySource) {
		t.Fatalf("expected ErrEntropySource, got %v", err)
	}
	if s != nil {
		t.Fatal("expected no session")
	}
}

func TestNewSessionSelectorOutOfRange(t *testing.T) {
	ms, _ := NewMoveSet(classic)
	if _, err := NewSession(ms, WithSelector(fixedSelector(7)), WithLogger(logger.Discard())); !errors.Is(err, ErrInvalidIndex) {
		t.Fatalf("expected ErrInvalidIndex, got %v", err)
	}
}

func TestNewSessionDeterministicKey(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, 16)
	s := newTestSession(t, classic, 2,
		WithCommitmentScheme(NewCommitmentScheme(16, bytes.NewReader(key))),
	)
	if s.PublishedDigest() != DigestHex(key, "scissors") {
		t.Fatal("published digest does not match injected key")
	}
}

func TestParseHelpPolicy(t *testing.T) {
	cases := map[string]HelpPolicy{
		"":          HelpTerminates,
		"terminate": HelpTerminates,
		"Reprompt":  HelpReprompts,
	}
	for in, want := range cases {
		got, err := ParseHelpPolicy(in)
		if err != nil || got != want {
			t.Fatalf("ParseHelpPolicy(%q) = %s, %v", in, got, err)
		}
	}
	if _, err := ParseHelpPolicy("loop"); err == nil {
		t.Fatal("expected error for unknown policy")
	}
}
