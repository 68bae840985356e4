package game

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/mazenLavey/rock-paper-scissors-game/internal/logger"
)

var (
	ErrSessionClosed     = errors.New("session is closed")
	ErrNotAwaitingChoice = errors.New("session is not awaiting a choice")
)

// State is a step of a single round.
type State int

const (
	StateStart State = iota
	StateCommitmentPublished
	StateAwaitingChoice
	StateHelpRequested
	StateResolved
	StateExited
	StateRejected
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateCommitmentPublished:
		return "commitment_published"
	case StateAwaitingChoice:
		return "awaiting_choice"
	case StateHelpRequested:
		return "help_requested"
	case StateResolved:
		return "resolved"
	case StateExited:
		return "exited"
	case StateRejected:
		return "rejected"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Terminal reports whether no further input is accepted in s.
func (s State) Terminal() bool {
	switch s {
	case StateHelpRequested, StateResolved, StateExited, StateRejected:
		return true
	default:
		return false
	}
}

// HelpPolicy decides what happens after the help view was requested.
type HelpPolicy int

const (
	// HelpTerminates ends the session after help is shown.
	HelpTerminates HelpPolicy = iota
	// HelpReprompts returns to AwaitingChoice so a real move can follow.
	HelpReprompts
)

// ParseHelpPolicy accepts "terminate" and "reprompt" (empty means terminate).
func ParseHelpPolicy(s string) (HelpPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "terminate":
		return HelpTerminates, nil
	case "reprompt":
		return HelpReprompts, nil
	default:
		return HelpTerminates, fmt.Errorf("unknown help policy %q", s)
	}
}

func (p HelpPolicy) String() string {
	if p == HelpReprompts {
		return "reprompt"
	}
	return "terminate"
}

// Result is what the frontend gets back for one submitted line. Outcome,
// the move names and Reveal are only set when State is StateResolved.
type Result struct {
	State        State
	Input        Input
	Outcome      Outcome
	HumanMove    string
	OpponentMove string
	Reveal       *Reveal
}

// Resolved reports whether the round was decided.
func (r Result) Resolved() bool {
	return r.State == StateResolved
}

type sessionOptions struct {
	selector   Selector
	scheme     *CommitmentScheme
	helpPolicy HelpPolicy
	log        *slog.Logger
}

// Option configures a Session.
type Option func(*sessionOptions)

// WithSelector replaces the opponent's move selection.
func WithSelector(s Selector) Option {
	return func(o *sessionOptions) { o.selector = s }
}

// WithCommitmentScheme replaces the key length and entropy used to commit.
func WithCommitmentScheme(s *CommitmentScheme) Option {
	return func(o *sessionOptions) { o.scheme = s }
}

// WithHelpPolicy sets the help behavior.
func WithHelpPolicy(p HelpPolicy) Option {
	return func(o *sessionOptions) { o.helpPolicy = p }
}

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *sessionOptions) { o.log = l }
}

// Session runs exactly one round: the opponent picks and commits, the human
// answers once, the round is resolved and the key revealed.
type Session struct {
	mu         sync.Mutex
	moves      *MoveSet
	state      State
	opponent   MoveIndex
	commitment *Commitment
	human      *MoveIndex
	outcome    Outcome
	helpPolicy HelpPolicy
	log        *slog.Logger
}

// NewSession picks the opponent's move and publishes its commitment. Any
// failure leaves no session behind.
func NewSession(ms *MoveSet, opts ...Option) (*Session, error) {
	if ms == nil {
		return nil, fmt.Errorf("%w: nil move set", ErrInvalidMoveSet)
	}

	o := sessionOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.selector == nil {
		o.selector = RandomSelector{}
	}
	if o.scheme == nil {
		o.scheme = NewCommitmentScheme(DefaultKeyBytes, nil)
	}
	if o.log == nil {
		o.log = logger.Get()
	}

	s := &Session{
		moves:      ms,
		state:      StateStart,
		helpPolicy: o.helpPolicy,
		log:        o.log,
	}

	opponent, err := o.selector.Select(ms.Len())
	if err != nil {
		return nil, fmt.Errorf("select opponent move: %w", err)
	}
	name, err := ms.Name(opponent)
	if err != nil {
		return nil, fmt.Errorf("select opponent move: %w", err)
	}
	commitment, err := o.scheme.Commit(name)
	if err != nil {
		return nil, fmt.Errorf("commit opponent move: %w", err)
	}

	s.opponent = opponent
	s.commitment = commitment
	s.state = StateCommitmentPublished
	s.log.Debug("commitment published", "moves", ms.Len(), "digest", commitment.DigestHex())
	return s, nil
}

// PublishedDigest is the hex digest shown before the human chooses.
func (s *Session) PublishedDigest() string {
	return s.commitment.DigestHex()
}

// MoveSet returns the moves of this round.
func (s *Session) MoveSet() *MoveSet {
	return s.moves
}

// Relation returns a fresh dominance table for the help view.
func (s *Session) Relation() Relation {
	return BuildRelation(s.moves)
}

// HelpPolicy returns the configured help behavior.
func (s *Session) HelpPolicy() HelpPolicy {
	return s.helpPolicy
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// AwaitChoice records that the menu was shown.
func (s *Session) AwaitChoice() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.state == StateAwaitingChoice:
		return nil
	case s.state == StateCommitmentPublished:
		s.state = StateAwaitingChoice
		return nil
	case s.state.Terminal():
		return ErrSessionClosed
	default:
		return fmt.Errorf("%w: state %s", ErrNotAwaitingChoice, s.state)
	}
}

// Submit classifies one line of human input and advances the round.
// Malformed input is not an error: it ends the session in StateRejected.
func (s *Session) Submit(line string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Terminal() {
		return Result{State: s.state}, ErrSessionClosed
	}
	if s.state != StateAwaitingChoice {
		return Result{State: s.state}, fmt.Errorf("%w: state %s", ErrNotAwaitingChoice, s.state)
	}

	in := ParseInput(line, s.moves.Len())
	switch in.Kind {
	case InputExit:
		s.state = StateExited
		s.log.Debug("session exited")
		return Result{State: StateExited, Input: in}, nil

	case InputHelp:
		if s.helpPolicy == HelpReprompts {
			s.log.Debug("help requested, awaiting another choice")
		} else {
			s.state = StateHelpRequested
			s.log.Debug("help requested, session closed")
		}
		return Result{State: StateHelpRequested, Input: in}, nil

	case InputMove:
		return s.resolve(in)

	default:
		s.state = StateRejected
		s.log.Debug("input rejected", "input", line)
		return Result{State: StateRejected, Input: in}, nil
	}
}

func (s *Session) resolve(in Input) (Result, error) {
	human := in.Choice.Index()
	outcome, err := Resolve(s.moves, human, s.opponent)
	if err != nil {
		return Result{State: s.state}, err
	}
	humanName, _ := s.moves.Name(human)
	opponentName, _ := s.moves.Name(s.opponent)

	s.human = &human
	s.outcome = outcome
	s.state = StateResolved

	reveal := s.commitment.Reveal()
	s.log.Info("round resolved",
		"human", humanName,
		"opponent", opponentName,
		"outcome", string(outcome),
	)
	return Result{
		State:        StateResolved,
		Input:        in,
		Outcome:      outcome,
		HumanMove:    humanName,
		OpponentMove: opponentName,
		Reveal:       &reveal,
	}, nil
}

// Outcome returns the decided result once the session is resolved.
func (s *Session) Outcome() (Outcome, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.human == nil {
		return "", false
	}
	return s.outcome, true
}
