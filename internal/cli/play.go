package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/mazenLavey/rock-paper-scissors-game/internal/game"
	"github.com/mazenLavey/rock-paper-scissors-game/internal/logger"
)

var errNoChoice = errors.New("no choice entered")

// RoundRecorder stores a resolved round for later verification.
type RoundRecorder interface {
	Record(ctx context.Context, moves []string, res game.Result) error
}

// Options wires one game run. Zero values fall back to production defaults.
type Options struct {
	In  io.Reader
	Out io.Writer

	KeyBytes      int
	HelpPolicy    game.HelpPolicy
	ChoiceTimeout time.Duration

	Entropy  io.Reader
	Selector game.Selector
	Recorder RoundRecorder
	Log      *slog.Logger
}

// Run plays a single round with the moves given in args and returns the
// process exit code.
func Run(ctx context.Context, args []string, opts Options) int {
	log := opts.Log
	if log == nil {
		log = logger.Get()
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	ms, err := ParseMoves(args)
	if err != nil {
		log.Debug("arguments rejected", "error", err)
		fmt.Fprintln(out, MsgInvalidArguments)
		return ExitUsage
	}

	selector := opts.Selector
	if selector == nil {
		selector = game.RandomSelector{Reader: opts.Entropy}
	}
	session, err := game.NewSession(ms,
		game.WithSelector(selector),
		game.WithCommitmentScheme(game.NewCommitmentScheme(opts.KeyBytes, opts.Entropy)),
		game.WithHelpPolicy(opts.HelpPolicy),
		game.WithLogger(log),
	)
	if err != nil {
		log.Error("failed to start round", "error", err)
		return ExitFatal
	}

	if err := RenderMenu(out, session.PublishedDigest(), ms); err != nil {
		log.Error("failed to render menu", "error", err)
		return ExitFatal
	}
	if err := session.AwaitChoice(); err != nil {
		log.Error("session not ready", "error", err)
		return ExitFatal
	}

	var in *bufio.Reader
	if opts.In != nil {
		in = bufio.NewReader(opts.In)
	}

	for {
		fmt.Fprint(out, Prompt)
		line, err := readLine(ctx, in, opts.ChoiceTimeout)
		if err != nil {
			fmt.Fprintln(out)
			fmt.Fprintln(out, MsgNoChoice)
			log.Info("round abandoned", "reason", err)
			return ExitOK
		}

		res, err := session.Submit(line)
		if err != nil {
			log.Error("submit choice", "error", err)
			return ExitFatal
		}

		switch res.State {
		case game.StateExited:
			return ExitOK

		case game.StateHelpRequested:
			if err := RenderHelp(out, ms, session.Relation()); err != nil {
				log.Error("failed to render help", "error", err)
				return ExitFatal
			}
			if session.State() == game.StateAwaitingChoice {
				continue
			}
			return ExitOK

		case game.StateResolved:
			if err := RenderResult(out, res); err != nil {
				log.Error("failed to render result", "error", err)
				return ExitFatal
			}
			if opts.Recorder != nil {
				if err := opts.Recorder.Record(ctx, ms.Names(), res); err != nil {
					// the round itself is complete, the archive is best effort
					log.Warn("failed to archive round", "error", err)
				}
			}
			return ExitOK

		default:
			fmt.Fprintln(out, MsgInvalidInput)
			return ExitUsage
		}
	}
}

type lineResult struct {
	line string
	err  error
}

// readLine waits for one line, the timeout or ctx, whichever comes first.
// A zero timeout waits forever.
func readLine(ctx context.Context, in *bufio.Reader, timeout time.Duration) (string, error) {
	if in == nil {
		return "", errNoChoice
	}

	ch := make(chan lineResult, 1)
	go func() {
		line, err := in.ReadString('\n')
		if err == io.EOF && line != "" {
			err = nil
		}
		ch <- lineResult{line: strings.TrimRight(line, "\r\n"), err: err}
	}()

	var timer <-chan time.Time
	if timeout > 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		timer = t.C
	}

	select {
	case r := <-ch:
		if r.err != nil {
			return "", fmt.Errorf("%w: %v", errNoChoice, r.err)
		}
		return r.line, nil
	case <-timer:
		return "", fmt.Errorf("%w: timed out after %s", errNoChoice, timeout)
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %v", errNoChoice, ctx.Err())
	}
}
