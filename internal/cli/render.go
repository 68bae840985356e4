package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mazenLavey/rock-paper-scissors-game/internal/game"
)

// RenderMenu prints the published digest followed by the choices.
func RenderMenu(w io.Writer, digestHex string, ms *game.MoveSet) error {
	var b strings.Builder
	fmt.Fprintf(&b, "HMAC: %s\n", digestHex)
	b.WriteString("Available moves:\n")
	for i, name := range ms.Names() {
		fmt.Fprintf(&b, "%s - %s\n", game.MoveIndex(i).Display(), name)
	}
	fmt.Fprintf(&b, "%s - exit\n", game.ExitToken)
	fmt.Fprintf(&b, "%s - help\n", game.HelpToken)
	_, err := io.WriteString(w, b.String())
	return err
}

// RenderHelp prints the rules hint and the outcome table. Rows are the
// computer's moves, columns the player's, and each cell is the player's
// result.
func RenderHelp(w io.Writer, ms *game.MoveSet, rel game.Relation) error {
	if _, err := fmt.Fprintln(w, MsgHowToWin); err != nil {
		return err
	}

	names := ms.Names()
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.Debug)
	fmt.Fprintf(tw, " %s\t", TableCorner)
	for _, name := range names {
		fmt.Fprintf(tw, " %s\t", name)
	}
	fmt.Fprintln(tw)

	for pc, name := range names {
		fmt.Fprintf(tw, " %s\t", name)
		for player := range names {
			fmt.Fprintf(tw, " %s\t", rel[player][pc])
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

// RenderResult prints a resolved round together with the revealed key.
func RenderResult(w io.Writer, res game.Result) error {
	if !res.Resolved() || res.Reveal == nil {
		return fmt.Errorf("round is not resolved: %s", res.State)
	}
	_, err := fmt.Fprintf(w, "Your move: %s\nComputer move: %s\nYou %s!\nHMAC key: %s\n",
		res.HumanMove, res.OpponentMove, res.Outcome, res.Reveal.Key)
	return err
}
