package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/fortune/internal/game"
	"github.com/arcanaland/fortune/internal/render"
	"github.com/arcanaland/fortune/internal/session"
	"github.com/arcanaland/fortune/internal/validator"
)

const playHelp = `Commands:
  <from> <to>   move the topmost card, e.g. "3 7" or "2 r"
  <loc>         click a location: the first click picks a card up, the second puts it down
  u             undo the last move
  n             deal a new game
  q             quit
  ?             show this help

Locations are column numbers 0-10, or r for the reserve.`

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game in the terminal",
	Long: `Play deals a new game and reads moves from standard input.

Examples:
  fortune play
  fortune play --seed 42
  fortune play --check`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRenderer()
		if err != nil {
			return err
		}

		rng, err := rngFromFlags(cmd)
		if err != nil {
			return err
		}
		check, _ := cmd.Flags().GetBool("check")

		s := session.New(rng, slog.Default())
		return playLoop(cmd.InOrStdin(), cmd.OutOrStdout(), s, r, check)
	},
}

func init() {
	RootCmd.AddCommand(playCmd)

	playCmd.Flags().Uint64P("seed", "s", 0, "Deal a reproducible game from this seed")
	playCmd.Flags().Bool("check", false, "Check game invariants after every move")
}

// rngFromFlags returns a seeded RNG when --seed was given
func rngFromFlags(cmd *cobra.Command) (game.RNG, error) {
	if !cmd.Flags().Changed("seed") {
		return game.StdRNG{}, nil
	}
	seed, err := cmd.Flags().GetUint64("seed")
	if err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}
	return game.NewSeededRNG(seed), nil
}

func playLoop(in io.Reader, out io.Writer, s *session.Session, r *render.Renderer, check bool) error {
	scanner := bufio.NewScanner(in)
	notice := colorize.New(colorize.FgYellow)

	fmt.Fprintln(out, "Type ? for help.")
	for {
		fmt.Fprintln(out)
		fmt.Fprint(out, r.Board(s.State, s.Selected))
		if s.Won() {
			fmt.Fprintf(out, "\nYou won in %d moves! Type n for a new game or q to quit.\n", s.Moves())
		}
		fmt.Fprint(out, "> ")

		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "q", "quit", "exit":
			return nil
		case "?", "h", "help":
			fmt.Fprintln(out, playHelp)
			continue
		case "u", "undo":
			if !s.Undo() {
				notice.Fprintln(out, "Nothing to undo.")
			}
			continue
		case "n", "new":
			s.Restart()
			continue
		}

		if err := playInput(s, fields); err != nil {
			notice.Fprintln(out, err)
			continue
		}

		if check {
			results := validator.Validate(s.State)
			for _, e := range results.Errors {
				slog.Error("invariant violated", "game_id", s.ID, "error", e)
			}
			for _, w := range results.Warnings {
				slog.Warn("invariant warning", "game_id", s.ID, "warning", w)
			}
		}
	}
}

// playInput applies a move ("3 7") or a single click ("3")
func playInput(s *session.Session, fields []string) error {
	switch len(fields) {
	case 1:
		loc, err := game.ParseLocation(fields[0])
		if err != nil {
			return err
		}
		s.Click(loc)
		return nil
	case 2:
		from, err := game.ParseLocation(fields[0])
		if err != nil {
			return err
		}
		to, err := game.ParseLocation(fields[1])
		if err != nil {
			return err
		}
		s.Move(game.Move{Source: from, Target: to})
		return nil
	default:
		return fmt.Errorf("expected one or two locations, type ? for help")
	}
}
