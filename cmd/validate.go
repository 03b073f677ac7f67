package cmd

import (
	"fmt"

	"github.com/arcanaland/fortune/internal/game"
	"github.com/arcanaland/fortune/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Play random games and check the rule engine's invariants",
	Long: `Validate deals a number of games, plays random moves on each, and checks after every
move that all 70 cards are accounted for and the foundations are consistent.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		games, _ := cmd.Flags().GetInt("games")
		moves, _ := cmd.Flags().GetInt("moves")
		seed, _ := cmd.Flags().GetUint64("seed")

		out := cmd.OutOrStdout()
		rng := game.NewSeededRNG(seed)
		locs := game.Locations()

		var failures []string
		won := 0
		for g := 0; g < games; g++ {
			state := game.NewGame(rng)
			for m := 0; m < moves && !state.Won(); m++ {
				move := game.Move{Source: locs[rng.Intn(len(locs))], Target: locs[rng.Intn(len(locs))]}
				state = game.TryMakeMove(state, move)

				results := validator.Validate(state)
				for _, e := range results.Errors {
					failures = append(failures, fmt.Sprintf("game %d, move %d (%s): %s", g, m, move, e))
				}
				for _, w := range results.Warnings {
					failures = append(failures, fmt.Sprintf("game %d, move %d (%s): %s", g, m, move, w))
				}
			}
			if state.Won() {
				won++
			}
		}

		// Display validation results
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(failures) == 0 {
			fmt.Fprintf(out, "✅ %d games of up to %d random moves kept every invariant (%d won).\n", games, moves, won)
			return nil
		}

		fmt.Fprintf(out, "❌ %d invariant violations:\n", len(failures))
		for i, f := range failures {
			fmt.Fprintf(out, "%d. %s\n", i+1, f)
		}
		return fmt.Errorf("validation failed")
	},
}

func init() {
	validateCmd.Flags().Int("games", 100, "Number of games to play")
	validateCmd.Flags().Int("moves", 500, "Maximum number of random moves per game")
	validateCmd.Flags().Uint64("seed", 1, "Seed for deals and moves")
}
