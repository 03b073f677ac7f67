package cmd

import (
	"fmt"

	"github.com/arcanaland/fortune/internal/game"
	"github.com/spf13/cobra"
)

// dealCmd prints a new deal without starting a game
var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Print a freshly dealt game",
	Long: `Deal shuffles a new game and prints the starting board. Deals where a card could go
straight to a foundation are reshuffled. Use --seed to reproduce a deal.`,
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

		state := game.NewGame(rng)
		fmt.Fprint(cmd.OutOrStdout(), r.Board(state, nil))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(dealCmd)

	dealCmd.Flags().Uint64P("seed", "s", 0, "Deal a reproducible game from this seed")
}
