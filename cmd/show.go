package cmd

import (
	"fmt"

	"github.com/arcanaland/fortune/internal/card"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display information about a specific card",
	Long: `Show displays a card's name, face and the cards it can be stacked with.
Use canonical card IDs like 'major_arcana.00' or 'minor_arcana.cups.12'.
Rank words and Arcana Land suit names are accepted too.

If names_file is set in your config, localized names and descriptions are shown.

Examples:
  fortune show major_arcana.00
  fortune show minor_arcana.pentacles.king
  fortune show minor_arcana.swords.7`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := card.Parse(args[0])
		if err != nil {
			return fmt.Errorf("error getting card: %w", err)
		}

		r, err := newRenderer()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		for _, line := range r.Describe(c) {
			fmt.Fprintln(out, "  "+line)
		}
		fmt.Fprintln(out)

		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}
