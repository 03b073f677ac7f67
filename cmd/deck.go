package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arcanaland/fortune/internal/config"
	"github.com/arcanaland/fortune/internal/deck"
	"github.com/spf13/cobra"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Pick card names from the tarot deck library",
	Long: `Commands for using the names of a deck in your shared tarot deck library.
Decks live in $XDG_DATA_HOME/tarot/decks and carry their names in names/<lang>.toml.`,
}

// deckListCmd represents the deck list command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List decks with card names in your deck library",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetDeckLibraryPath()

		// Check if deck library exists
		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Fprintf(out, "Deck library at %s does not exist.\n", libraryPath)
			fmt.Fprintln(out, "Run 'fortune deck init' to create it.")
			return nil
		}

		libraryPath, err := filepath.EvalSymlinks(libraryPath)
		if err != nil {
			return fmt.Errorf("error resolving symbolic link: %w", err)
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			return fmt.Errorf("error reading deck library: %w", err)
		}

		found := 0
		for _, entry := range entries {
			// Resolve the symbolic link or regular entry
			entryPath := filepath.Join(libraryPath, entry.Name())
			fileInfo, err := os.Stat(entryPath)
			if err != nil || !fileInfo.IsDir() {
				continue
			}

			names, err := deck.Load(entryPath)
			if err != nil {
				// No names file, skip
				continue
			}
			found++

			if entry.Name() == appConfig.NamesFile {
				fmt.Fprintf(out, "* %s (%d names) [IN USE]\n", entry.Name(), names.Len())
			} else {
				fmt.Fprintf(out, "  %s (%d names)\n", entry.Name(), names.Len())
			}
		}

		if found == 0 {
			fmt.Fprintln(out, "No decks with card names found in your deck library.")
			fmt.Fprintln(out, "You can add decks by copying them to:", libraryPath)
		}
		return nil
	},
}

// deckUseCmd represents the deck use command
var deckUseCmd = &cobra.Command{
	Use:   "use [deck_name]",
	Short: "Use the card names of a deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckName := args[0]
		deckPath := filepath.Join(config.GetDeckLibraryPath(), deckName)

		// Try to load the names to make sure the deck is usable
		if _, err := deck.Load(deckPath); err != nil {
			return fmt.Errorf("not a usable deck: %w", err)
		}

		if err := config.Set("names_file", deckName); err != nil {
			return fmt.Errorf("error setting names file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Card names now taken from: %s\n", deckName)
		return nil
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the deck library",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetDeckLibraryPath()

		// Create the deck library directory if it doesn't exist
		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating deck library: %w", err)
		}

		fmt.Fprintln(out, "Deck library initialized at:", libraryPath)
		fmt.Fprintln(out, "You can now add decks by copying them to this directory.")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckUseCmd)
	deckCmd.AddCommand(deckInitCmd)
}
