package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/arcanaland/fortune/internal/config"
	"github.com/arcanaland/fortune/internal/deck"
	"github.com/arcanaland/fortune/internal/render"
	"github.com/spf13/cobra"
)

// appConfig is loaded once before any command runs
var appConfig *config.Config

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "fortune",
	Short: "Play Fortune's Foundation, a tarot patience, in the terminal",
	Long: `Fortune is a terminal version of a tarot patience in the style of Fortune's Foundation.
The major arcana are built from both ends toward the middle, the four suits are built
upward through a single shared reserve slot, and cards reaching their foundation are
moved there automatically.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		appConfig = cfg

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// newRenderer builds a renderer for stdout from the loaded config
func newRenderer() (*render.Renderer, error) {
	opts := render.OptionsFromConfig(appConfig, os.Stdout)

	namesPath, err := appConfig.GetNamesPath()
	if err != nil {
		return nil, err
	}
	names, err := deck.Load(namesPath)
	if err != nil {
		return nil, fmt.Errorf("error loading card names: %w", err)
	}
	opts.Names = names

	return render.NewRenderer(opts), nil
}
