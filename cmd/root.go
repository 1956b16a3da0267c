package cmd

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/pairs/internal/config"
	"github.com/arcanaland/pairs/internal/logger"
)

// cfg is loaded before any subcommand runs
var cfg *config.Config

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "pairs",
	Short: "A memory-matching card game",
	Long: `Pairs is a memory-matching card game. Sixteen cards are dealt face-down;
flip two at a time to find the eight matching pairs in as few moves and as
little time as possible.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configFlag, _ := cmd.Flags().GetString("config")
		config.SetConfigFilePath(configFlag)

		loaded, err := config.LoadConfig()
		if err != nil {
			return err
		}
		cfg = loaded

		level := cfg.LogLevel
		if cmd.Flags().Changed("log-level") {
			level, _ = cmd.Flags().GetString("log-level")
		}
		logger.Setup(level, cmd.ErrOrStderr())

		noColor, _ := cmd.Flags().GetBool("no-color")
		applyColorMode(cfg.Color, noColor)
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().String("config", "", "Path to the config file (default $XDG_CONFIG_HOME/pairs/config.toml)")
	RootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn or error")
	RootCmd.PersistentFlags().Bool("no-color", false, "Disable coloured output")

	RootCmd.AddCommand(validateCmd)
}

// applyColorMode sets fatih/color's global switch from the configured mode
func applyColorMode(mode string, noColor bool) {
	mode = strings.ToLower(mode)
	switch {
	case noColor || mode == config.ColorNever:
		color.NoColor = true
	case mode == config.ColorAlways:
		color.NoColor = false
	default:
		color.NoColor = os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stdout.Fd()))
	}
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}
