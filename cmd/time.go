package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arcanaland/pairs/internal/clock"
)

var timeCmd = &cobra.Command{
	Use:   "time [seconds]",
	Short: "Format a number of seconds the way the game clock shows it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seconds, err := strconv.Atoi(args[0])
		if err != nil || seconds < 0 {
			return fmt.Errorf("seconds must be a non-negative integer: %s", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), clock.FormatTime(seconds))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(timeCmd)
}
