package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/pairs/internal/view"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the board as an HTML page",
	Long: `Render deals a board and writes it as a standalone HTML page. Cards listed
with --flip are flipped in order first, so a page can show any point of a game.

Examples:
  pairs render --seed 42 --out board.html
  pairs render --deck daily --flip 1,2,3,4`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}

		flips, _ := cmd.Flags().GetString("flip")
		positions, err := parsePositions(flips)
		if err != nil {
			return err
		}
		for _, n := range positions {
			if s.Pending() {
				s.Resolve()
			}
			if _, err := s.Flip(n - 1); err != nil {
				return fmt.Errorf("error flipping card %d: %w", n, err)
			}
		}

		board := s.Board("Pairs", nil)
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			return board.RenderHTML(cmd.OutOrStdout())
		}
		return writePage(out, board)
	},
}

// writePage renders the board into a new file at path
func writePage(path string, board view.Board) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error writing %s: %w", path, cerr)
		}
	}()

	return board.RenderHTML(file)
}

func init() {
	RootCmd.AddCommand(renderCmd)
	addDealFlags(renderCmd)
	renderCmd.Flags().String("flip", "", "Comma-separated card numbers to flip before rendering")
	renderCmd.Flags().StringP("out", "o", "", "Write the page to a file instead of stdout")
}

// parsePositions parses a comma-separated list of 1-based card numbers
func parsePositions(list string) ([]int, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}

	var positions []int
	for _, field := range strings.Split(list, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("invalid card number %q", field)
		}
		positions = append(positions, n)
	}
	return positions, nil
}
