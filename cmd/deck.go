package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/pairs/internal/deck"
	"github.com/arcanaland/pairs/internal/view"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Deal, save and inspect card layouts",
	Long: `Commands for dealing card layouts and managing the layouts saved in your
deck library, so that a particular deal can be replayed with 'pairs play --deck'.`,
}

// deckNewCmd represents the deck new command
var deckNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Deal a shuffled layout",
	Long: `New deals a shuffled layout. Without --save or --out the layout is printed
as TOML.

Examples:
  pairs deck new --seed 7
  pairs deck new --save daily
  pairs deck new --out ./layout.toml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cards, err := dealCards(cmd)
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		layout := deck.NewLayout(name, cards)

		out, _ := cmd.Flags().GetString("out")
		save, _ := cmd.Flags().GetString("save")
		if save != "" {
			out = filepath.Join(cfg.GetDeckLibraryPath(), save+".toml")
			if layout.Name == "" {
				layout.Name = save
			}
		}

		if out == "" {
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(layout.Config())
		}

		if err := layout.Save(out); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Layout %s saved to %s\n", layout.ID, out)
		return nil
	},
}

// deckShowCmd represents the deck show command
var deckShowCmd = &cobra.Command{
	Use:   "show [deck]",
	Short: "Show a saved layout face-up",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckPath, err := cfg.GetDeckPath(args[0])
		if err != nil {
			return err
		}

		layout, err := deck.Load(deckPath)
		if err != nil {
			return fmt.Errorf("error loading deck: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, colorize.CyanString("Layout: ")+colorize.HiWhiteString(layout.ID))
		if layout.Name != "" {
			fmt.Fprintln(out, colorize.CyanString("Name:   ")+colorize.HiWhiteString(layout.Name))
		}
		fmt.Fprintln(out)

		board := view.Board{Columns: 4}
		for _, c := range layout.Cards {
			board.Cards = append(board.Cards, view.CardView{Card: c, IsFlipped: true, Disabled: true})
		}
		fmt.Fprint(out, board.RenderANSI())
		return nil
	},
}

// deckListCmd represents the deck ls command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List layouts in your deck library",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := cfg.GetDeckLibraryPath()

		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Fprintf(out, "Deck library at %s does not exist.\n", libraryPath)
			fmt.Fprintln(out, "Run 'pairs deck new --save <name>' to create it.")
			return nil
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			return fmt.Errorf("error reading deck library: %w", err)
		}

		found := 0
		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
				continue
			}

			layout, err := deck.Load(filepath.Join(libraryPath, entry.Name()))
			if err != nil {
				// Not a valid layout, skip
				continue
			}

			found++
			fmt.Fprintf(out, "  %s (%s)\n", strings.TrimSuffix(entry.Name(), ".toml"), layout.ID)
		}

		if found == 0 {
			fmt.Fprintln(out, "No layouts found in your deck library.")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckNewCmd)
	deckCmd.AddCommand(deckShowCmd)
	deckCmd.AddCommand(deckListCmd)

	addDealFlags(deckNewCmd)
	deckNewCmd.Flags().String("name", "", "Name stored in the layout")
	deckNewCmd.Flags().String("save", "", "Save the layout to the deck library under this name")
	deckNewCmd.Flags().StringP("out", "o", "", "Write the layout to a file")
}
