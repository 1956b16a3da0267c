package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/pairs/internal/game"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game in the terminal",
	Long: `Play deals sixteen cards face-down. Enter a card number to flip it;
after two flips a matching pair stays face-up and a mismatch is turned back
over. Enter q to quit.

Examples:
  pairs play
  pairs play --seed 42
  pairs play --deck daily`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}

		p := &player{
			session: s,
			in:      cmd.InOrStdin(),
			out:     cmd.OutOrStdout(),
			columns: boardColumns(),
			delay:   cfg.RevealDelay(),
			sleep:   time.Sleep,
		}
		return p.run()
	},
}

func init() {
	RootCmd.AddCommand(playCmd)
	addDealFlags(playCmd)
}

// Width of one rendered card cell including its gutter
const cellWidth = 7

// boardColumns fits all cards on one row pair when the terminal is wide enough
func boardColumns() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < 8*cellWidth+2 {
		return 4
	}
	return 8
}

// player drives a session from line-based input
type player struct {
	session *game.Session
	in      io.Reader
	out     io.Writer
	columns int
	delay   time.Duration
	sleep   func(time.Duration)
}

func (p *player) printBoard() {
	board := p.session.Board("Pairs", nil)
	board.Columns = p.columns
	fmt.Fprint(p.out, board.RenderANSI())
}

func (p *player) run() error {
	scanner := bufio.NewScanner(p.in)
	size := len(p.session.Cards())

	p.printBoard()
	for !p.session.Won() {
		fmt.Fprintf(p.out, "Card (1-%d, q to quit): ", size)
		if !scanner.Scan() {
			fmt.Fprintln(p.out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "q" || line == "quit" {
			fmt.Fprintln(p.out, "Game abandoned.")
			return nil
		}

		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > size {
			fmt.Fprintf(p.out, "Enter a number between 1 and %d.\n", size)
			continue
		}

		var outcome game.Outcome
		var flipErr error
		views := p.session.Views(func(i int) {
			outcome, flipErr = p.session.Flip(i)
		})
		if !views[n-1].Click() {
			fmt.Fprintf(p.out, "Card %d can't be flipped right now.\n", n)
			continue
		}
		if flipErr != nil {
			fmt.Fprintf(p.out, "Error: %v\n", flipErr)
			continue
		}

		p.printBoard()
		switch outcome {
		case game.OutcomeMatch:
			fmt.Fprintln(p.out, colorize.GreenString("Match!"))
		case game.OutcomeMismatch:
			fmt.Fprintln(p.out, colorize.YellowString("No match."))
			p.sleep(p.delay)
			p.session.Resolve()
			p.printBoard()
		}
	}

	fmt.Fprintf(p.out, "You found all %d pairs in %d moves and %s.\n",
		p.session.Matches(), p.session.Moves(), p.session.ElapsedText())
	return nil
}
