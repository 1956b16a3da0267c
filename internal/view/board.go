package view

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Board is a grid of card views plus the status line shown above it
type Board struct {
	Title   string
	Columns int
	Moves   int
	Matches int
	Elapsed string
	Cards   []CardView
}

func (b Board) columns() int {
	if b.Columns <= 0 {
		return 4
	}
	return b.Columns
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
.board { display: grid; grid-template-columns: repeat({{.Columns}}, 6rem); gap: 0.75rem; }
.memory-card { width: 6rem; height: 6rem; padding: 0; border: 0; background: none; cursor: pointer; }
.memory-card:disabled { cursor: default; }
.card-face { width: 100%; height: 100%; border-radius: 0.5rem; display: flex; align-items: center; justify-content: center; }
.bg-muted { background: #3f3f46; }
.bg-card { background: #fafafa; }
.bg-secondary { background: #d4d4d8; opacity: 0.7; }
</style>
</head>
<body>
<header><h1>{{.Title}}</h1><p class="status"><span class="moves">Moves: {{.Moves}}</span> <span class="matches">Pairs: {{.Matches}}</span> <span class="time">Time: {{.Elapsed}}</span></p></header>
<main class="board">
{{range .Cards}}{{.}}
{{end}}</main>
</body>
</html>
`))

type pageData struct {
	Title   string
	Columns int
	Moves   int
	Matches int
	Elapsed string
	Cards   []template.HTML
}

// RenderHTML writes the board as a standalone HTML page
func (b Board) RenderHTML(w io.Writer) error {
	data := pageData{
		Title:   b.Title,
		Columns: b.columns(),
		Moves:   b.Moves,
		Matches: b.Matches,
		Elapsed: b.Elapsed,
		Cards:   make([]template.HTML, 0, len(b.Cards)),
	}

	for _, v := range b.Cards {
		var sb strings.Builder
		if err := v.RenderHTML(&sb); err != nil {
			return err
		}
		// Card fragments were escaped by the card template.
		data.Cards = append(data.Cards, template.HTML(sb.String()))
	}

	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("error rendering board: %w", err)
	}
	return nil
}

// RenderANSI returns the board as numbered terminal rows
func (b Board) RenderANSI() string {
	var sb strings.Builder

	label := color.New(color.FgCyan)
	value := color.New(color.FgHiWhite)
	fmt.Fprintf(&sb, "%s%s  %s%s  %s%s\n\n",
		label.Sprint("Moves: "), value.Sprint(b.Moves),
		label.Sprint("Pairs: "), value.Sprint(b.Matches),
		label.Sprint("Time: "), value.Sprint(b.Elapsed))

	cols := b.columns()
	for row := 0; row*cols < len(b.Cards); row++ {
		start := row * cols
		end := min(start+cols, len(b.Cards))

		// Numbers are 1-based to match what players type
		for i := start; i < end; i++ {
			fmt.Fprintf(&sb, "  %-5s", fmt.Sprintf("%d", i+1))
		}
		sb.WriteString("\n")
		for i := start; i < end; i++ {
			sb.WriteString("  ")
			sb.WriteString(b.Cards[i].RenderANSI())
		}
		sb.WriteString("\n\n")
	}

	return sb.String()
}
