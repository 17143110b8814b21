package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/cameldeck/camelcards/camel"
	"github.com/cameldeck/camelcards/internal/handfile"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	totalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))
)

// RankCmd prints the full ranking for one rule variant
type RankCmd struct {
	File string `arg:"" help:"Hand listing file" type:"existingfile"`
	Mode string `help:"Rule variant to rank under" enum:"standard,wildcard" default:"standard"`
}

func (c *RankCmd) Run() error {
	hands, err := handfile.ReadFile(c.File)
	if err != nil {
		return err
	}

	mode, err := camel.ParseMode(c.Mode)
	if err != nil {
		return err
	}

	ranked, err := camel.Rank(hands, mode)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("rank"),
		headerStyle.Render("hand"),
		headerStyle.Render("category"),
		headerStyle.Render("stake"),
		headerStyle.Render("winnings"))

	var total int64
	for i, r := range ranked {
		rank := int64(i + 1)
		winnings := rank * r.Hand.Stake()
		total += winnings
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\n",
			rank,
			handStyle.Render(r.Hand.String()),
			categoryStyle.Render(r.Category.String()),
			r.Hand.Stake(),
			winnings)
	}
	w.Flush()

	fmt.Printf("\n%s\n", totalStyle.Render(fmt.Sprintf("total: %d", total)))
	return nil
}
