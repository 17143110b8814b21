package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cameldeck/camelcards/internal/handfile"
	"github.com/cameldeck/camelcards/internal/tui"
)

// BrowseCmd opens an interactive leaderboard for a hand listing
type BrowseCmd struct {
	File string `arg:"" help:"Hand listing file" type:"existingfile"`
}

func (c *BrowseCmd) Run() error {
	hands, err := handfile.ReadFile(c.File)
	if err != nil {
		return err
	}

	model, err := tui.New(hands)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
