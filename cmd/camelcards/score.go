package main

import (
	"fmt"

	"github.com/cameldeck/camelcards/camel"
	"github.com/cameldeck/camelcards/internal/handfile"
)

// ScoreCmd scores a hand listing file
type ScoreCmd struct {
	File string `arg:"" help:"Hand listing file" type:"existingfile"`
	Mode string `help:"Restrict output to one variant" enum:"standard,wildcard,both" default:"both"`
}

func (c *ScoreCmd) Run() error {
	hands, err := handfile.ReadFile(c.File)
	if err != nil {
		return err
	}

	if c.Mode != "both" {
		mode, err := camel.ParseMode(c.Mode)
		if err != nil {
			return err
		}
		total, err := camel.Score(hands, mode)
		if err != nil {
			return err
		}
		fmt.Println(total)
		return nil
	}

	totals, err := camel.ScoreBoth(hands)
	if err != nil {
		return err
	}
	fmt.Printf("standard: %d\n", totals.Standard)
	fmt.Printf("wildcard: %d\n", totals.Wildcard)
	return nil
}
