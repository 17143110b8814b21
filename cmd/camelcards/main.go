package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Score   ScoreCmd         `cmd:"" help:"Score a hand listing under both rule variants"`
	Rank    RankCmd          `cmd:"" help:"Print the ranked hands for one rule variant"`
	Browse  BrowseCmd        `cmd:"" help:"Browse ranked hands in an interactive leaderboard"`
	Serve   ServeCmd         `cmd:"" help:"Run the hand-scoring service"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("camelcards"),
		kong.Description("Rank and score Camel Cards hand listings"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
