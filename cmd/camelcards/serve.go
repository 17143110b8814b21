package main

import (
	"errors"
	"net/http"

	"github.com/coder/quartz"

	"github.com/cameldeck/camelcards/cmd/camelcards/shared"
	"github.com/cameldeck/camelcards/internal/server"
)

// ServeCmd runs the hand-scoring service
type ServeCmd struct {
	Config string `help:"Path to HCL config file" default:"camelcards.hcl"`
	Addr   string `help:"Override the configured listen address"`
	Debug  bool   `help:"Enable debug logging"`
}

func (c *ServeCmd) Run() error {
	cfg, err := server.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	if c.Addr != "" {
		cfg.Server.Addr = c.Addr
	}
	if c.Debug {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := shared.SetupLoggerWithLevel(cfg.Log.Level)
	if err != nil {
		return err
	}

	ctx := shared.SetupSignalHandler(logger)
	srv := server.New(cfg, logger, quartz.NewReal())

	if err := srv.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
