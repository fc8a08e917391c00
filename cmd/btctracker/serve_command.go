package main

import (
	"github.com/urfave/cli/v2"

	"github.com/addrwatch/btctracker/internal/server"
	"github.com/addrwatch/btctracker/internal/utils/config"
	"github.com/addrwatch/btctracker/internal/utils/logger"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API server",
		Action: func(c *cli.Context) error {
			appConfig := config.New()
			logger := logger.New(appConfig.Environment)

			server.Init(appConfig, logger)
			return nil
		},
	}
}
