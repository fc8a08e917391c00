package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "btctracker",
		Usage: "Bitcoin address transaction tracker",
		Description: `Fetches a Bitcoin address's transaction history from a public chain API,
caches it in memory, and serves filtered tables and time-bucketed series.`,
		Commands: []*cli.Command{
			serveCommand(),
			fetchCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
