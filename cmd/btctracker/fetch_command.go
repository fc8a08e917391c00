package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/urfave/cli/v2"

	"github.com/addrwatch/btctracker/internal/analyzer"
	"github.com/addrwatch/btctracker/internal/btcrpc"
	"github.com/addrwatch/btctracker/internal/cache"
	"github.com/addrwatch/btctracker/internal/controller"
	"github.com/addrwatch/btctracker/internal/model"
	"github.com/addrwatch/btctracker/internal/utils/config"
	"github.com/addrwatch/btctracker/internal/utils/logger"
)

func fetchCommand() *cli.Command {
	return &cli.Command{
		Name:      "fetch",
		Usage:     "Fetch an address's history once and print the filtered table and series",
		ArgsUsage: "<address>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "window",
				Usage: "Named date window: all, 7d, 30d, 90d, ytd, 1y",
				Value: "all",
			},
			&cli.StringFlag{
				Name:  "hash",
				Usage: "Keep transactions whose hash contains this substring",
			},
			&cli.Float64Flag{
				Name:  "min-amount",
				Usage: "Minimum amount in BTC",
			},
			&cli.Float64Flag{
				Name:  "max-amount",
				Usage: "Maximum amount in BTC",
			},
			&cli.StringFlag{
				Name:  "group-by",
				Usage: "Series bucket: day, week, month, year",
				Value: "month",
			},
		},
		Action: func(c *cli.Context) error {
			address := c.Args().First()
			if address == "" {
				return fmt.Errorf("address is required")
			}

			appConfig := config.New()
			log := logger.New(appConfig.Environment)

			ctrl := controller.New(cache.New(), btcrpc.New(appConfig, log), log, nil)

			result, err := ctrl.Fetch(address)
			if err != nil {
				return err
			}
			fmt.Printf("Fetched %d transactions for %s\n\n", result.TxCount, result.Address)

			criteria, err := criteriaFromFlags(c)
			if err != nil {
				return err
			}

			listing := ctrl.Transactions(criteria)
			printTable(listing)
			printSeries(listing)
			return nil
		},
	}
}

func criteriaFromFlags(c *cli.Context) (analyzer.FilterCriteria, error) {
	criteria := analyzer.FilterCriteria{
		Window:    analyzer.TimeWindow(c.String("window")),
		HashQuery: c.String("hash"),
		GroupBy:   model.Grouping(c.String("group-by")),
	}

	if c.IsSet("min-amount") {
		amount, err := btcutil.NewAmount(c.Float64("min-amount"))
		if err != nil {
			return criteria, fmt.Errorf("invalid min-amount: %w", err)
		}
		criteria.MinAmount = &amount
	}
	if c.IsSet("max-amount") {
		amount, err := btcutil.NewAmount(c.Float64("max-amount"))
		if err != nil {
			return criteria, fmt.Errorf("invalid max-amount: %w", err)
		}
		criteria.MaxAmount = &amount
	}

	return criteria, nil
}

func printTable(listing *controller.TransactionsResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "HASH\tDATE\tAMOUNT (BTC)")
	for _, r := range listing.Transactions {
		fmt.Fprintf(w, "%s\t%s\t%.8f\n", r.Hash, r.Timestamp.Format("2006-01-02 15:04"), r.AmountBTC())
	}
	w.Flush()
	fmt.Printf("\n%d transaction(s) after filtering\n", len(listing.Transactions))
}

func printSeries(listing *controller.TransactionsResult) {
	if len(listing.Series.Points) == 0 {
		return
	}

	fmt.Printf("\nSeries (%s chart):\n", listing.Series.Chart)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "BUCKET\tCOUNT\tTOTAL (BTC)")
	for _, p := range listing.Series.Points {
		fmt.Fprintf(w, "%s\t%d\t%.8f\n", p.Bucket.Format("2006-01-02"), p.Count, p.Total.ToBTC())
	}
	w.Flush()
}
