package main

import (
	"context"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"

	"github.com/alejandrodnm/cyhole/internal/adapters/notify"
	"github.com/alejandrodnm/cyhole/internal/adapters/storage"
)

func (a *app) historyCommand() *cli.Command {
	return &cli.Command{
		Name:      "history",
		Usage:     "Show stored price snapshots, or the latest price of a token per source",
		ArgsUsage: "[symbol|mint]",
		Flags: []cli.Flag{
			&cli.DurationFlag{Name: "since", Value: 24 * time.Hour, Usage: "how far back to look"},
			&cli.BoolFlag{Name: "table", Usage: "print each snapshot as a table"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			store, err := storage.NewSQLiteStorage(a.cfg.Storage.DSN)
			if err != nil {
				return err
			}
			defer store.Close()
			w := cmd.Root().Writer

			if cmd.Args().Present() {
				mint := resolveMints(cmd.Args().Slice()[:1])[0]
				quotes, err := store.Latest(ctx, mint)
				if err != nil {
					return err
				}
				if len(quotes) == 0 {
					fmt.Fprintf(w, "no stored prices for %s\n", mint)
					return nil
				}
				table := tablewriter.NewWriter(w)
				table.Header("Source", "Price", "Updated")
				for _, q := range quotes {
					table.Append(q.Source, q.Price.String(), q.FetchedAt.Format(time.DateTime))
				}
				table.Render()
				return nil
			}

			now := time.Now()
			snaps, err := store.History(ctx, now.Add(-cmd.Duration("since")), now)
			if err != nil {
				return err
			}
			if len(snaps) == 0 {
				fmt.Fprintln(w, "no snapshots in range")
				return nil
			}
			console := notify.NewConsoleWriter(w, cmd.Bool("table"))
			for _, s := range snaps {
				if err := console.Notify(ctx, s); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
