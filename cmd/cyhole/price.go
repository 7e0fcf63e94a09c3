package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/alejandrodnm/cyhole/birdeye"
	"github.com/alejandrodnm/cyhole/core/token"
	"github.com/alejandrodnm/cyhole/internal/adapters/notify"
	"github.com/alejandrodnm/cyhole/internal/adapters/pricefeed"
	"github.com/alejandrodnm/cyhole/internal/adapters/storage"
	"github.com/alejandrodnm/cyhole/internal/application/tracker"
	"github.com/alejandrodnm/cyhole/internal/ports"
	"github.com/alejandrodnm/cyhole/jupiter"
)

var defaultMints = []string{token.WSOL.Address, token.USDC.Address, token.JUP.Address, token.BONK.Address}

func (a *app) priceCommand() *cli.Command {
	return &cli.Command{
		Name:      "price",
		Usage:     "Fetch prices from several providers and compare them",
		ArgsUsage: "[symbol|mint ...]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "providers",
				Value: []string{birdeye.Name, jupiter.Name},
				Usage: "price providers to query",
			},
			&cli.DurationFlag{
				Name:  "interval",
				Usage: "repeat every interval until interrupted (0 = once)",
			},
			&cli.BoolFlag{
				Name:  "table",
				Usage: "print a full table instead of one line per round",
			},
			&cli.BoolFlag{
				Name:  "no-store",
				Usage: "do not persist snapshots",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			providers, closeAll, err := a.priceProviders(cmd.StringSlice("providers"))
			if err != nil {
				return err
			}
			defer closeAll()

			var store ports.SnapshotStorage
			if !cmd.Bool("no-store") {
				s, err := storage.NewSQLiteStorage(a.cfg.Storage.DSN)
				if err != nil {
					return err
				}
				defer s.Close()
				store = s
			}

			t := tracker.New(tracker.Config{
				Concurrency: a.cfg.Tracker.Concurrency,
				RatePerSec:  a.cfg.Tracker.RatePerSec,
				VsToken:     a.cfg.Tracker.VsToken,
			}, providers, store, notify.NewConsoleWriter(cmd.Root().Writer, cmd.Bool("table")), nil)

			mints := resolveMints(cmd.Args().Slice())
			if interval := cmd.Duration("interval"); interval > 0 {
				return t.Watch(ctx, mints, interval)
			}
			_, err = t.RunOnce(ctx, mints)
			return err
		},
	}
}

// priceProviders construye los proveedores pedidos. La función devuelta
// cierra las sesiones abiertas.
func (a *app) priceProviders(names []string) ([]ports.PriceProvider, func(), error) {
	var (
		providers []ports.PriceProvider
		closers   []func() error
	)
	closeAll := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				slog.Debug("close provider", "err", err)
			}
		}
	}

	for _, name := range names {
		opts, err := a.cfg.ProviderOptions(name)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		switch name {
		case birdeye.Name:
			client := birdeye.New(opts).WithChain(birdeye.Chain(a.cfg.Birdeye.Chain))
			providers = append(providers, pricefeed.NewBirdeye(client))
		case jupiter.Name:
			client := jupiter.New(opts)
			if err := client.Open(); err != nil {
				closeAll()
				return nil, nil, err
			}
			closers = append(closers, client.Close)
			providers = append(providers, pricefeed.NewJupiter(client, a.cfg.Tracker.VsToken))
		default:
			closeAll()
			return nil, nil, fmt.Errorf("provider %q does not serve prices", name)
		}
	}
	return providers, closeAll, nil
}

// resolveMints traduce símbolos conocidos a mints. SOL se cotiza por su
// mint envuelto. Sin argumentos devuelve la lista por defecto.
func resolveMints(args []string) []string {
	if len(args) == 0 {
		return defaultMints
	}
	mints := make([]string, 0, len(args))
	for _, arg := range args {
		mint := token.Resolve(token.Solana, arg)
		if mint == token.SOL.Address {
			mint = token.WSOL.Address
		}
		mints = append(mints, mint)
	}
	return mints
}
