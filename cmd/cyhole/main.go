package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"

	"github.com/alejandrodnm/cyhole/config"
)

// app guarda la configuración cargada en Before para los subcomandos.
type app struct {
	cfg *config.Config
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{}
	if err := a.command().Run(ctx, os.Args); err != nil {
		slog.Error("cyhole failed", "err", err)
		os.Exit(1)
	}
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:  "cyhole",
		Usage: "Query Solana price and chain data from Birdeye, Jupiter, SolanaFM and Solscan",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file",
				Sources: cli.EnvVars("CYHOLE_CONFIG"),
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "set log level to debug",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "log format: text|json|pretty (overrides config)",
			},
			&cli.BoolFlag{
				Name:  "mock",
				Usage: "serve responses from local fixtures instead of the real APIs",
			},
		},
		Before: a.before,
		Commands: []*cli.Command{
			a.priceCommand(),
			a.quoteCommand(),
			a.historyCommand(),
			a.tokensCommand(),
		},
	}
}

func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	path := cmd.String("config")
	cfg, err := config.Load(path)
	if err != nil {
		return ctx, err
	}

	if cmd.Bool("verbose") {
		cfg.Log.Level = "debug"
	}
	if f := cmd.String("format"); f != "" {
		cfg.Log.Format = f
	}
	if cmd.Bool("mock") {
		cfg.Mock.Enabled = true
	}
	setupLogger(cfg.Log)

	slog.Debug("cyhole starting",
		"config", path,
		"mock", cfg.Mock.Enabled,
		"storage", cfg.Storage.DSN,
	)
	a.cfg = cfg
	return ctx, nil
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch {
	case cfg.Format == "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	case cfg.Format == "pretty" || isatty.IsTerminal(os.Stderr.Fd()):
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
		})
	default:
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
