// Package tracker orquesta una ronda de precios: reparte los mints en lotes
// por proveedor, los consulta en paralelo y guarda el snapshot resultante.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/alejandrodnm/cyhole/internal/domain"
	"github.com/alejandrodnm/cyhole/internal/ports"
)

// Config contiene la configuración del tracker.
type Config struct {
	Concurrency int     // llamadas simultáneas (0 = una por lote)
	RatePerSec  float64 // ritmo máximo de llamadas (0 = sin límite)
	VsToken     string
}

// Tracker es el orquestador de rondas de precios.
type Tracker struct {
	cfg       Config
	providers []ports.PriceProvider
	storage   ports.SnapshotStorage
	notifier  ports.Notifier
	limiter   *rate.Limiter
	clock     clockwork.Clock
}

// New crea un Tracker. storage y notifier pueden ser nil.
func New(
	cfg Config,
	providers []ports.PriceProvider,
	storage ports.SnapshotStorage,
	notifier ports.Notifier,
	clock clockwork.Clock,
) *Tracker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	limit := rate.Inf
	if cfg.RatePerSec > 0 {
		limit = rate.Limit(cfg.RatePerSec)
	}
	return &Tracker{
		cfg:       cfg,
		providers: providers,
		storage:   storage,
		notifier:  notifier,
		limiter:   rate.NewLimiter(limit, 1),
		clock:     clock,
	}
}

type batch struct {
	provider ports.PriceProvider
	mints    []string
}

// Snapshot consulta todos los proveedores y devuelve las quotes obtenidas.
// Un lote que falla se registra y se descarta; solo si fallan todos
// devuelve error.
func (t *Tracker) Snapshot(ctx context.Context, mints []string) (domain.Snapshot, error) {
	if len(mints) == 0 {
		return domain.Snapshot{}, errors.New("tracker.Snapshot: no mints given")
	}
	if len(t.providers) == 0 {
		return domain.Snapshot{}, errors.New("tracker.Snapshot: no price providers configured")
	}

	batches := t.batches(mints)
	start := t.clock.Now()

	var (
		mu       sync.Mutex
		quotes   []domain.Quote
		failures []error
	)

	g, gctx := errgroup.WithContext(ctx)
	if t.cfg.Concurrency > 0 {
		g.SetLimit(t.cfg.Concurrency)
	}
	for _, b := range batches {
		b := b
		g.Go(func() error {
			if err := t.limiter.Wait(gctx); err != nil {
				return err
			}
			got, err := b.provider.Prices(gctx, b.mints)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				slog.Warn("price batch failed",
					"provider", b.provider.Name(),
					"mints", len(b.mints),
					"err", err,
				)
				failures = append(failures, err)
				return nil
			}
			quotes = append(quotes, got...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.Snapshot{}, fmt.Errorf("tracker.Snapshot: %w", err)
	}
	if len(failures) == len(batches) {
		return domain.Snapshot{}, fmt.Errorf("tracker.Snapshot: all providers failed: %w", errors.Join(failures...))
	}

	snap := domain.NewSnapshot(start, t.cfg.VsToken, quotes)
	slog.Debug("snapshot taken",
		"batches", len(batches),
		"failed", len(failures),
		"quotes", len(snap.Quotes),
		"duration", t.clock.Since(start).Round(time.Millisecond),
	)
	return snap, nil
}

// batches reparte los mints de cada proveedor según su BatchSize.
func (t *Tracker) batches(mints []string) []batch {
	var out []batch
	for _, p := range t.providers {
		size := p.BatchSize()
		if size <= 0 {
			size = len(mints)
		}
		for i := 0; i < len(mints); i += size {
			end := min(i+size, len(mints))
			out = append(out, batch{provider: p, mints: mints[i:end]})
		}
	}
	return out
}

// RunOnce toma un snapshot, lo persiste y lo notifica. Los errores de
// storage y notifier se registran sin abortar.
func (t *Tracker) RunOnce(ctx context.Context, mints []string) (domain.Snapshot, error) {
	snap, err := t.Snapshot(ctx, mints)
	if err != nil {
		return snap, err
	}

	if t.storage != nil {
		if err := t.storage.SaveSnapshot(ctx, snap); err != nil {
			slog.Warn("storage error", "err", err)
		}
	}
	if t.notifier != nil {
		if err := t.notifier.Notify(ctx, snap); err != nil {
			slog.Warn("notifier error", "err", err)
		}
	}

	slog.Info("price round complete",
		"snapshot", snap.ID,
		"mints", len(snap.Mints()),
		"quotes", len(snap.Quotes),
	)
	return snap, nil
}

// Watch ejecuta una ronda inmediatamente y luego una por intervalo hasta
// que el contexto se cancele.
func (t *Tracker) Watch(ctx context.Context, mints []string, interval time.Duration) error {
	slog.Info("tracker starting",
		"interval", interval,
		"providers", len(t.providers),
		"mints", len(mints),
		"concurrency", t.cfg.Concurrency,
	)

	ticker := t.clock.NewTicker(interval)
	defer ticker.Stop()

	if _, err := t.RunOnce(ctx, mints); err != nil {
		slog.Error("price round failed", "err", err)
	}

	for {
		select {
		case <-ctx.Done():
			slog.Info("tracker stopped")
			return nil
		case <-ticker.Chan():
			if _, err := t.RunOnce(ctx, mints); err != nil {
				slog.Error("price round failed", "err", err)
			}
		}
	}
}
