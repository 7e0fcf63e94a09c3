package tracker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandrodnm/cyhole/internal/application/tracker"
	"github.com/alejandrodnm/cyhole/internal/domain"
	"github.com/alejandrodnm/cyhole/internal/ports"
)

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type fakeProvider struct {
	name  string
	size  int
	price string
	err   error

	mu    sync.Mutex
	calls [][]string
}

func (f *fakeProvider) Name() string   { return f.name }
func (f *fakeProvider) BatchSize() int { return f.size }

func (f *fakeProvider) Prices(_ context.Context, mints []string) ([]domain.Quote, error) {
	f.mu.Lock()
	f.calls = append(f.calls, mints)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Quote, 0, len(mints))
	for _, m := range mints {
		out = append(out, domain.Quote{Mint: m, Source: f.name, Price: decimal.RequireFromString(f.price), FetchedAt: now})
	}
	return out, nil
}

type memStorage struct {
	saved []domain.Snapshot
	err   error
}

func (m *memStorage) SaveSnapshot(_ context.Context, s domain.Snapshot) error {
	m.saved = append(m.saved, s)
	return m.err
}

func (m *memStorage) History(context.Context, time.Time, time.Time) ([]domain.Snapshot, error) {
	return m.saved, nil
}

func (m *memStorage) Latest(context.Context, string) ([]domain.Quote, error) { return nil, nil }
func (m *memStorage) Close() error                                           { return nil }

type chanNotifier chan domain.Snapshot

func (c chanNotifier) Notify(_ context.Context, s domain.Snapshot) error {
	c <- s
	return nil
}

func TestTracker_SnapshotBatches(t *testing.T) {
	bird := &fakeProvider{name: "birdeye", size: 2, price: "10"}
	jup := &fakeProvider{name: "jupiter", size: 100, price: "11"}
	tr := tracker.New(tracker.Config{Concurrency: 2, VsToken: "USDC"},
		[]ports.PriceProvider{bird, jup}, nil, nil, clockwork.NewFakeClockAt(now))

	snap, err := tr.Snapshot(context.Background(), []string{"a", "b", "c"})
	require.NoError(t, err)

	assert.Len(t, bird.calls, 2)
	assert.ElementsMatch(t, [][]string{{"a", "b"}, {"c"}}, bird.calls)
	assert.Equal(t, [][]string{{"a", "b", "c"}}, jup.calls)

	assert.Equal(t, now, snap.TakenAt)
	assert.Equal(t, "USDC", snap.VsToken)
	require.Len(t, snap.Quotes, 6)
	assert.Equal(t, []string{"a", "b", "c"}, snap.Mints())

	spread, ok := snap.Spread("a")
	require.True(t, ok)
	assert.Equal(t, "0.1", spread.String())
}

func TestTracker_PartialFailure(t *testing.T) {
	bad := &fakeProvider{name: "birdeye", size: 10, err: errors.New("boom")}
	good := &fakeProvider{name: "jupiter", size: 10, price: "1"}
	tr := tracker.New(tracker.Config{}, []ports.PriceProvider{bad, good}, nil, nil, clockwork.NewFakeClockAt(now))

	snap, err := tr.Snapshot(context.Background(), []string{"a"})
	require.NoError(t, err)
	require.Len(t, snap.Quotes, 1)
	assert.Equal(t, "jupiter", snap.Quotes[0].Source)
}

func TestTracker_AllFail(t *testing.T) {
	boom := errors.New("boom")
	tr := tracker.New(tracker.Config{}, []ports.PriceProvider{
		&fakeProvider{name: "birdeye", size: 10, err: boom},
		&fakeProvider{name: "jupiter", size: 10, err: boom},
	}, nil, nil, clockwork.NewFakeClockAt(now))

	_, err := tr.Snapshot(context.Background(), []string{"a"})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestTracker_SnapshotInvalidInput(t *testing.T) {
	tr := tracker.New(tracker.Config{}, nil, nil, nil, nil)
	_, err := tr.Snapshot(context.Background(), []string{"a"})
	assert.Error(t, err)

	tr = tracker.New(tracker.Config{}, []ports.PriceProvider{&fakeProvider{name: "x"}}, nil, nil, nil)
	_, err = tr.Snapshot(context.Background(), nil)
	assert.Error(t, err)
}

func TestTracker_CancelledContext(t *testing.T) {
	p := &fakeProvider{name: "jupiter", size: 1, price: "1"}
	tr := tracker.New(tracker.Config{RatePerSec: 0.001}, []ports.PriceProvider{p}, nil, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tr.Snapshot(ctx, []string{"a", "b"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, p.calls)
}

func TestTracker_RunOnceSavesAndNotifies(t *testing.T) {
	store := &memStorage{err: errors.New("disk full")}
	notes := make(chanNotifier, 1)
	tr := tracker.New(tracker.Config{}, []ports.PriceProvider{&fakeProvider{name: "jupiter", size: 10, price: "2"}},
		store, notes, clockwork.NewFakeClockAt(now))

	snap, err := tr.RunOnce(context.Background(), []string{"a"})
	require.NoError(t, err)

	require.Len(t, store.saved, 1)
	assert.Equal(t, snap.ID, store.saved[0].ID)
	assert.Equal(t, snap.ID, (<-notes).ID)
}

func TestTracker_Watch(t *testing.T) {
	clock := clockwork.NewFakeClockAt(now)
	notes := make(chanNotifier, 1)
	tr := tracker.New(tracker.Config{}, []ports.PriceProvider{&fakeProvider{name: "jupiter", size: 10, price: "2"}},
		nil, notes, clock)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tr.Watch(ctx, []string{"a"}, time.Minute) }()

	first := <-notes
	clock.BlockUntil(1)
	clock.Advance(time.Minute)
	second := <-notes

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, now.Add(time.Minute), second.TakenAt)

	cancel()
	assert.NoError(t, <-done)
}
