package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandrodnm/cyhole/internal/adapters/storage"
	"github.com/alejandrodnm/cyhole/internal/domain"
)

const (
	solMint = "So11111111111111111111111111111111111111112"
	jupMint = "JUPyiwrYJFskUPiHa7hkeR8VUtAeFoSYbKedZNsDvCN"
)

var base = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func quote(mint, source, price string, at time.Time) domain.Quote {
	return domain.Quote{
		Mint:      mint,
		Symbol:    "SYM",
		Source:    source,
		Price:     decimal.RequireFromString(price),
		FetchedAt: at,
	}
}

func newStorage(t *testing.T) *storage.SQLiteStorage {
	t.Helper()
	db, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSQLiteStorage_SaveAndHistory(t *testing.T) {
	db := newStorage(t)
	ctx := context.Background()

	first := domain.NewSnapshot(base, "USDC", []domain.Quote{
		quote(solMint, "birdeye", "150.123456789012345678", base),
		quote(solMint, "jupiter", "150.2", base),
	})
	second := domain.NewSnapshot(base.Add(time.Minute), "USDC", []domain.Quote{
		quote(jupMint, "jupiter", "1.02", base.Add(time.Minute)),
	})
	require.NoError(t, db.SaveSnapshot(ctx, first))
	require.NoError(t, db.SaveSnapshot(ctx, second))

	history, err := db.History(ctx, base.Add(-time.Hour), base.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, history, 2)

	// Del más reciente al más antiguo
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)
	assert.Equal(t, base, history[1].TakenAt)
	assert.Equal(t, "USDC", history[1].VsToken)

	require.Len(t, history[1].Quotes, 2)
	assert.Equal(t, "birdeye", history[1].Quotes[0].Source)
	assert.Equal(t, "150.123456789012345678", history[1].Quotes[0].Price.String())
	assert.Equal(t, base, history[1].Quotes[0].FetchedAt)
}

func TestSQLiteStorage_HistoryRange(t *testing.T) {
	db := newStorage(t)
	ctx := context.Background()

	require.NoError(t, db.SaveSnapshot(ctx, domain.NewSnapshot(base, "", nil)))

	history, err := db.History(ctx, base.Add(time.Minute), base.Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, history)

	history, err = db.History(ctx, base, base)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Empty(t, history[0].Quotes)
}

func TestSQLiteStorage_Latest(t *testing.T) {
	db := newStorage(t)
	ctx := context.Background()

	for i, price := range []string{"148", "149", "150"} {
		at := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, db.SaveSnapshot(ctx, domain.NewSnapshot(at, "", []domain.Quote{
			quote(solMint, "birdeye", price, at),
		})))
	}
	require.NoError(t, db.SaveSnapshot(ctx, domain.NewSnapshot(base, "", []domain.Quote{
		quote(solMint, "jupiter", "147.5", base),
		quote(jupMint, "jupiter", "1", base),
	})))

	latest, err := db.Latest(ctx, solMint)
	require.NoError(t, err)
	require.Len(t, latest, 2)

	assert.Equal(t, "birdeye", latest[0].Source)
	assert.Equal(t, "150", latest[0].Price.String())
	assert.Equal(t, "jupiter", latest[1].Source)
	assert.Equal(t, "147.5", latest[1].Price.String())
}

func TestSQLiteStorage_LatestUnknownMint(t *testing.T) {
	db := newStorage(t)

	latest, err := db.Latest(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, latest)
}

func TestSQLiteStorage_DuplicateSnapshot(t *testing.T) {
	db := newStorage(t)
	ctx := context.Background()
	snap := domain.NewSnapshot(base, "", []domain.Quote{quote(solMint, "birdeye", "1", base)})

	require.NoError(t, db.SaveSnapshot(ctx, snap))
	assert.Error(t, db.SaveSnapshot(ctx, snap))

	history, err := db.History(ctx, base, base)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Len(t, history[0].Quotes, 1)
}
