package storage

// sqlite.go guarda un snapshot por ronda de precios y sus quotes.
//
//   - `snapshots`: una fila por ronda (id uuid, instante, token de cotización).
//   - `quotes`: una fila por (snapshot, mint, fuente). El precio va como
//     TEXT para no perder precisión decimal.
//   - Los instantes se guardan en milisegundos unix.

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/alejandrodnm/cyhole/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
    id       TEXT    PRIMARY KEY,
    taken_at INTEGER NOT NULL,
    vs_token TEXT    NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS quotes (
    snapshot_id TEXT    NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
    mint        TEXT    NOT NULL,
    symbol      TEXT    NOT NULL DEFAULT '',
    source      TEXT    NOT NULL,
    price       TEXT    NOT NULL,
    fetched_at  INTEGER NOT NULL,
    PRIMARY KEY (snapshot_id, mint, source)
);

CREATE INDEX IF NOT EXISTS idx_snapshots_at ON snapshots(taken_at DESC);
CREATE INDEX IF NOT EXISTS idx_quotes_mint  ON quotes(mint, source, fetched_at DESC);
`

type snapshotRow struct {
	ID      uuid.UUID `db:"id"`
	TakenAt int64     `db:"taken_at"`
	VsToken string    `db:"vs_token"`
}

type quoteRow struct {
	SnapshotID uuid.UUID       `db:"snapshot_id"`
	Mint       string          `db:"mint"`
	Symbol     string          `db:"symbol"`
	Source     string          `db:"source"`
	Price      decimal.Decimal `db:"price"`
	FetchedAt  int64           `db:"fetched_at"`
}

func (r quoteRow) quote() domain.Quote {
	return domain.Quote{
		Mint:      r.Mint,
		Symbol:    r.Symbol,
		Source:    r.Source,
		Price:     r.Price,
		FetchedAt: time.UnixMilli(r.FetchedAt).UTC(),
	}
}

// SQLiteStorage implementa ports.SnapshotStorage usando SQLite (pure Go, sin CGo).
type SQLiteStorage struct {
	db *sqlx.DB
}

// NewSQLiteStorage abre (o crea) la base de datos en la ruta dada y aplica
// el schema.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage.NewSQLiteStorage: open %q: %w", path, err)
	}
	db.SetMaxOpenConns(1) // SQLite es single-writer
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage.NewSQLiteStorage: apply schema: %w", err)
	}
	return &SQLiteStorage{db: db}, nil
}

// SaveSnapshot persiste el snapshot y sus quotes en una transacción.
func (s *SQLiteStorage) SaveSnapshot(ctx context.Context, snapshot domain.Snapshot) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage.SaveSnapshot: begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.NamedExecContext(ctx,
		`INSERT INTO snapshots (id, taken_at, vs_token) VALUES (:id, :taken_at, :vs_token)`,
		snapshotRow{ID: snapshot.ID, TakenAt: snapshot.TakenAt.UnixMilli(), VsToken: snapshot.VsToken},
	); err != nil {
		return fmt.Errorf("storage.SaveSnapshot: insert snapshot: %w", err)
	}

	if len(snapshot.Quotes) > 0 {
		rows := make([]quoteRow, 0, len(snapshot.Quotes))
		for _, q := range snapshot.Quotes {
			rows = append(rows, quoteRow{
				SnapshotID: snapshot.ID,
				Mint:       q.Mint,
				Symbol:     q.Symbol,
				Source:     q.Source,
				Price:      q.Price,
				FetchedAt:  q.FetchedAt.UnixMilli(),
			})
		}
		if _, err := tx.NamedExecContext(ctx, `
			INSERT INTO quotes (snapshot_id, mint, symbol, source, price, fetched_at)
			VALUES (:snapshot_id, :mint, :symbol, :source, :price, :fetched_at)
		`, rows); err != nil {
			return fmt.Errorf("storage.SaveSnapshot: insert quotes: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage.SaveSnapshot: commit: %w", err)
	}
	return nil
}

// History devuelve los snapshots de [from, to], del más reciente al más antiguo.
func (s *SQLiteStorage) History(ctx context.Context, from, to time.Time) ([]domain.Snapshot, error) {
	var snaps []snapshotRow
	if err := s.db.SelectContext(ctx, &snaps, `
		SELECT id, taken_at, vs_token FROM snapshots
		WHERE taken_at BETWEEN ? AND ?
		ORDER BY taken_at DESC
	`, from.UnixMilli(), to.UnixMilli()); err != nil {
		return nil, fmt.Errorf("storage.History: query snapshots: %w", err)
	}
	if len(snaps) == 0 {
		return nil, nil
	}

	ids := make([]string, len(snaps))
	for i, r := range snaps {
		ids[i] = r.ID.String()
	}
	query, args, err := sqlx.In(`
		SELECT snapshot_id, mint, symbol, source, price, fetched_at FROM quotes
		WHERE snapshot_id IN (?)
		ORDER BY mint, source
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("storage.History: build query: %w", err)
	}
	var quotes []quoteRow
	if err := s.db.SelectContext(ctx, &quotes, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("storage.History: query quotes: %w", err)
	}

	byID := make(map[uuid.UUID][]domain.Quote, len(snaps))
	for _, q := range quotes {
		byID[q.SnapshotID] = append(byID[q.SnapshotID], q.quote())
	}

	out := make([]domain.Snapshot, 0, len(snaps))
	for _, r := range snaps {
		out = append(out, domain.Snapshot{
			ID:      r.ID,
			TakenAt: time.UnixMilli(r.TakenAt).UTC(),
			VsToken: r.VsToken,
			Quotes:  byID[r.ID],
		})
	}
	return out, nil
}

// Latest devuelve la quote más reciente de cada fuente para un mint,
// ordenadas por fuente.
func (s *SQLiteStorage) Latest(ctx context.Context, mint string) ([]domain.Quote, error) {
	var rows []quoteRow
	if err := s.db.SelectContext(ctx, &rows, `
		SELECT q.snapshot_id, q.mint, q.symbol, q.source, q.price, q.fetched_at
		FROM quotes q
		WHERE q.mint = ?
		  AND q.fetched_at = (
			SELECT MAX(fetched_at) FROM quotes
			WHERE mint = q.mint AND source = q.source
		  )
		GROUP BY q.source
		ORDER BY q.source
	`, mint); err != nil {
		return nil, fmt.Errorf("storage.Latest: %w", err)
	}
	out := make([]domain.Quote, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.quote())
	}
	return out, nil
}

// Close cierra la conexión a la base de datos.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
