package ports

import (
	"context"
	"time"

	"github.com/alejandrodnm/cyhole/internal/domain"
)

// SnapshotStorage persiste los snapshots de precios.
type SnapshotStorage interface {
	// SaveSnapshot persiste un snapshot y sus quotes.
	SaveSnapshot(ctx context.Context, snapshot domain.Snapshot) error

	// History devuelve los snapshots tomados en el rango dado, del más
	// reciente al más antiguo.
	History(ctx context.Context, from, to time.Time) ([]domain.Snapshot, error)

	// Latest devuelve la última quote de cada fuente para un mint.
	Latest(ctx context.Context, mint string) ([]domain.Quote, error)

	// Close cierra la conexión a la base de datos limpiamente.
	Close() error
}
