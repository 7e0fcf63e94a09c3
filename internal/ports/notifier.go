package ports

import (
	"context"

	"github.com/alejandrodnm/cyhole/internal/domain"
)

// Notifier presenta un snapshot al usuario.
type Notifier interface {
	// Notify muestra los precios por mint y fuente, con el spread entre fuentes.
	Notify(ctx context.Context, snapshot domain.Snapshot) error
}
