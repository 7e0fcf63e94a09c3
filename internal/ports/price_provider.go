package ports

import (
	"context"

	"github.com/alejandrodnm/cyhole/internal/domain"
)

// PriceProvider obtiene precios spot de una fuente.
type PriceProvider interface {
	// Name identifica la fuente en las quotes.
	Name() string

	// BatchSize es el máximo de mints por llamada a Prices.
	BatchSize() int

	// Prices devuelve una quote por mint con precio conocido. Los mints
	// que la fuente no conoce se omiten sin error.
	Prices(ctx context.Context, mints []string) ([]domain.Quote, error)
}
