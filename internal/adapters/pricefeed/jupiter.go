package pricefeed

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/alejandrodnm/cyhole/internal/domain"
	"github.com/alejandrodnm/cyhole/jupiter"
)

// Jupiter obtiene precios con price/v2 en modo suspendible. El cliente
// debe tener la sesión abierta (Open) mientras se use.
type Jupiter struct {
	client  *jupiter.Client
	vsToken string
	clock   clockwork.Clock
}

// NewJupiter crea el proveedor. vsToken vacío cotiza en USDC.
func NewJupiter(client *jupiter.Client, vsToken string) *Jupiter {
	return &Jupiter{client: client, vsToken: vsToken, clock: client.Interaction().Clock()}
}

func (j *Jupiter) Name() string { return jupiter.Name }

func (j *Jupiter) BatchSize() int { return 100 }

func (j *Jupiter) Prices(ctx context.Context, mints []string) ([]domain.Quote, error) {
	resp, err := j.client.Price(jupiter.PriceOptions{IDs: mints, VsToken: j.vsToken}).Go(ctx).Await(ctx)
	if err != nil {
		return nil, fmt.Errorf("pricefeed.Jupiter.Prices: %w", err)
	}
	return mapJupiterPrices(resp, j.clock.Now().UTC()), nil
}
