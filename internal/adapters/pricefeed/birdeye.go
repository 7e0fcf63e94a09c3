// Package pricefeed implementa ports.PriceProvider sobre los clientes de
// Birdeye y Jupiter.
package pricefeed

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/alejandrodnm/cyhole/birdeye"
	"github.com/alejandrodnm/cyhole/core/token"
	"github.com/alejandrodnm/cyhole/internal/domain"
)

// Birdeye obtiene precios con /defi/multi_price en modo bloqueante.
type Birdeye struct {
	client *birdeye.Client
	clock  clockwork.Clock
}

func NewBirdeye(client *birdeye.Client) *Birdeye {
	return &Birdeye{client: client, clock: client.Interaction().Clock()}
}

func (b *Birdeye) Name() string { return birdeye.Name }

func (b *Birdeye) BatchSize() int { return 100 }

func (b *Birdeye) Prices(ctx context.Context, mints []string) ([]domain.Quote, error) {
	resp, err := b.client.PriceMultiple(mints, false).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("pricefeed.Birdeye.Prices: %w", err)
	}
	return mapBirdeyePrices(resp.Data, token.Chain(b.client.Chain()), b.clock.Now().UTC()), nil
}
