package pricefeed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/alejandrodnm/cyhole/birdeye"
	"github.com/alejandrodnm/cyhole/core/token"
	"github.com/alejandrodnm/cyhole/internal/domain"
	"github.com/alejandrodnm/cyhole/jupiter"
)

func symbolOf(chain token.Chain, mint string) string {
	if t, ok := token.Lookup(chain, mint); ok {
		return t.Symbol
	}
	return ""
}

// mapBirdeyePrices convierte la respuesta de multi_price en quotes. Los
// mints sin precio (value 0) se descartan.
func mapBirdeyePrices(prices birdeye.PriceMultiple, chain token.Chain, now time.Time) []domain.Quote {
	quotes := make([]domain.Quote, 0, len(prices))
	for mint, p := range prices {
		if p.Value <= 0 {
			continue
		}
		at := now
		if p.UpdateUnixTime > 0 {
			at = time.Unix(p.UpdateUnixTime, 0).UTC()
		}
		quotes = append(quotes, domain.Quote{
			Mint:      mint,
			Symbol:    symbolOf(chain, mint),
			Source:    birdeye.Name,
			Price:     decimal.NewFromFloat(p.Value),
			FetchedAt: at,
		})
	}
	return quotes
}

// mapJupiterPrices convierte la respuesta de price/v2. Un mint desconocido
// llega como null y se descarta.
func mapJupiterPrices(resp jupiter.PriceResponse, now time.Time) []domain.Quote {
	quotes := make([]domain.Quote, 0, len(resp.Data))
	for mint, p := range resp.Data {
		if p == nil {
			continue
		}
		quotes = append(quotes, domain.Quote{
			Mint:      mint,
			Symbol:    symbolOf(token.Solana, mint),
			Source:    jupiter.Name,
			Price:     p.Price,
			FetchedAt: now,
		})
	}
	return quotes
}
