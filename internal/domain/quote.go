package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Quote es el precio de un token según una fuente en un instante.
type Quote struct {
	Mint      string
	Symbol    string
	Source    string // nombre del proveedor: birdeye, jupiter
	Price     decimal.Decimal
	FetchedAt time.Time
}

// Snapshot agrupa los precios obtenidos en una misma ronda.
type Snapshot struct {
	ID      uuid.UUID
	TakenAt time.Time
	VsToken string
	Quotes  []Quote
}

// NewSnapshot crea un snapshot con ID nuevo. Las quotes se ordenan por
// mint y fuente.
func NewSnapshot(takenAt time.Time, vsToken string, quotes []Quote) Snapshot {
	sorted := make([]Quote, len(quotes))
	copy(sorted, quotes)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Mint != sorted[j].Mint {
			return sorted[i].Mint < sorted[j].Mint
		}
		return sorted[i].Source < sorted[j].Source
	})
	return Snapshot{
		ID:      uuid.New(),
		TakenAt: takenAt.UTC(),
		VsToken: vsToken,
		Quotes:  sorted,
	}
}

// Mints devuelve los mints presentes, sin repetir y en orden.
func (s Snapshot) Mints() []string {
	var out []string
	seen := make(map[string]bool)
	for _, q := range s.Quotes {
		if !seen[q.Mint] {
			seen[q.Mint] = true
			out = append(out, q.Mint)
		}
	}
	return out
}

// ByMint devuelve las quotes de un mint.
func (s Snapshot) ByMint(mint string) []Quote {
	var out []Quote
	for _, q := range s.Quotes {
		if q.Mint == mint {
			out = append(out, q)
		}
	}
	return out
}

// Spread es la diferencia relativa entre el precio máximo y el mínimo de
// un mint entre fuentes: (max - min) / min. Sin al menos dos fuentes con
// precio positivo devuelve false.
func (s Snapshot) Spread(mint string) (decimal.Decimal, bool) {
	var lo, hi decimal.Decimal
	n := 0
	for _, q := range s.ByMint(mint) {
		if !q.Price.IsPositive() {
			continue
		}
		if n == 0 || q.Price.LessThan(lo) {
			lo = q.Price
		}
		if n == 0 || q.Price.GreaterThan(hi) {
			hi = q.Price
		}
		n++
	}
	if n < 2 {
		return decimal.Zero, false
	}
	return hi.Sub(lo).Div(lo), true
}
