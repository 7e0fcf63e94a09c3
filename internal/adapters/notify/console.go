package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"github.com/alejandrodnm/cyhole/internal/domain"
)

// Console implementa ports.Notifier.
type Console struct {
	out   io.Writer
	table bool
}

// NewConsole crea un notificador que escribe a stdout.
func NewConsole(table bool) *Console {
	return &Console{out: os.Stdout, table: table}
}

// NewConsoleWriter crea un notificador para tests.
func NewConsoleWriter(w io.Writer, table bool) *Console {
	return &Console{out: w, table: table}
}

// Notify imprime el snapshot en el modo configurado.
func (c *Console) Notify(_ context.Context, snapshot domain.Snapshot) error {
	now := snapshot.TakenAt.Format("15:04:05")
	if len(snapshot.Quotes) == 0 {
		fmt.Fprintf(c.out, "[%s] no prices found\n", now)
		return nil
	}

	if c.table {
		c.printTable(snapshot)
	} else {
		c.printCompact(snapshot)
	}
	return nil
}

// printCompact imprime una línea por snapshot con el precio medio de cada mint.
func (c *Console) printCompact(s domain.Snapshot) {
	mints := s.Mints()

	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] %d quotes, %d mints", s.TakenAt.Format("15:04:05"), len(s.Quotes), len(mints))
	for _, mint := range mints {
		quotes := s.ByMint(mint)
		fmt.Fprintf(&sb, " | %s %s", label(quotes[0]), mean(quotes).StringFixed(6))
		if spread, ok := s.Spread(mint); ok {
			fmt.Fprintf(&sb, " spread %s%%", spread.Shift(2).StringFixed(2))
		}
	}
	fmt.Fprintln(c.out, sb.String())
}

// printTable imprime una fila por quote y el spread entre fuentes.
func (c *Console) printTable(s domain.Snapshot) {
	vs := s.VsToken
	if vs == "" {
		vs = "USD"
	}
	fmt.Fprintf(c.out, "\n[%s] snapshot %s (%d quotes, vs %s)\n",
		s.TakenAt.Format("15:04:05"), s.ID, len(s.Quotes), vs)

	table := tablewriter.NewWriter(c.out)
	table.Header("#", "Token", "Mint", "Source", "Price", "Updated")
	for i, q := range s.Quotes {
		table.Append(
			fmt.Sprintf("%d", i+1),
			label(q),
			shortMint(q.Mint),
			q.Source,
			q.Price.String(),
			q.FetchedAt.Format("15:04:05"),
		)
	}
	table.Render()

	for _, mint := range s.Mints() {
		spread, ok := s.Spread(mint)
		if !ok {
			continue
		}
		fmt.Fprintf(c.out, "  %-10s spread %s%%\n", label(s.ByMint(mint)[0]), spread.Shift(2).StringFixed(4))
	}
}

func label(q domain.Quote) string {
	if q.Symbol != "" {
		return q.Symbol
	}
	return shortMint(q.Mint)
}

func shortMint(mint string) string {
	if len(mint) <= 12 {
		return mint
	}
	return mint[:4] + "…" + mint[len(mint)-4:]
}

func mean(quotes []domain.Quote) decimal.Decimal {
	prices := make([]decimal.Decimal, 0, len(quotes))
	for _, q := range quotes {
		prices = append(prices, q.Price)
	}
	if len(prices) == 0 {
		return decimal.Zero
	}
	return decimal.Avg(prices[0], prices[1:]...)
}
