package main

import (
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v3"

	"github.com/alejandrodnm/cyhole/core/token"
	"github.com/alejandrodnm/cyhole/jupiter"
)

func (a *app) quoteCommand() *cli.Command {
	return &cli.Command{
		Name:  "quote",
		Usage: "Ask Jupiter for the best swap route between two tokens",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "in", Value: "SOL", Usage: "input token symbol"},
			&cli.StringFlag{Name: "out", Value: "USDC", Usage: "output token symbol"},
			&cli.FloatFlag{Name: "amount", Value: 1, Usage: "amount of the input token, in UI units"},
			&cli.IntFlag{Name: "slippage", Usage: "slippage in basis points (0 = client default)"},
			&cli.BoolFlag{Name: "direct", Usage: "only direct routes"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			in, err := quoteToken(cmd.String("in"))
			if err != nil {
				return err
			}
			out, err := quoteToken(cmd.String("out"))
			if err != nil {
				return err
			}
			raw := in.FromUI(decimal.NewFromFloat(cmd.Float("amount")))
			if !raw.IsPositive() {
				return fmt.Errorf("amount %v is below the smallest unit of %s", cmd.Float("amount"), in.Symbol)
			}

			opts, err := a.cfg.ProviderOptions(jupiter.Name)
			if err != nil {
				return err
			}
			q, err := jupiter.New(opts).Quote(jupiter.QuoteOptions{
				InputMint:        in.Address,
				OutputMint:       out.Address,
				Amount:           uint64(raw.IntPart()),
				SlippageBps:      int(cmd.Int("slippage")),
				OnlyDirectRoutes: cmd.Bool("direct"),
			}).Do(ctx)
			if err != nil {
				return err
			}

			outAmount, err := decimal.NewFromString(q.OutAmount)
			if err != nil {
				return fmt.Errorf("quote: parse outAmount %q: %w", q.OutAmount, err)
			}
			w := cmd.Root().Writer
			fmt.Fprintf(w, "%s %s -> %s %s (impact %s%%, slippage %dbps)\n",
				in.ToUI(raw), in.Symbol, out.ToUI(outAmount), out.Symbol, q.PriceImpactPct, q.SlippageBps)

			table := tablewriter.NewWriter(w)
			table.Header("#", "Venue", "Percent", "In", "Out")
			for i, r := range q.RoutePlan {
				table.Append(
					fmt.Sprintf("%d", i+1),
					r.SwapInfo.Label,
					fmt.Sprintf("%d%%", r.Percent),
					r.SwapInfo.InAmount,
					r.SwapInfo.OutAmount,
				)
			}
			table.Render()
			return nil
		},
	}
}

// quoteToken busca un token de Solana por símbolo. SOL se intercambia como
// su mint envuelto.
func quoteToken(symbol string) (token.Token, error) {
	t, ok := token.Lookup(token.Solana, symbol)
	if !ok {
		return token.Token{}, fmt.Errorf("unknown token %q", symbol)
	}
	if t.Address == token.SOL.Address {
		t = token.WSOL
	}
	return t, nil
}
