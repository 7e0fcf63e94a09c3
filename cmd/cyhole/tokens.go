package main

import (
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"

	"github.com/alejandrodnm/cyhole/birdeye"
	solscanv2 "github.com/alejandrodnm/cyhole/solscan/v2"
)

func (a *app) tokensCommand() *cli.Command {
	return &cli.Command{
		Name:  "tokens",
		Usage: "List tokens by market cap",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "source", Value: solscanv2.Name, Usage: "token list source: solscan_v2|birdeye"},
			&cli.IntFlag{Name: "limit", Value: 10, Usage: "number of tokens (solscan: 10|20|30|40|60|100, birdeye: 1-50)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			source := cmd.String("source")
			limit := int(cmd.Int("limit"))
			opts, err := a.cfg.ProviderOptions(source)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.Root().Writer)
			table.Header("#", "Symbol", "Address", "Market cap", "Price")

			switch source {
			case solscanv2.Name:
				resp, err := solscanv2.New(opts).TokenList(solscanv2.TokenListOptions{
					Pagination: solscanv2.Pagination{Page: 1, PageSize: solscanv2.PageSize(limit)},
				}).Do(ctx)
				if err != nil {
					return err
				}
				for i, t := range resp.Data {
					table.Append(fmt.Sprintf("%d", i+1), deref(t.Symbol), t.Address, num(t.MarketCap), num(t.Price))
				}
			case birdeye.Name:
				client := birdeye.New(opts).WithChain(birdeye.Chain(a.cfg.Birdeye.Chain))
				resp, err := client.TokenList(birdeye.TokenListOptions{
					SortBy:   birdeye.SortMarketCap,
					SortType: birdeye.OrderDesc,
					Limit:    limit,
				}).Do(ctx)
				if err != nil {
					return err
				}
				for i, t := range resp.Data.Tokens {
					table.Append(fmt.Sprintf("%d", i+1), t.Symbol, t.Address, num(t.MarketCap), "")
				}
			default:
				return fmt.Errorf("source %q does not list tokens", source)
			}
			table.Render()
			return nil
		},
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func num(f *float64) string {
	if f == nil {
		return "-"
	}
	return fmt.Sprintf("%.6g", *f)
}
