// Package solanafm es el cliente de la API de SolanaFM. La key es opcional
// y solo sube el rate limit.
package solanafm

import (
	"errors"

	"github.com/alejandrodnm/cyhole/core"
)

const (
	Name    = "solanafm"
	BaseURL = "https://api.solana.fm"
	KeyEnv  = "SOLANA_FM_API_KEY"
)

var (
	ErrTimeRange   = errors.New("solanafm: utcFrom is after utcTo")
	ErrAmountRange = errors.New("solanafm: amountFrom is greater than amountTo")
)

var provider = core.Provider{
	Name:      Name,
	BaseURL:   BaseURL,
	KeyHeader: "ApiKey",
	KeyEnv:    KeyEnv,
}

type Client struct {
	in *core.Interaction
}

// New crea el cliente. La key se toma de opts o de SOLANA_FM_API_KEY.
func New(opts core.Options) *Client {
	return &Client{in: core.NewInteraction(provider, opts)}
}

func (c *Client) Interaction() *core.Interaction { return c.in }

func (c *Client) Open() error { return c.in.Open() }

func (c *Client) Close() error { return c.in.Close() }
