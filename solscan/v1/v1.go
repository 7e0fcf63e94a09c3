// Package v1 es el cliente de la API pública v1.0 de Solscan. La key es
// obligatoria y viaja en el header token.
package v1

import (
	"errors"

	"github.com/alejandrodnm/cyhole/core"
)

const (
	Name    = "solscan_v1"
	BaseURL = "https://pro-api.solscan.io/v1.0"
	KeyEnv  = "SOLSCAN_API_V1_KEY"
)

var (
	ErrTimeRange   = errors.New("solscan: fromTime is after toTime")
	ErrAmountRange = errors.New("solscan: fromAmount is greater than toAmount")
)

var provider = core.Provider{
	Name:        Name,
	BaseURL:     BaseURL,
	KeyHeader:   "token",
	KeyEnv:      KeyEnv,
	KeyRequired: true,
	ParseError:  parseError,
}

// parseError lee {"status": 400, "error": {"message": ...}}.
func parseError(e *core.Error) {
	if code := core.ExtractField(e.Body, []string{"status"}); code != "" {
		e.Code = code
	}
	if msg := core.ExtractField(e.Body, []string{"error", "message"}); msg != "" {
		e.Message = msg
	}
}

type Client struct {
	in *core.Interaction
}

// New crea el cliente. La key se toma de opts o de SOLSCAN_API_V1_KEY.
func New(opts core.Options) *Client {
	return &Client{in: core.NewInteraction(provider, opts)}
}

func (c *Client) Interaction() *core.Interaction { return c.in }

func (c *Client) Open() error { return c.in.Open() }

func (c *Client) Close() error { return c.in.Close() }
