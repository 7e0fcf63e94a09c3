// Package v2 es el cliente de la API pro v2.0 de Solscan.
package v2

import (
	"errors"

	"github.com/alejandrodnm/cyhole/core"
)

const (
	Name    = "solscan_v2"
	BaseURL = "https://pro-api.solscan.io/v2.0"
	KeyEnv  = "SOLSCAN_API_V2_KEY"
)

var (
	ErrInvalidTimeRange   = errors.New("solscan: time range start is after its end")
	ErrInvalidAmountRange = errors.New("solscan: amount range start is greater than its end")
)

var provider = core.Provider{
	Name:        Name,
	BaseURL:     BaseURL,
	KeyHeader:   "token",
	KeyEnv:      KeyEnv,
	KeyRequired: true,
	ParseError:  parseError,
}

// parseError lee {"success": false, "errors": {"code": ..., "message": ...}}.
func parseError(e *core.Error) {
	if code := core.ExtractField(e.Body, []string{"errors", "code"}); code != "" {
		e.Code = code
	}
	if msg := core.ExtractField(e.Body, []string{"errors", "message"}); msg != "" {
		e.Message = msg
	}
}

type Client struct {
	in *core.Interaction
}

// New crea el cliente. La key se toma de opts o de SOLSCAN_API_V2_KEY.
func New(opts core.Options) *Client {
	return &Client{in: core.NewInteraction(provider, opts)}
}

func (c *Client) Interaction() *core.Interaction { return c.in }

func (c *Client) Open() error { return c.in.Open() }

func (c *Client) Close() error { return c.in.Close() }
