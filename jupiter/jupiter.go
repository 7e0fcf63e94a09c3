// Package jupiter es el cliente de las APIs de Jupiter (price, swap,
// token, limit orders y ultra).
package jupiter

import (
	"errors"

	"github.com/alejandrodnm/cyhole/core"
)

const (
	Name    = "jupiter"
	BaseURL = "https://api.jup.ag"
	KeyEnv  = "JUPITER_API_KEY"
)

var (
	ErrNoRouteFound           = errors.New("jupiter: could not find any route")
	ErrComputeAmountThreshold = errors.New("jupiter: cannot compute other amount threshold")
	ErrInvalidRequest         = errors.New("jupiter: invalid request")
)

var codes = map[string]error{
	"COULD_NOT_FIND_ANY_ROUTE":              ErrNoRouteFound,
	"CANNOT_COMPUTE_OTHER_AMOUNT_THRESHOLD": ErrComputeAmountThreshold,
	"INVALID_REQUEST":                       ErrInvalidRequest,
}

var provider = core.Provider{
	Name:       Name,
	BaseURL:    BaseURL,
	KeyHeader:  "x-api-key",
	KeyEnv:     KeyEnv,
	ParseError: parseError,
}

// parseError lee {"errorCode"|"error_code": ..., "error": ...}.
func parseError(e *core.Error) {
	code := core.ExtractField(e.Body, []string{"errorCode"}, []string{"error_code"})
	if code == "" {
		return
	}
	e.Code = code
	if msg := core.ExtractField(e.Body, []string{"error"}); msg != "" {
		e.Message = msg
	}
	if sentinel, ok := codes[code]; ok && e.Err == nil {
		e.Err = sentinel
	}
}

// Client expone las APIs de Jupiter. La key es opcional.
type Client struct {
	in *core.Interaction
}

// New crea el cliente. La key se toma de opts o de JUPITER_API_KEY.
func New(opts core.Options) *Client {
	return &Client{in: core.NewInteraction(provider, opts)}
}

func (c *Client) Interaction() *core.Interaction { return c.in }

func (c *Client) Open() error { return c.in.Open() }

func (c *Client) Close() error { return c.in.Close() }
