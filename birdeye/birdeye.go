// Package birdeye es el cliente de la API pública de Birdeye.
package birdeye

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/alejandrodnm/cyhole/core"
)

const (
	Name    = "birdeye"
	BaseURL = "https://public-api.birdeye.so"
	KeyEnv  = "BIRDEYE_API_KEY"

	defaultWindow = 24 * time.Hour
)

// ErrTimeRange indica una ventana temporal con inicio posterior al fin.
var ErrTimeRange = errors.New("birdeye: time_from is after time_to")

var provider = core.Provider{
	Name:        Name,
	BaseURL:     BaseURL,
	KeyHeader:   "X-API-KEY",
	KeyEnv:      KeyEnv,
	KeyRequired: true,
	Header:      http.Header{"X-Chain": []string{string(ChainSolana)}},
	ParseError:  parseError,
}

// parseError normaliza los 401 que Birdeye devuelve con {"success":false,"message":...}.
func parseError(e *core.Error) {
	if e.Message == "" && e.StatusCode == http.StatusUnauthorized {
		e.Message = "unauthorized, check " + KeyEnv
	}
}

// Client expone los endpoints de Birdeye en modo bloqueante (Do) y
// suspendible (Go).
type Client struct {
	in    *core.Interaction
	chain Chain
}

// New crea el cliente. La key se toma de opts o de BIRDEYE_API_KEY.
func New(opts core.Options) *Client {
	return &Client{in: core.NewInteraction(provider, opts), chain: ChainSolana}
}

// WithChain devuelve una copia que consulta otra red. La red se valida
// en cada llamada.
func (c *Client) WithChain(chain Chain) *Client {
	cp := *c
	cp.chain = chain
	return &cp
}

// Chain devuelve la red consultada.
func (c *Client) Chain() Chain { return c.chain }

// Interaction devuelve la fachada subyacente.
func (c *Client) Interaction() *core.Interaction { return c.in }

// Open abre la sesión suspendible.
func (c *Client) Open() error { return c.in.Open() }

// Close libera las sesiones.
func (c *Client) Close() error { return c.in.Close() }

func (c *Client) request(op, method, path string) (core.Request, error) {
	req := c.in.Request(op, method, path)
	if err := c.chain.Valid(); err != nil {
		return req, err
	}
	req.Header.Set("X-Chain", string(c.chain))
	return req, nil
}

// window resuelve la ventana [from, to]: to vacío es ahora, from vacío
// es to menos 24h.
func (c *Client) window(from, to time.Time) (time.Time, time.Time, error) {
	if to.IsZero() {
		to = c.in.Clock().Now()
	}
	if from.IsZero() {
		from = to.Add(-defaultWindow)
	}
	if err := core.CheckTimeRange("time_from", from, to, ErrTimeRange); err != nil {
		return from, to, err
	}
	return from, to, nil
}

func joinAddresses(addrs []string) string {
	return strings.Join(addrs, ",")
}
