package core

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"
)

// Provider describe lo fijo de un proveedor: URL base, cómo se autentica
// y cómo se interpreta un body de error.
type Provider struct {
	Name        string
	BaseURL     string
	KeyHeader   string
	KeyEnv      string
	KeyRequired bool
	Header      http.Header
	// ParseError completa Code, Message y Err de un error HTTP a partir de su body.
	ParseError func(e *Error)
}

// Options son los parámetros de construcción de un Interaction.
// Los campos vacíos toman los valores del Provider o defaults razonables.
type Options struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Header  http.Header
	// HTTPClient sustituye al cliente por defecto (tests, proxies).
	HTTPClient *http.Client
	// MockDir activa el FixtureTransport sobre <MockDir>/<provider>.
	MockDir string
	Clock   clockwork.Clock
	Strict  bool
}

// Interaction es la fachada de un proveedor. Posee un cliente de cada modo,
// la URL base y los headers por defecto (incluida la API key).
type Interaction struct {
	provider Provider
	baseURL  string
	apiKey   string
	header   http.Header
	sync     *Client
	async    *AsyncClient
	clock    clockwork.Clock
	strict   bool
}

// NewInteraction construye la fachada. Si no se pasa APIKey se lee de la
// variable de entorno del proveedor; la ausencia de una key obligatoria
// se reporta en la primera llamada.
func NewInteraction(p Provider, opts Options) *Interaction {
	base := opts.BaseURL
	if base == "" {
		base = p.BaseURL
	}
	key := opts.APIKey
	if key == "" && p.KeyEnv != "" {
		key = os.Getenv(p.KeyEnv)
	}

	header := MergeHeader(p.Header, opts.Header)
	if key != "" && p.KeyHeader != "" {
		header.Set(p.KeyHeader, key)
	}

	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}
	if opts.MockDir != "" {
		mock := *hc
		mock.Transport = &FixtureTransport{Dir: filepath.Join(opts.MockDir, p.Name)}
		hc = &mock
	}

	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Interaction{
		provider: p,
		baseURL:  base,
		apiKey:   key,
		header:   header,
		sync:     NewClient(p.Name, hc),
		async:    NewAsyncClient(p.Name, hc),
		clock:    clock,
		strict:   opts.Strict,
	}
}

// Name devuelve el nombre del proveedor.
func (i *Interaction) Name() string { return i.provider.Name }

// BaseURL devuelve la URL base efectiva.
func (i *Interaction) BaseURL() string { return i.baseURL }

// Clock devuelve el reloj usado para defaults temporales.
func (i *Interaction) Clock() clockwork.Clock { return i.clock }

// Open abre la sesión del cliente suspendible.
func (i *Interaction) Open() error { return i.async.Open() }

// Close cierra la sesión suspendible y libera conexiones del bloqueante.
func (i *Interaction) Close() error {
	i.sync.Close()
	if !i.async.IsOpen() {
		return nil
	}
	return i.async.Close()
}

// Request crea el Request base de un endpoint con los headers por defecto.
func (i *Interaction) Request(op, method, path string) Request {
	return Request{
		Op:     op,
		Method: method,
		URL:    JoinURL(i.baseURL, path),
		Header: i.header.Clone(),
	}
}

func (i *Interaction) authorize() error {
	if !i.provider.KeyRequired || i.apiKey != "" {
		return nil
	}
	msg := "missing API key"
	if i.provider.KeyEnv != "" {
		msg = fmt.Sprintf("missing API key: set %s or pass Options.APIKey", i.provider.KeyEnv)
	}
	return &Error{Kind: KindAuthentication, Provider: i.provider.Name, Message: msg}
}

// tag completa proveedor y operación, y aplica el parser del proveedor
// a los errores HTTP.
func (i *Interaction) tag(op string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if !errors.As(err, &e) {
		return &Error{Kind: KindUnknown, Provider: i.provider.Name, Op: op, Message: err.Error(), Err: err}
	}
	// err no se modifica; un Call puede ejecutarse varias veces.
	cp := *e
	if err != error(e) {
		cp.Err = err
	}
	if cp.Provider == "" {
		cp.Provider = i.provider.Name
	}
	if cp.Op == "" {
		cp.Op = op
	}
	if cp.Kind == KindHTTP && i.provider.ParseError != nil {
		i.provider.ParseError(&cp)
	}
	return &cp
}
