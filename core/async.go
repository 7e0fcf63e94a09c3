package core

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
)

// AsyncExecutor ejecuta un Request sin bloquear al llamador.
type AsyncExecutor interface {
	ExecuteAsync(ctx context.Context, req Request) *Future[[]byte]
}

// AsyncClient es el cliente suspendible. Necesita una sesión abierta
// con Open; cada llamada corre en su propia goroutine y devuelve un Future.
type AsyncClient struct {
	provider string
	template *http.Client

	mu      sync.Mutex
	session atomic.Pointer[http.Client]
}

// NewAsyncClient crea el cliente sin sesión. hc sirve de plantilla
// (timeout y transporte) para las sesiones que abra Open.
func NewAsyncClient(provider string, hc *http.Client) *AsyncClient {
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}
	return &AsyncClient{provider: provider, template: hc}
}

// Open adquiere la sesión. Abrir una sesión ya abierta no hace nada.
func (c *AsyncClient) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session.Load() != nil {
		return nil
	}
	s := *c.template
	rt := c.template.Transport
	if rt == nil {
		rt = http.DefaultTransport
	}
	if t, ok := rt.(*http.Transport); ok {
		s.Transport = t.Clone()
	}
	c.session.Store(&s)
	return nil
}

// Close libera la sesión. Cerrar sin sesión abierta devuelve ErrSessionClosed.
func (c *AsyncClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.session.Swap(nil)
	if s == nil {
		return &Error{Kind: KindConnection, Provider: c.provider, Message: "close without open session", Err: ErrSessionClosed}
	}
	s.CloseIdleConnections()
	return nil
}

// IsOpen indica si hay una sesión activa.
func (c *AsyncClient) IsOpen() bool {
	return c.session.Load() != nil
}

// ExecuteAsync lanza el request en una goroutine.
func (c *AsyncClient) ExecuteAsync(ctx context.Context, req Request) *Future[[]byte] {
	s := c.session.Load()
	if s == nil {
		return Failed[[]byte](&Error{Kind: KindConnection, Provider: c.provider, Op: req.Op, Err: ErrSessionClosed})
	}
	return Go(ctx, func(ctx context.Context) ([]byte, error) {
		return send(ctx, s, c.provider, req)
	})
}

// Future es el resultado diferido de una llamada suspendible.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error

	// cancelled traduce el error de ctx cuando Await se cancela.
	cancelled func(error) error
}

// Go ejecuta fn en una goroutine y devuelve su Future.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.val, f.err = fn(ctx)
	}()
	return f
}

// Resolved devuelve un Future ya completado con v.
func Resolved[T any](v T) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), val: v}
	close(f.done)
	return f
}

// Failed devuelve un Future ya completado con err.
func Failed[T any](err error) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), err: err}
	close(f.done)
	return f
}

// Done se cierra cuando el Future termina.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Await espera el resultado o la cancelación de ctx. Un Future ya
// completado devuelve su resultado aunque ctx esté cancelado.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	default:
	}
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		err := ctx.Err()
		if f.cancelled != nil {
			err = f.cancelled(err)
		}
		return zero, err
	}
}

// Then encadena fn sobre el resultado exitoso de f.
func Then[T, U any](f *Future[T], fn func(T) (U, error)) *Future[U] {
	return chain(f, func(v T, err error) (U, error) {
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(v)
	})
}

func chain[T, U any](f *Future[T], fn func(T, error) (U, error)) *Future[U] {
	out := &Future[U]{done: make(chan struct{})}
	go func() {
		defer close(out.done)
		<-f.done
		out.val, out.err = fn(f.val, f.err)
	}()
	return out
}
