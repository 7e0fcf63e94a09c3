package core

import (
	"context"
)

// Call es una invocación preparada de un endpoint. Se crea con los
// parámetros ya validados y se ejecuta con Do (bloqueante) o Go
// (suspendible); ambos comparten request y decodificación.
type Call[T any] struct {
	in     *Interaction
	req    Request
	err    error
	decode func([]byte) (T, error)
}

// NewCall prepara una llamada JSON. Si err no es nil la llamada falla
// sin tocar la red.
func NewCall[T any](in *Interaction, req Request, err error) *Call[T] {
	strict := in.strict
	return &Call[T]{
		in:  in,
		req: req,
		err: err,
		decode: func(raw []byte) (T, error) {
			return Decode[T](raw, strict)
		},
	}
}

// NewRawCall prepara una llamada que devuelve el body como texto (CSV).
func NewRawCall(in *Interaction, req Request, err error) *Call[string] {
	req.Raw = true
	return &Call[string]{
		in:  in,
		req: req,
		err: err,
		decode: func(raw []byte) (string, error) {
			return string(raw), nil
		},
	}
}

// Request devuelve el request que se enviará.
func (c *Call[T]) Request() Request { return c.req }

// Err devuelve el error de preparación, si lo hay.
func (c *Call[T]) Err() error { return c.in.tag(c.req.Op, c.err) }

func (c *Call[T]) precheck() error {
	if c.err != nil {
		return c.in.tag(c.req.Op, c.err)
	}
	if err := c.in.authorize(); err != nil {
		return c.in.tag(c.req.Op, err)
	}
	return nil
}

// Do ejecuta la llamada bloqueando hasta tener el resultado.
func (c *Call[T]) Do(ctx context.Context) (T, error) {
	if err := c.precheck(); err != nil {
		var zero T
		return zero, err
	}
	raw, err := c.in.sync.Execute(ctx, c.req)
	return c.finish(raw, err)
}

// Go ejecuta la llamada en modo suspendible.
func (c *Call[T]) Go(ctx context.Context) *Future[T] {
	if err := c.precheck(); err != nil {
		return Failed[T](err)
	}
	f := chain(c.in.async.ExecuteAsync(ctx, c.req), c.finish)
	f.cancelled = func(err error) error {
		return c.in.tag(c.req.Op, &Error{Kind: KindConnection, Message: "request cancelled", Err: err})
	}
	return f
}

func (c *Call[T]) finish(raw []byte, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, c.in.tag(c.req.Op, err)
	}
	v, err := c.decode(raw)
	if err != nil {
		if e, ok := AsError(err); ok && e.Body == nil {
			e.Body = raw
		}
		return zero, c.in.tag(c.req.Op, err)
	}
	return v, nil
}

// Fail prepara una llamada que falla con err sin tocar la red.
func Fail[T any](in *Interaction, op string, err error) *Call[T] {
	return NewCall[T](in, Request{Op: op}, err)
}
