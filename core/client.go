package core

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

// Executor ejecuta un Request y devuelve el body JSON sin modificar.
type Executor interface {
	Execute(ctx context.Context, req Request) ([]byte, error)
}

// Client es el cliente bloqueante. No hace retries ni cachea.
type Client struct {
	http     *http.Client
	provider string
}

// NewClient crea un Client. Si hc es nil usa un http.Client con timeout por defecto.
func NewClient(provider string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{http: hc, provider: provider}
}

// Execute envía el request y bloquea hasta tener respuesta.
func (c *Client) Execute(ctx context.Context, req Request) ([]byte, error) {
	return send(ctx, c.http, c.provider, req)
}

// Close libera las conexiones ociosas del transporte.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}

// send es la ruta común de ambos modos: build, envío y mapeo de errores.
func send(ctx context.Context, hc *http.Client, provider string, r Request) ([]byte, error) {
	req, err := r.build(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindConnection, Provider: provider, Op: r.Op, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindConnection, Provider: provider, Op: r.Op, Message: "read body", Err: err}
	}

	slog.Debug("request sent",
		"provider", provider,
		"op", r.Op,
		"method", req.Method,
		"url", req.URL.Redacted(),
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		e := &Error{
			Kind:       KindHTTP,
			Provider:   provider,
			Op:         r.Op,
			StatusCode: resp.StatusCode,
			Body:       body,
			Message:    ExtractMessage(body),
		}
		if resp.StatusCode == http.StatusUnauthorized {
			e.Err = ErrUnauthorized
		}
		return nil, e
	}

	if !r.Raw && !json.Valid(body) {
		return nil, &Error{Kind: KindDecode, Provider: provider, Op: r.Op, Body: body, Message: "response body is not valid JSON"}
	}
	return body, nil
}
