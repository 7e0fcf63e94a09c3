package core

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Request describe una llamada concreta: verbo, URL completa, query,
// headers y body opcional. Se construye sin efectos y se envía igual
// en modo bloqueante y suspendible.
type Request struct {
	Op     string
	Method string
	URL    string
	Params *Params
	Header http.Header
	Body   any
	// Raw marca endpoints que devuelven texto (CSV) en vez de JSON.
	Raw bool
}

// JoinURL une base y path con exactamente una barra.
func JoinURL(base, path string) string {
	if path == "" {
		return base
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

// PathEscape escapa un segmento de path (direcciones, hashes).
func PathEscape(s string) string {
	return url.PathEscape(s)
}

// build convierte el Request en un *http.Request listo para enviar.
func (r Request) build(ctx context.Context) (*http.Request, error) {
	query, err := r.Params.Encode()
	if err != nil {
		return nil, err
	}

	u, err := url.Parse(r.URL)
	if err != nil {
		return nil, &Error{Kind: KindParameter, Field: "url", Value: r.URL, Message: "invalid url", Err: err}
	}
	if query != "" {
		if u.RawQuery != "" {
			u.RawQuery += "&" + query
		} else {
			u.RawQuery = query
		}
	}

	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if r.Body != nil {
		b, err := json.Marshal(r.Body)
		if err != nil {
			return nil, &Error{Kind: KindParameter, Field: "body", Message: "encode body", Err: err}
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, &Error{Kind: KindParameter, Message: fmt.Sprintf("build %s request", method), Err: err}
	}
	for k, vs := range r.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if r.Body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if req.Header.Get("Accept") == "" && !r.Raw {
		req.Header.Set("Accept", "application/json")
	}
	return req, nil
}

// MergeHeader devuelve una copia de base con override aplicado encima.
// Las claves presentes en override sustituyen a las de base.
func MergeHeader(base, override http.Header) http.Header {
	out := base.Clone()
	if out == nil {
		out = http.Header{}
	}
	for k, vs := range override {
		out[http.CanonicalHeaderKey(k)] = append([]string(nil), vs...)
	}
	return out
}
