package core

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// FixtureTransport es un http.RoundTripper que responde desde ficheros.
// Un request a /a/b se sirve desde <Dir>/a/b.json (o .csv). Si no existe
// fichero responde 404 con un body JSON de error.
type FixtureTransport struct {
	Dir string
}

func (t *FixtureTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Body != nil {
		req.Body.Close()
	}
	name := strings.Trim(req.URL.Path, "/")
	if name == "" {
		name = "index"
	}

	for _, ext := range []string{".json", ".csv"} {
		path := filepath.Join(t.Dir, filepath.FromSlash(name)+ext)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("core.FixtureTransport: %w", err)
		}
		slog.Debug("fixture served", "path", path)
		contentType := "application/json"
		if ext == ".csv" {
			contentType = "text/csv"
		}
		return fixtureResponse(req, http.StatusOK, contentType, data), nil
	}

	body := fmt.Sprintf(`{"message":"no fixture for %s"}`, name)
	return fixtureResponse(req, http.StatusNotFound, "application/json", []byte(body)), nil
}

func fixtureResponse(req *http.Request, status int, contentType string, data []byte) *http.Response {
	return &http.Response{
		StatusCode:    status,
		Status:        fmt.Sprintf("%d %s", status, http.StatusText(status)),
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        http.Header{"Content-Type": []string{contentType}},
		Body:          io.NopCloser(bytes.NewReader(data)),
		ContentLength: int64(len(data)),
		Request:       req,
	}
}
