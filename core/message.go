package core

import (
	"strings"

	"github.com/valyala/fastjson"
)

const maxRawMessage = 256

// Rutas donde los proveedores suelen poner el mensaje de error.
var messagePaths = [][]string{
	{"message"},
	{"error", "message"},
	{"errors", "message"},
	{"error"},
	{"msg"},
	{"detail"},
}

// ExtractMessage saca un mensaje legible de un body de error sin schema.
// Si el body no es JSON devuelve el texto recortado.
func ExtractMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	v, err := fastjson.ParseBytes(body)
	if err != nil {
		s := strings.TrimSpace(string(body))
		if len(s) > maxRawMessage {
			s = s[:maxRawMessage]
		}
		return s
	}
	return FieldString(v, messagePaths...)
}

// ExtractField devuelve el primer valor escalar encontrado en paths.
func ExtractField(body []byte, paths ...[]string) string {
	v, err := fastjson.ParseBytes(body)
	if err != nil {
		return ""
	}
	return FieldString(v, paths...)
}

// FieldString devuelve el primer escalar de v en paths, como string.
func FieldString(v *fastjson.Value, paths ...[]string) string {
	for _, p := range paths {
		f := v.Get(p...)
		if f == nil {
			continue
		}
		switch f.Type() {
		case fastjson.TypeString:
			return string(f.GetStringBytes())
		case fastjson.TypeNumber, fastjson.TypeTrue, fastjson.TypeFalse:
			return f.String()
		}
	}
	return ""
}
