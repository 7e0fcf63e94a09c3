package core

import (
	"errors"
	"fmt"
	"strings"
)

// Kind clasifica la causa de un error de la librería.
// Implementa error para poder usarse con errors.Is:
//
//	if errors.Is(err, core.KindHTTP) { ... }
type Kind int

const (
	KindUnknown Kind = iota
	KindConnection
	KindHTTP
	KindDecode
	KindSchema
	KindParameter
	KindAuthentication
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection error"
	case KindHTTP:
		return "http error"
	case KindDecode:
		return "decode error"
	case KindSchema:
		return "schema validation error"
	case KindParameter:
		return "parameter validation error"
	case KindAuthentication:
		return "authentication error"
	default:
		return "unknown error"
	}
}

func (k Kind) Error() string { return k.String() }

var (
	// ErrSessionClosed se devuelve al usar el cliente suspendible sin sesión abierta.
	ErrSessionClosed = errors.New("session not available")
	// ErrUnauthorized envuelve las respuestas 401 de cualquier proveedor.
	ErrUnauthorized = errors.New("unauthorized")
)

// Error es el error tipado que devuelve toda operación de un Interaction.
// Los campos que no aplican a un Kind quedan vacíos.
type Error struct {
	Kind     Kind
	Provider string
	Op       string

	// HTTP
	StatusCode int
	Body       []byte
	Code       string
	Message    string

	// Parámetros y schema
	Field   string
	Value   string
	Allowed []string

	Err error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Provider != "" {
		b.WriteString(e.Provider)
		if e.Op != "" {
			b.WriteString(".")
			b.WriteString(e.Op)
		}
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.String())
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " %d", e.StatusCode)
	}
	if e.Code != "" {
		fmt.Fprintf(&b, " [%s]", e.Code)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " on %q", e.Field)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil && !strings.Contains(e.Message, e.Err.Error()) {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is permite comparar contra un Kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// AsError extrae el *Error de la cadena de err.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf devuelve el Kind de err, o KindUnknown si no es un *Error.
func KindOf(err error) Kind {
	if e, ok := AsError(err); ok {
		return e.Kind
	}
	return KindUnknown
}

// ParamError construye un error de parámetro fuera de su conjunto admitido.
func ParamError(param, value string, allowed []string, set string) *Error {
	msg := fmt.Sprintf("param '%s' not supported in %s set. Admissible values: [%s]",
		value, set, strings.Join(allowed, ", "))
	return &Error{
		Kind:    KindParameter,
		Field:   param,
		Value:   value,
		Allowed: allowed,
		Message: msg,
	}
}

// InvalidParam construye un error de parámetro genérico (rangos, límites).
func InvalidParam(param string, value any, reason string, sentinel error) *Error {
	return &Error{
		Kind:    KindParameter,
		Field:   param,
		Value:   fmt.Sprint(value),
		Message: reason,
		Err:     sentinel,
	}
}

// FirstErr devuelve el primer error no nil.
func FirstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
