package core

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Set es un conjunto cerrado de valores admitidos por un parámetro.
// Los Set se declaran como variables de paquete y no se modifican.
type Set[T comparable] struct {
	name   string
	values []T
}

// NewSet crea un conjunto con nombre y sus miembros en orden.
func NewSet[T comparable](name string, values ...T) Set[T] {
	return Set[T]{name: name, values: values}
}

func (s Set[T]) Name() string { return s.name }

// Values devuelve una copia de los miembros.
func (s Set[T]) Values() []T {
	out := make([]T, len(s.values))
	copy(out, s.values)
	return out
}

// Contains indica si v pertenece al conjunto.
func (s Set[T]) Contains(v T) bool {
	for _, m := range s.values {
		if m == v {
			return true
		}
	}
	return false
}

// Strings devuelve los miembros formateados.
func (s Set[T]) Strings() []string {
	out := make([]string, len(s.values))
	for i, m := range s.values {
		out[i] = fmt.Sprint(m)
	}
	return out
}

// Check valida v contra el conjunto y devuelve un error KindParameter
// que menciona el valor y los miembros admitidos.
func (s Set[T]) Check(param string, v T) error {
	if s.Contains(v) {
		return nil
	}
	return ParamError(param, fmt.Sprint(v), s.Strings(), s.name)
}

// CheckOptional es Check pero acepta el valor cero como "no indicado".
func (s Set[T]) CheckOptional(param string, v T) error {
	var zero T
	if v == zero {
		return nil
	}
	return s.Check(param, v)
}

// CheckAll valida cada elemento de vs.
func (s Set[T]) CheckAll(param string, vs []T) error {
	for _, v := range vs {
		if err := s.Check(param, v); err != nil {
			return err
		}
	}
	return nil
}

// Member es un valor de un conjunto cerrado que sabe validarse.
type Member interface {
	Valid() error
}

// Strings convierte una lista de valores tipados a []string.
func Strings[T ~string](vs []T) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}

// Params construye el query string de un endpoint.
// Los valores cero y los punteros nil se omiten; para enviar un cero
// explícito se usa un puntero. Los Member se validan al añadirse y el
// primer fallo queda disponible en Err.
type Params struct {
	values url.Values
	err    error
}

func NewParams() *Params {
	return &Params{values: url.Values{}}
}

// Add añade key=v si v no es cero.
func (p *Params) Add(key string, v any) *Params {
	s, ok := p.format(key, v)
	if ok {
		p.values.Set(key, s)
	}
	return p
}

// Join añade una lista separada por comas. Una lista vacía se omite.
func (p *Params) Join(key string, vs []string) *Params {
	if len(vs) > 0 {
		p.values.Set(key, strings.Join(vs, ","))
	}
	return p
}

// Repeat añade la clave una vez por valor (estilo key[]=a&key[]=b).
func (p *Params) Repeat(key string, vs []string) *Params {
	for _, v := range vs {
		p.values.Add(key, v)
	}
	return p
}

// Err devuelve el primer error de validación de un Member.
func (p *Params) Err() error {
	if p == nil {
		return nil
	}
	return p.err
}

// Values devuelve el query acumulado.
func (p *Params) Values() url.Values {
	if p == nil {
		return url.Values{}
	}
	return p.values
}

// Encode devuelve el query codificado, o el error de validación.
func (p *Params) Encode() (string, error) {
	if err := p.Err(); err != nil {
		return "", err
	}
	return p.Values().Encode(), nil
}

func (p *Params) format(key string, v any) (string, bool) {
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", false
		}
		v = rv.Elem().Interface()
		rv = rv.Elem()
	} else if rv.IsZero() {
		return "", false
	}

	if m, ok := v.(Member); ok && p.err == nil {
		if err := m.Valid(); err != nil {
			if e, ok := AsError(err); ok && e.Field == "" {
				e.Field = key
			}
			p.err = err
			return "", false
		}
	}

	switch x := v.(type) {
	case string:
		return x, true
	case bool:
		return strconv.FormatBool(x), true
	case time.Time:
		return strconv.FormatInt(x.Unix(), 10), true
	case fmt.Stringer:
		return x.String(), true
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	}
	return fmt.Sprint(v), true
}
