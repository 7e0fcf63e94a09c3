package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
	})
	return validate
}

// Decode valida raw contra la forma de T y lo decodifica.
//
// Un campo es obligatorio salvo que sea puntero, interfaz o lleve omitempty.
// Los campos desconocidos se ignoran salvo con strict. Las restricciones
// declaradas con tags validate se comprueban después de decodificar.
func Decode[T any](raw []byte, strict bool) (T, error) {
	var out T
	if !json.Valid(raw) {
		return out, &Error{Kind: KindDecode, Body: raw, Message: "response body is not valid JSON"}
	}

	var generic any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&generic); err != nil {
		return out, &Error{Kind: KindDecode, Body: raw, Message: err.Error(), Err: err}
	}
	if err := checkRequired(reflect.TypeOf(out), generic, ""); err != nil {
		return out, err
	}

	dec = json.NewDecoder(bytes.NewReader(raw))
	if strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(&out); err != nil {
		return out, schemaError(err)
	}

	if err := checkConstraints(out, KindSchema); err != nil {
		return out, err
	}
	return out, nil
}

// ValidateStruct comprueba los tags validate de un struct de opciones
// y devuelve un error KindParameter con el primer fallo.
func ValidateStruct(v any) error {
	return checkConstraints(v, KindParameter)
}

func checkConstraints(v any, kind Kind) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
		return constraintError(validatorInstance().Struct(rv.Interface()), kind, rv.Type().Name())
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if err := checkConstraints(rv.Index(i).Interface(), kind); err != nil {
				if e, ok := AsError(err); ok {
					e.Field = fmt.Sprintf("[%d]", i) + dotted(e.Field)
				}
				return err
			}
		}
	}
	return nil
}

func dotted(field string) string {
	if field == "" || strings.HasPrefix(field, "[") {
		return field
	}
	return "." + field
}

// constraintError traduce el primer fallo del validator. El namespace se
// devuelve sin el nombre del struct raíz, que en tipos genéricos incluye
// el import path de sus argumentos.
func constraintError(err error, kind Kind, root string) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &Error{Kind: kind, Message: err.Error(), Err: err}
	}
	fe := verrs[0]
	field := strings.TrimPrefix(fe.Namespace(), root+".")
	msg := fmt.Sprintf("failed on '%s' constraint", fe.Tag())
	if fe.Param() != "" {
		msg = fmt.Sprintf("failed on '%s=%s' constraint", fe.Tag(), fe.Param())
	}
	return &Error{
		Kind:    kind,
		Field:   field,
		Value:   fmt.Sprint(fe.Value()),
		Message: msg,
		Err:     err,
	}
}

func schemaError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &Error{
			Kind:    KindSchema,
			Field:   typeErr.Field,
			Value:   typeErr.Value,
			Message: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
			Err:     err,
		}
	}
	msg := err.Error()
	if strings.HasPrefix(msg, "json: unknown field ") {
		field, _ := strconv.Unquote(strings.TrimPrefix(msg, "json: unknown field "))
		return &Error{Kind: KindSchema, Field: field, Message: "unknown field", Err: err}
	}
	return &Error{Kind: KindSchema, Message: msg, Err: err}
}

var unmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()

func missing(path string) error {
	return &Error{Kind: KindSchema, Field: path, Message: "field required"}
}

// checkRequired recorre la forma t contra el JSON genérico v y falla en
// el primer campo obligatorio ausente o nulo.
func checkRequired(t reflect.Type, v any, path string) error {
	for t.Kind() == reflect.Pointer {
		if v == nil {
			return nil
		}
		t = t.Elem()
	}
	if v == nil {
		return nil
	}
	if t.Implements(unmarshalerType) || reflect.PointerTo(t).Implements(unmarshalerType) {
		return nil
	}

	switch t.Kind() {
	case reflect.Struct:
		obj, ok := v.(map[string]any)
		if !ok {
			return nil
		}
		return checkStruct(t, obj, path)
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return nil
		}
		arr, ok := v.([]any)
		if !ok {
			return nil
		}
		for i, item := range arr {
			if err := checkRequired(t.Elem(), item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	case reflect.Map:
		obj, ok := v.(map[string]any)
		if !ok {
			return nil
		}
		for k, item := range obj {
			if err := checkRequired(t.Elem(), item, join(path, k)); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkStruct(t reflect.Type, obj map[string]any, path string) error {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")

		if f.Anonymous && name == "" {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				if err := checkStruct(ft, obj, path); err != nil {
					return err
				}
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}

		optional := strings.Contains(opts, "omitempty") || strings.Contains(opts, "omitzero") ||
			f.Type.Kind() == reflect.Pointer || f.Type.Kind() == reflect.Interface

		val, ok := lookup(obj, name)
		fieldPath := join(path, name)
		if !ok || val == nil {
			if optional {
				continue
			}
			return missing(fieldPath)
		}
		if err := checkRequired(f.Type, val, fieldPath); err != nil {
			return err
		}
	}
	return nil
}

// lookup reproduce el match de encoding/json: exacto y luego sin mayúsculas.
func lookup(obj map[string]any, name string) (any, bool) {
	if v, ok := obj[name]; ok {
		return v, true
	}
	for k, v := range obj {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
