package fetchserp

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Param is a single named query parameter. Value may be a scalar or a
// slice of scalars.
type Param struct {
	Name  string
	Value any
}

// Params is an ordered set of query parameters. Order of insertion is the
// order of encoding.
type Params []Param

// Add appends a parameter unconditionally.
func (p Params) Add(name string, value any) Params {
	return append(p, Param{Name: name, Value: value})
}

// AddOptional appends a parameter only when value is not its zero value.
func (p Params) AddOptional(name string, value any) Params {
	if isZero(value) {
		return p
	}
	return p.Add(name, value)
}

// Encode renders the parameters as a query string. Nil values are skipped,
// sequences expand into one "name[]" entry per element.
func (p Params) Encode() string {
	var b strings.Builder

	write := func(name, value string) {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(value))
	}

	for _, param := range p {
		v, ok := deref(param.Value)
		if !ok {
			continue
		}

		if v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
			if v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8 {
				write(param.Name, string(v.Bytes()))
				continue
			}
			for i := 0; i < v.Len(); i++ {
				elem, ok := deref(v.Index(i).Interface())
				if !ok {
					continue
				}
				write(param.Name+"[]", formatScalar(elem))
			}
			continue
		}

		write(param.Name, formatScalar(v))
	}

	return b.String()
}

// deref unwraps pointers and interfaces, reporting false for nil.
func deref(value any) (reflect.Value, bool) {
	if value == nil {
		return reflect.Value{}, false
	}
	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	return v, true
}

func formatScalar(v reflect.Value) string {
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String()
	}

	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	default:
		return fmt.Sprint(v.Interface())
	}
}

func isZero(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
