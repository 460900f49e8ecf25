package redact

import (
	"fmt"
	"reflect"

	"github.com/dshills/veil/policy"
)

// Redact returns a redacted copy of v according to the traversal plan
// registered for its type. T may also be a pointer to a registered type, in
// which case a new pointer to a redacted copy is returned (nil stays nil).
// The input is never modified. The only error is an unregistered type; with
// a registered plan, Redact is total.
func Redact[T any](v T) (T, error) {
	out, err := redactAny(v, reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		var zero T
		return zero, err
	}
	return castInner[T](out), nil
}

func redactAny(v any, t reflect.Type) (any, error) {
	if t.Kind() == reflect.Pointer {
		if p, ok := planOf(t.Elem()); ok {
			rv := reflect.ValueOf(v)
			if rv.IsNil() {
				return v, nil
			}
			out := reflect.New(t.Elem())
			out.Elem().Set(redactStruct(rv.Elem(), p))
			return out.Interface(), nil
		}
	}
	p, ok := planOf(t)
	if !ok {
		return nil, fmt.Errorf("redact: no traversal plan registered for %s", t)
	}
	return redactStruct(reflect.ValueOf(v), p).Interface(), nil
}

// redactStruct builds a fresh instance of p.typ with every field treated
// per its plan mode.
func redactStruct(rv reflect.Value, p *plan) reflect.Value {
	out := reflect.New(p.typ).Elem()
	for _, f := range p.fields {
		fv := rv.Field(f.index)
		switch f.mode {
		case ModeClassify:
			out.Field(f.index).Set(classifyValue(fv, f.pol.Apply))
		case ModeWalk:
			out.Field(f.index).Set(walkValue(fv))
		default:
			out.Field(f.index).Set(fv)
		}
	}
	return out
}

// walkValue redacts a walk-mode value: registered types recurse through
// their own plans, scalars redact to defaults, containers are rebuilt
// around walked contents.
func walkValue(rv reflect.Value) reflect.Value {
	t := rv.Type()
	if p, ok := planOf(t); ok {
		return redactStruct(rv, p)
	}
	if t == charType {
		return reflect.ValueOf(CharSentinel)
	}
	if rv.CanInterface() {
		if c, ok := rv.Interface().(container); ok {
			return reflect.ValueOf(c.mapInner(walkAny))
		}
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return reflect.Zero(t)
	case reflect.String:
		// Statically-typed string fields are rejected at registration; a
		// string can still arrive here dynamically, through an interface
		// slot or a container of any. It must not pass through.
		return reflect.ValueOf(policy.Placeholder).Convert(t)
	case reflect.Pointer:
		if rv.IsNil() {
			return rv
		}
		out := reflect.New(t.Elem())
		out.Elem().Set(walkValue(rv.Elem()))
		return out
	case reflect.Slice:
		if rv.IsNil() {
			return rv
		}
		out := reflect.MakeSlice(t, rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(walkValue(rv.Index(i)))
		}
		return out
	case reflect.Array:
		out := reflect.New(t).Elem()
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(walkValue(rv.Index(i)))
		}
		return out
	case reflect.Map:
		if rv.IsNil() {
			return rv
		}
		out := reflect.MakeMapWithSize(t, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), walkValue(iter.Value()))
		}
		return out
	case reflect.Interface:
		if rv.IsNil() {
			return rv
		}
		out := reflect.New(t).Elem()
		if inner := walkAny(rv.Elem().Interface()); inner != nil {
			out.Set(reflect.ValueOf(inner))
		}
		return out
	default:
		// Validation keeps anything else out of walk position; pass through
		// so redaction stays total.
		return rv
	}
}

func walkAny(v any) any {
	if v == nil {
		return nil
	}
	return walkValue(reflect.ValueOf(v)).Interface()
}
