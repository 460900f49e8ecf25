package redact

import (
	"fmt"
	"reflect"

	"github.com/dshills/veil/classification"
	"github.com/dshills/veil/policy"
)

// Classify rebuilds v with the policy registered for c applied to every
// reachable string leaf. It fails only when c has no registered policy in
// the default classification registry.
func Classify[T any](c classification.Classification, v T) (T, error) {
	pol, ok := classification.Resolve(c)
	if !ok {
		var zero T
		return zero, fmt.Errorf("classification %q has no registered policy", c)
	}
	return ApplyPolicy(pol, v), nil
}

// ApplyPolicy rebuilds v with pol applied to every reachable string leaf.
// Strings nested inside pointers, slices, arrays, maps (values only),
// Option, Result, and Set are transformed; everything else passes through
// untouched. The input is never modified.
func ApplyPolicy[T any](pol policy.Text, v T) T {
	return castInner[T](applyToLeaves(v, pol.Apply))
}

func applyToLeaves(v any, apply func(string) string) any {
	switch x := v.(type) {
	case nil:
		return nil
	case string:
		return apply(x)
	case container:
		return x.mapInner(func(in any) any { return applyToLeaves(in, apply) })
	}
	return classifyValue(reflect.ValueOf(v), apply).Interface()
}

// classifyValue is the reflect form of applyToLeaves. It preserves the type
// of rv, so named string types stay named and containers keep their shape.
func classifyValue(rv reflect.Value, apply func(string) string) reflect.Value {
	if rv.CanInterface() {
		if c, ok := rv.Interface().(container); ok {
			mapped := c.mapInner(func(in any) any { return applyToLeaves(in, apply) })
			return reflect.ValueOf(mapped)
		}
	}
	switch rv.Kind() {
	case reflect.String:
		return reflect.ValueOf(apply(rv.String())).Convert(rv.Type())
	case reflect.Pointer:
		if rv.IsNil() {
			return rv
		}
		out := reflect.New(rv.Type().Elem())
		out.Elem().Set(classifyValue(rv.Elem(), apply))
		return out
	case reflect.Slice:
		if rv.IsNil() {
			return rv
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(classifyValue(rv.Index(i), apply))
		}
		return out
	case reflect.Array:
		out := reflect.New(rv.Type()).Elem()
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(classifyValue(rv.Index(i), apply))
		}
		return out
	case reflect.Map:
		if rv.IsNil() {
			return rv
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			// Keys are never redacted.
			out.SetMapIndex(iter.Key(), classifyValue(iter.Value(), apply))
		}
		return out
	case reflect.Interface:
		if rv.IsNil() {
			return rv
		}
		out := reflect.New(rv.Type()).Elem()
		if inner := applyToLeaves(rv.Elem().Interface(), apply); inner != nil {
			out.Set(reflect.ValueOf(inner))
		}
		return out
	default:
		// Non-string substructure (numbers, bools, discriminants, structs
		// without string leaves) passes through untouched.
		return rv
	}
}
