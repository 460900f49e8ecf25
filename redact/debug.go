package redact

import (
	"fmt"
	"reflect"
	"strings"
)

// DebugPlaceholder is the fixed text marked fields render as in debug
// output, independent of any registered policy.
const DebugPlaceholder = "[REDACTED]"

// DebugString renders v for debugging without consulting any redaction
// policy: classify- and walk-marked fields print [DebugPlaceholder] (nested
// registered types render recursively with their own plans), pass-through
// fields render normally. It is the safety net for accidental debug
// printing; even if a policy keeps part of a value visible, DebugString
// never shows any of it. The only error is an unregistered type.
func DebugString(v any) (string, error) {
	if v == nil {
		return "", fmt.Errorf("redact: cannot render nil")
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		if p, ok := planOf(rv.Type().Elem()); ok {
			return debugStruct(rv.Elem(), p), nil
		}
	}
	p, ok := planOf(rv.Type())
	if !ok {
		return "", fmt.Errorf("redact: no traversal plan registered for %s", rv.Type())
	}
	return debugStruct(rv, p), nil
}

func debugStruct(rv reflect.Value, p *plan) string {
	var b strings.Builder
	b.WriteString(p.typ.Name())
	b.WriteByte('{')
	for i, f := range p.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.name)
		b.WriteString(": ")
		switch f.mode {
		case ModePassThrough:
			b.WriteString(formatPlain(rv.Field(f.index)))
		default:
			b.WriteString(debugValue(rv.Field(f.index)))
		}
	}
	b.WriteByte('}')
	return b.String()
}

// debugValue renders a marked field. Registered types render through their
// plans so pass-through parts of nested structure stay readable; anything
// else is hidden behind the placeholder.
func debugValue(rv reflect.Value) string {
	if p, ok := planOf(rv.Type()); ok {
		return debugStruct(rv, p)
	}
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		if p, ok := planOf(rv.Type().Elem()); ok {
			return debugStruct(rv.Elem(), p)
		}
	}
	return fmt.Sprintf("%q", DebugPlaceholder)
}

func formatPlain(rv reflect.Value) string {
	if rv.Kind() == reflect.String {
		return fmt.Sprintf("%q", rv.String())
	}
	return fmt.Sprintf("%v", rv.Interface())
}
