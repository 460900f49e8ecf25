package redact

import (
	"log/slog"
	"reflect"
)

// Logged wraps v so structured-logging handlers receive its redacted form.
// The original value is never emitted: if v's type has no registered plan,
// the log attribute falls back to [DebugPlaceholder] rather than leaking.
//
//	slog.Info("login", "user", redact.Logged(user))
func Logged(v any) slog.LogValuer {
	return loggedValue{v: v}
}

type loggedValue struct {
	v any
}

// LogValue implements [slog.LogValuer] by redacting the wrapped value.
func (l loggedValue) LogValue() slog.Value {
	if l.v == nil {
		return slog.AnyValue(nil)
	}
	out, err := redactAny(l.v, reflect.TypeOf(l.v))
	if err != nil {
		return slog.StringValue(DebugPlaceholder)
	}
	return slog.AnyValue(out)
}
