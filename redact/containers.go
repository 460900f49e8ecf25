package redact

import "reflect"

// container is implemented by the generic wrapper types so traversal can
// rebuild them without knowing their type parameters. mapInner rebuilds the
// container with fn applied to each contained value; innerTypes reports the
// statically contained types for plan validation.
type container interface {
	mapInner(fn func(any) any) any
	innerTypes() []reflect.Type
}

var containerType = reflect.TypeOf((*container)(nil)).Elem()

// castInner narrows a traversal result back to the container's element type.
// A nil result (an untyped nil inside an interface-typed slot) becomes the
// zero value rather than a failed assertion.
func castInner[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}

// Option is an optional value: either Some(v) or None.
type Option[T any] struct {
	value   T
	present bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool { return o.present }

// Get returns the held value and whether one is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.present }

func (o Option[T]) mapInner(fn func(any) any) any {
	if !o.present {
		return o
	}
	return Option[T]{value: castInner[T](fn(o.value)), present: true}
}

func (o Option[T]) innerTypes() []reflect.Type {
	return []reflect.Type{reflect.TypeOf((*T)(nil)).Elem()}
}

// Result holds either a success value or a failure value. Both sides are
// subject to redaction; the discriminant is preserved.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok returns a successful Result.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v, ok: true}
}

// Err returns a failed Result.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// IsOk reports whether the Result holds a success value.
func (r Result[T, E]) IsOk() bool { return r.ok }

// Ok returns the success value and whether the Result is successful.
func (r Result[T, E]) Ok() (T, bool) { return r.value, r.ok }

// Err returns the failure value and whether the Result is failed.
func (r Result[T, E]) Err() (E, bool) { return r.err, !r.ok }

func (r Result[T, E]) mapInner(fn func(any) any) any {
	if r.ok {
		return Result[T, E]{value: castInner[T](fn(r.value)), ok: true}
	}
	return Result[T, E]{err: castInner[E](fn(r.err))}
}

func (r Result[T, E]) innerTypes() []reflect.Type {
	return []reflect.Type{reflect.TypeOf((*T)(nil)).Elem(), reflect.TypeOf((*E)(nil)).Elem()}
}

// Set is an unordered collection of unique values. Elements are subject to
// redaction; duplicates produced by a transformation collapse.
type Set[T comparable] map[T]struct{}

// NewSet returns a Set holding the given items.
func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, v := range items {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts v into the set.
func (s Set[T]) Add(v T) { s[v] = struct{}{} }

// Contains reports whether v is in the set.
func (s Set[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of elements.
func (s Set[T]) Len() int { return len(s) }

// Items returns the elements in unspecified order.
func (s Set[T]) Items() []T {
	out := make([]T, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	return out
}

func (s Set[T]) mapInner(fn func(any) any) any {
	out := make(Set[T], len(s))
	for v := range s {
		out[castInner[T](fn(v))] = struct{}{}
	}
	return out
}

func (s Set[T]) innerTypes() []reflect.Type {
	return []reflect.Type{reflect.TypeOf((*T)(nil)).Elem()}
}

// Char is a single character that redacts to [CharSentinel] when walked.
// It is a distinct type because reflection cannot tell rune from int32.
type Char rune

// CharSentinel is the value walked Char fields redact to.
const CharSentinel Char = 'X'

var charType = reflect.TypeOf((*Char)(nil)).Elem()
