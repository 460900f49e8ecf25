package redact

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/dshills/veil/classification"
	"github.com/dshills/veil/policy"
)

// Mode is the redaction treatment assigned to a single field.
type Mode int

const (
	// ModePassThrough copies the field unchanged.
	ModePassThrough Mode = iota
	// ModeWalk recurses into a nested registered type, or redacts a scalar
	// to its default value.
	ModeWalk
	// ModeClassify applies a classification's policy to the field's string
	// leaves.
	ModeClassify
)

func (m Mode) String() string {
	switch m {
	case ModeWalk:
		return "walk"
	case ModeClassify:
		return "classify"
	default:
		return "passthrough"
	}
}

// fieldSpec is a declared but not yet validated field mode.
type fieldSpec struct {
	name  string
	mode  Mode
	class classification.Classification
}

// planField is a validated field entry. For classify fields the policy is
// captured at registration time, so redaction never consults the registry.
type planField struct {
	index int
	name  string
	mode  Mode
	class classification.Classification
	pol   policy.Text
}

// plan is a validated traversal plan for one struct type. Plans are fixed
// once registered.
type plan struct {
	typ    reflect.Type
	fields []planField
}

var (
	plansMu sync.RWMutex
	plans   = make(map[reflect.Type]*plan)
)

func planOf(t reflect.Type) (*plan, bool) {
	plansMu.RLock()
	defer plansMu.RUnlock()
	p, ok := plans[t]
	return p, ok
}

// Builder declares a traversal plan for a struct type. Collect field modes
// with [Builder.PassThrough], [Builder.Walk], and [Builder.Classify], then
// call [Builder.Register] to validate and install the plan.
type Builder struct {
	typ    reflect.Type
	fields []fieldSpec
}

// For starts a traversal plan for T. Fields are redacted in declaration
// order regardless of the order modes are assigned.
func For[T any]() *Builder {
	return &Builder{typ: reflect.TypeOf((*T)(nil)).Elem()}
}

// PassThrough marks fields to copy unchanged.
func (b *Builder) PassThrough(names ...string) *Builder {
	for _, n := range names {
		b.fields = append(b.fields, fieldSpec{name: n, mode: ModePassThrough})
	}
	return b
}

// Walk marks fields whose values are themselves sensitive: nested registered
// types are redacted with their own plans, scalars redact to their default
// values, and containers of either are traversed.
func (b *Builder) Walk(names ...string) *Builder {
	for _, n := range names {
		b.fields = append(b.fields, fieldSpec{name: n, mode: ModeWalk})
	}
	return b
}

// Classify marks a field as a leaf of the given classification. The field's
// type must be a string, or strings wrapped in supported containers.
func (b *Builder) Classify(name string, c classification.Classification) *Builder {
	b.fields = append(b.fields, fieldSpec{name: name, mode: ModeClassify, class: c})
	return b
}

// Register validates the plan and installs it. All errors are reported
// here; after a successful Register, Redact and DebugString for this type
// never fail.
func (b *Builder) Register() error {
	t := b.typ
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("redact: %s is not a struct type", t)
	}

	declared := make(map[string]fieldSpec, len(b.fields))
	for _, fs := range b.fields {
		if _, dup := declared[fs.name]; dup {
			return fmt.Errorf("redact: field %s.%s declared more than once", t, fs.name)
		}
		sf, ok := t.FieldByName(fs.name)
		if !ok || len(sf.Index) != 1 {
			return fmt.Errorf("redact: %s has no field %q", t, fs.name)
		}
		declared[fs.name] = fs
	}

	p := &plan{typ: t}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		fs, ok := declared[sf.Name]
		if !ok {
			return fmt.Errorf("redact: plan for %s does not cover field %q; every field needs a mode", t, sf.Name)
		}
		if !sf.IsExported() {
			return fmt.Errorf("redact: field %s.%s is unexported; redaction cannot rebuild it", t, sf.Name)
		}
		pf := planField{index: i, name: sf.Name, mode: fs.mode, class: fs.class}
		switch fs.mode {
		case ModeClassify:
			if !classifiableType(sf.Type) {
				return fmt.Errorf("redact: field %s.%s has type %s, which has no string leaves to classify; use Walk for nested types and scalars", t, sf.Name, sf.Type)
			}
			pol, ok := classification.Resolve(fs.class)
			if !ok {
				return fmt.Errorf("redact: field %s.%s uses classification %q, which has no registered policy", t, sf.Name, fs.class)
			}
			pf.pol = pol
		case ModeWalk:
			if !walkableType(sf.Type, t) {
				if sf.Type.Kind() == reflect.String {
					return fmt.Errorf("redact: field %s.%s is a string; strings carry a classification, use Classify instead", t, sf.Name)
				}
				return fmt.Errorf("redact: field %s.%s has type %s, which is neither a registered type nor a scalar", t, sf.Name, sf.Type)
			}
		}
		p.fields = append(p.fields, pf)
	}

	plansMu.Lock()
	defer plansMu.Unlock()
	if _, exists := plans[t]; exists {
		return fmt.Errorf("redact: plan already registered for %s", t)
	}
	plans[t] = p
	return nil
}

// classifiableType reports whether t can carry a classification: a string
// leaf, or strings reachable through supported container shapes. Interface
// types are accepted and resolved per value during traversal.
func classifiableType(t reflect.Type) bool {
	if t.Implements(containerType) {
		for _, in := range innerTypesOf(t) {
			if !classifiableType(in) {
				return false
			}
		}
		return true
	}
	switch t.Kind() {
	case reflect.String, reflect.Interface:
		return true
	case reflect.Pointer, reflect.Slice, reflect.Array, reflect.Map:
		return classifiableType(t.Elem())
	default:
		return false
	}
}

// walkableType reports whether t can be walked: a registered type (or self,
// for recursive shapes), a scalar, or containers of either. Strings are not
// walkable; they need a classification.
func walkableType(t, self reflect.Type) bool {
	if t == self {
		return true
	}
	if _, ok := planOf(t); ok {
		return true
	}
	if t.Implements(containerType) {
		for _, in := range innerTypesOf(t) {
			if !walkableType(in, self) {
				return false
			}
		}
		return true
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Interface:
		return true
	case reflect.Pointer, reflect.Slice, reflect.Array, reflect.Map:
		return walkableType(t.Elem(), self)
	default:
		return false
	}
}

func innerTypesOf(t reflect.Type) []reflect.Type {
	return reflect.Zero(t).Interface().(container).innerTypes()
}
