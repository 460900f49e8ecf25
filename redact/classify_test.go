package redact

import (
	"reflect"
	"testing"

	"github.com/dshills/veil/classification"
	"github.com/dshills/veil/policy"
)

func TestApplyPolicyString(t *testing.T) {
	tests := []struct {
		name  string
		pol   policy.Text
		input string
		want  string
	}{
		{"full", policy.Full(), "hunter2", "[REDACTED]"},
		{"keep", policy.KeepLast(4), "abcd1234", "****1234"},
		{"mask", policy.MaskFirst(2), "abcdef", "**cdef"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyPolicy(tt.pol, tt.input); got != tt.want {
				t.Errorf("ApplyPolicy(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestApplyPolicyNamedStringType(t *testing.T) {
	type Token string
	got := ApplyPolicy(policy.KeepLast(4), Token("abcd1234"))
	if got != Token("****1234") {
		t.Errorf("ApplyPolicy = %q, want %q", got, "****1234")
	}
}

func TestApplyPolicyOption(t *testing.T) {
	some := ApplyPolicy(policy.Full(), Some([]string{"a", "bb"}))
	items, ok := some.Get()
	if !ok {
		t.Fatal("Some became None")
	}
	if !reflect.DeepEqual(items, []string{"[REDACTED]", "[REDACTED]"}) {
		t.Errorf("items = %v", items)
	}

	none := ApplyPolicy(policy.Full(), None[string]())
	if none.IsSome() {
		t.Error("None became Some")
	}
}

func TestApplyPolicySlice(t *testing.T) {
	in := []string{"one", "two", "three"}
	out := ApplyPolicy(policy.Full(), in)
	if len(out) != len(in) {
		t.Fatalf("length changed: %d != %d", len(out), len(in))
	}
	for i, s := range out {
		if s != "[REDACTED]" {
			t.Errorf("out[%d] = %q", i, s)
		}
	}
	// Input must be untouched.
	if in[0] != "one" {
		t.Errorf("input modified: %v", in)
	}
}

func TestApplyPolicyMapKeysUntouched(t *testing.T) {
	in := map[string]string{"user": "alice", "host": "db01"}
	out := ApplyPolicy(policy.Full(), in)
	if len(out) != 2 {
		t.Fatalf("map length changed: %d", len(out))
	}
	for _, k := range []string{"user", "host"} {
		v, ok := out[k]
		if !ok {
			t.Fatalf("key %q missing after redaction", k)
		}
		if v != "[REDACTED]" {
			t.Errorf("out[%q] = %q", k, v)
		}
	}
	if in["user"] != "alice" {
		t.Errorf("input modified: %v", in)
	}
}

func TestApplyPolicySet(t *testing.T) {
	out := ApplyPolicy(policy.Full(), NewSet("a", "b", "c"))
	// All elements redact to the same placeholder and collapse.
	if out.Len() != 1 {
		t.Fatalf("set len = %d, want 1", out.Len())
	}
	if !out.Contains("[REDACTED]") {
		t.Errorf("set missing placeholder: %v", out.Items())
	}
}

func TestApplyPolicyResult(t *testing.T) {
	ok := ApplyPolicy(policy.Full(), Ok[string, string]("good"))
	if v, isOk := ok.Ok(); !isOk || v != "[REDACTED]" {
		t.Errorf("Ok side = %q, %v", v, isOk)
	}
	bad := ApplyPolicy(policy.Full(), Err[string, string]("oops"))
	if e, isErr := bad.Err(); !isErr || e != "[REDACTED]" {
		t.Errorf("Err side = %q, %v", e, isErr)
	}
}

func TestApplyPolicyBox(t *testing.T) {
	s := "secret"
	out := ApplyPolicy(policy.Full(), &s)
	if out == &s {
		t.Fatal("pointer not rebuilt")
	}
	if *out != "[REDACTED]" {
		t.Errorf("*out = %q", *out)
	}
	if s != "secret" {
		t.Errorf("input modified: %q", s)
	}

	var nilPtr *string
	if got := ApplyPolicy(policy.Full(), nilPtr); got != nil {
		t.Errorf("nil pointer became %v", got)
	}
}

func TestApplyPolicyDeepNesting(t *testing.T) {
	in := Some(map[string]Option[[]string]{
		"a": Some([]string{"x", "yy"}),
		"b": None[[]string](),
	})
	out := ApplyPolicy(policy.KeepLast(1), in)
	m, ok := out.Get()
	if !ok {
		t.Fatal("outer Some became None")
	}
	inner, ok := m["a"].Get()
	if !ok {
		t.Fatal("inner Some became None")
	}
	if !reflect.DeepEqual(inner, []string{"x", "*y"}) {
		t.Errorf("inner = %v", inner)
	}
	if m["b"].IsSome() {
		t.Error("inner None became Some")
	}
}

func TestApplyPolicyNonStringUntouched(t *testing.T) {
	type payload struct{ N int }
	if got := ApplyPolicy(policy.Full(), 42); got != 42 {
		t.Errorf("int changed: %v", got)
	}
	if got := ApplyPolicy(policy.Full(), true); got != true {
		t.Errorf("bool changed: %v", got)
	}
	if got := ApplyPolicy(policy.Full(), payload{N: 7}); got.N != 7 {
		t.Errorf("struct changed: %v", got)
	}
}

func TestApplyPolicyInterfaceValues(t *testing.T) {
	in := map[string]any{
		"name":  "alice",
		"count": 3,
		"tags":  []any{"x", 1, "y"},
	}
	out := ApplyPolicy(policy.Full(), in)
	if out["name"] != "[REDACTED]" {
		t.Errorf("name = %v", out["name"])
	}
	if out["count"] != 3 {
		t.Errorf("count = %v", out["count"])
	}
	tags, ok := out["tags"].([]any)
	if !ok {
		t.Fatalf("tags type = %T", out["tags"])
	}
	if tags[0] != "[REDACTED]" || tags[1] != 1 || tags[2] != "[REDACTED]" {
		t.Errorf("tags = %v", tags)
	}
}

func TestClassifyResolvesRegistry(t *testing.T) {
	got, err := Classify(classification.Secret, Some([]string{"a", "bb"}))
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	items, _ := got.Get()
	if !reflect.DeepEqual(items, []string{"[REDACTED]", "[REDACTED]"}) {
		t.Errorf("items = %v", items)
	}
}

func TestClassifyUnknownClassification(t *testing.T) {
	if _, err := Classify(classification.Classification("bogus"), "x"); err == nil {
		t.Error("Classify with unknown classification succeeded, want error")
	}
}
