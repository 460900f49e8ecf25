package redact

import (
	"strings"
	"testing"

	"github.com/dshills/veil/classification"
	"github.com/dshills/veil/policy"
)

func TestDebugStringHidesMarkedFields(t *testing.T) {
	registerWalkerPlans(t)
	in := account{Username: "alice", Password: "hunter2", Age: 30}
	got, err := DebugString(in)
	if err != nil {
		t.Fatalf("DebugString: %v", err)
	}
	want := `account{Username: "alice", Password: "[REDACTED]", Age: "[REDACTED]"}`
	if got != want {
		t.Errorf("DebugString = %s, want %s", got, want)
	}
	if strings.Contains(got, "hunter2") {
		t.Errorf("debug output leaks the password: %s", got)
	}
}

func TestDebugStringIgnoresPolicies(t *testing.T) {
	// A partially-visible policy must not leak into debug output: the
	// formatter never consults the policy engine.
	if err := classification.Register("debug_partial", policy.KeepLast(2)); err != nil {
		t.Fatalf("Register classification: %v", err)
	}
	type debugPartial struct {
		Code string
	}
	if err := For[debugPartial]().
		Classify("Code", classification.Classification("debug_partial")).
		Register(); err != nil {
		t.Fatalf("Register plan: %v", err)
	}

	red, err := Redact(debugPartial{Code: "abcdef"})
	if err != nil {
		t.Fatalf("Redact: %v", err)
	}
	if red.Code != "****ef" {
		t.Fatalf("policy sanity check failed: %q", red.Code)
	}

	got, err := DebugString(debugPartial{Code: "abcdef"})
	if err != nil {
		t.Fatalf("DebugString: %v", err)
	}
	if got != `debugPartial{Code: "[REDACTED]"}` {
		t.Errorf("DebugString = %s", got)
	}
}

func TestDebugStringNestedAggregate(t *testing.T) {
	registerWalkerPlans(t)
	in := profile{
		DisplayName: "Alice",
		Account:     account{Username: "alice", Password: "hunter2", Age: 30},
	}
	got, err := DebugString(in)
	if err != nil {
		t.Fatalf("DebugString: %v", err)
	}
	if !strings.HasPrefix(got, `profile{DisplayName: "Alice", Account: account{`) {
		t.Errorf("nested aggregate not rendered through its plan: %s", got)
	}
	if strings.Contains(got, "hunter2") || strings.Contains(got, "30") {
		t.Errorf("debug output leaks nested values: %s", got)
	}
}

func TestDebugStringPointerEntry(t *testing.T) {
	registerWalkerPlans(t)
	got, err := DebugString(&account{Username: "bob", Password: "pw", Age: 1})
	if err != nil {
		t.Fatalf("DebugString: %v", err)
	}
	if !strings.HasPrefix(got, "account{") {
		t.Errorf("DebugString = %s", got)
	}
}

func TestDebugStringUnregisteredType(t *testing.T) {
	type debugStranger struct{ X string }
	if _, err := DebugString(debugStranger{X: "x"}); err == nil {
		t.Error("DebugString of unregistered type succeeded, want error")
	}
}
