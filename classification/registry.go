package classification

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/veil/policy"
)

// Registry maps classifications to text redaction policies.
//
// Lifecycle: register everything during initialization, optionally call
// [Registry.Freeze], then share freely. Registration is serialized by a
// mutex; concurrent registration and resolution during the init phase is
// the caller's responsibility to avoid, as is re-registering after freeze.
type Registry struct {
	mu       sync.Mutex
	frozen   bool
	policies map[Classification]policy.Text
}

// NewRegistry returns a registry pre-populated with the built-in
// classifications.
func NewRegistry() *Registry {
	return &Registry{policies: builtins()}
}

// Register associates a classification with a policy, replacing any
// previous association. It fails once the registry is frozen.
func (r *Registry) Register(c Classification, p policy.Text) error {
	if c == "" {
		return fmt.Errorf("classification name must not be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		return fmt.Errorf("registry is frozen: cannot register %q", c)
	}
	r.policies[c] = p
	return nil
}

// Resolve returns the policy for c and whether one is registered.
func (r *Registry) Resolve(c Classification) (policy.Text, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.policies[c]
	return p, ok
}

// Freeze ends the registration phase. Subsequent Register calls fail.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// Classifications returns every registered classification in sorted order.
func (r *Registry) Classifications() []Classification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Classification, 0, len(r.policies))
	for c := range r.policies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// defaultRegistry is the process-wide registry used by the package-level
// functions and by traversal plans that do not name a registry explicitly.
var defaultRegistry = NewRegistry()

// Register adds a classification to the default registry.
func Register(c Classification, p policy.Text) error {
	return defaultRegistry.Register(c, p)
}

// Resolve looks up a classification in the default registry.
func Resolve(c Classification) (policy.Text, bool) {
	return defaultRegistry.Resolve(c)
}

// Freeze freezes the default registry.
func Freeze() {
	defaultRegistry.Freeze()
}

// Classifications lists the default registry in sorted order.
func Classifications() []Classification {
	return defaultRegistry.Classifications()
}
