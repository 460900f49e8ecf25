package rules

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dshills/veil/classification"
	"github.com/dshills/veil/policy"
)

// File is a parsed rules file.
type File struct {
	// Policies defines custom classifications by name.
	Policies map[string]PolicySpec `yaml:"policies,omitempty"`
	// Rules binds document paths to classifications.
	Rules []Rule `yaml:"rules"`
}

// PolicySpec declares a text redaction policy in a rules file.
type PolicySpec struct {
	Policy      string `yaml:"policy"` // full | keep | mask
	Placeholder string `yaml:"placeholder,omitempty"`
	Prefix      int    `yaml:"prefix,omitempty"`
	Suffix      int    `yaml:"suffix,omitempty"`
	Mask        string `yaml:"mask,omitempty"`
}

// Rule binds one document path to a classification.
type Rule struct {
	Path           string `yaml:"path"`
	Classification string `yaml:"classification"`
}

// Load reads and parses a rules file. Returns nil File and nil error if
// path is empty.
func Load(path string) (*File, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing rules file: %w", err)
	}
	return &f, nil
}

// Build converts a policy spec to a policy.Text.
func (p PolicySpec) Build() (policy.Text, error) {
	var t policy.Text
	switch p.Policy {
	case "full":
		if p.Placeholder != "" {
			t = policy.FullWith(p.Placeholder)
		} else {
			t = policy.Full()
		}
	case "keep":
		t = policy.Keep(p.Prefix, p.Suffix)
	case "mask":
		t = policy.Mask(p.Prefix, p.Suffix)
	default:
		return t, fmt.Errorf("unknown policy %q (expected full, keep, or mask)", p.Policy)
	}
	if p.Mask != "" {
		runes := []rune(p.Mask)
		if len(runes) != 1 {
			return t, fmt.Errorf("mask must be a single character, got %q", p.Mask)
		}
		t = t.WithMask(runes[0])
	}
	return t, nil
}

// Compiled is a validated rule ready to apply: its classification has been
// resolved to a concrete policy.
type Compiled struct {
	segments []string
	pol      policy.Text
}

// Compile registers the file's custom policies with reg and resolves every
// rule against it. All configuration errors surface here, so Apply cannot
// fail later.
func Compile(f *File, reg *classification.Registry) ([]Compiled, error) {
	if f == nil {
		return nil, nil
	}
	for name, spec := range f.Policies {
		pol, err := spec.Build()
		if err != nil {
			return nil, fmt.Errorf("policy %q: %w", name, err)
		}
		if err := reg.Register(classification.Classification(name), pol); err != nil {
			return nil, fmt.Errorf("policy %q: %w", name, err)
		}
	}
	compiled := make([]Compiled, 0, len(f.Rules))
	for i, r := range f.Rules {
		if r.Path == "" {
			return nil, fmt.Errorf("rule %d: path must not be empty", i)
		}
		pol, ok := reg.Resolve(classification.Classification(r.Classification))
		if !ok {
			return nil, fmt.Errorf("rule %d (%s): classification %q has no registered policy", i, r.Path, r.Classification)
		}
		compiled = append(compiled, Compiled{
			segments: strings.Split(r.Path, "."),
			pol:      pol,
		})
	}
	return compiled, nil
}
