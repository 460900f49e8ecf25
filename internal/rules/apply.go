package rules

import (
	"github.com/dshills/veil/policy"
	"github.com/dshills/veil/redact"
)

// Apply returns a copy of doc with every compiled rule applied. The input
// document is never modified.
func Apply(doc any, compiled []Compiled) any {
	for _, c := range compiled {
		doc = applyRule(doc, c.segments, c.pol)
	}
	return doc
}

// applyRule descends doc along segs. When the path is exhausted, the
// policy's classifiable traversal redacts the matched subtree. Objects
// consume one segment per key ("*" matches every key); arrays consume a
// leading "*" as an index match, and otherwise descend without consuming
// a segment.
func applyRule(v any, segs []string, pol policy.Text) any {
	if len(segs) == 0 {
		return redact.ApplyPolicy(pol, v)
	}
	switch x := v.(type) {
	case map[string]any:
		seg := segs[0]
		out := make(map[string]any, len(x))
		for k, val := range x {
			if seg == "*" || seg == k {
				out[k] = applyRule(val, segs[1:], pol)
			} else {
				out[k] = val
			}
		}
		return out
	case []any:
		elemSegs := segs
		if segs[0] == "*" {
			elemSegs = segs[1:]
		}
		out := make([]any, len(x))
		for i, elem := range x {
			out[i] = applyRule(elem, elemSegs, pol)
		}
		return out
	default:
		// Path does not resolve in this subtree; leave it alone.
		return v
	}
}
