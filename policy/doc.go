// Package policy implements text redaction policies.
//
// A [Text] policy is a pure transformation from one string to another. The
// three strategies are full replacement ([Full]), keeping selected segments
// visible while masking the rest ([Keep]), and masking selected segments
// while keeping the rest visible ([Mask]). All counts and lengths are in
// Unicode code points, never bytes, so multi-byte characters mask correctly.
//
// Policies carry no notion of what data they protect; binding a policy to a
// kind of data is the job of package classification.
package policy
