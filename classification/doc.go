// Package classification maps kinds of sensitive data to redaction policies.
//
// A [Classification] is a nominal label ("secret", "email", ...) carrying no
// behavior of its own; the [Registry] resolves it to a concrete policy.Text.
// The package-level default registry is pre-populated with built-ins and is
// meant to be extended during program initialization, then optionally frozen
// with [Freeze]. After the registration phase the registry is read-only and
// safe for concurrent use.
package classification
