// Package redact produces redacted copies of structured values.
//
// Types opt in by registering a traversal plan that assigns each field one
// of three modes: pass through unchanged, walk into nested sensitive
// structure, or classify a leaf so the policy for a classification is
// applied to it. Plans are built with [For] and validated when registered,
// so [Redact] and [DebugString] never fail for a registered type.
//
//	err := redact.For[User]().
//		PassThrough("Username").
//		Classify("Password", classification.Secret).
//		Walk("Age").
//		Register()
//
// Classified fields may be bare strings or strings nested arbitrarily deep
// inside the supported container shapes: pointers, slices, arrays, maps
// (values only; keys are never touched), and the package's own [Option],
// [Result], and [Set] types. Walked fields are nested registered types or
// scalars, which redact to fixed defaults (numbers to zero, bools to false,
// [Char] to 'X').
//
// All operations build a fresh value tree and leave the input untouched.
// Plan registration belongs in program initialization; afterwards redaction
// is safe for concurrent use across distinct values.
package redact
