// Package output writes redacted documents and policy listings.
//
// The JSON writer emits a redacted document, optionally indented; the text
// writer renders the classification table for "veil policies". Use
// [ForFormat] to select a writer by name.
package output
