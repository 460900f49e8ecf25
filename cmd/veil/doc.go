// Veil is a CLI for redacting sensitive values from JSON documents.
//
// It applies classification-based redaction policies, declared in a YAML
// rules file, to document paths, emitting the redacted document with
// deterministic exit codes suitable for pipelines.
//
// Usage:
//
//	veil redact --rules rules.yaml < doc.json   # redact stdin to stdout
//	veil redact --rules rules.yaml --in doc.json --out safe.json
//	veil policies                               # list built-in classifications
//
// See https://github.com/dshills/veil for full documentation.
package main
