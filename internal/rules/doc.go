// Package rules loads and applies document redaction rules.
//
// A rules file is YAML with two sections: custom policy definitions, which
// are registered as classifications before use, and path rules that bind a
// dot-separated document path to a classification. Paths support a "*"
// wildcard per segment, matching every object key or array index, and
// arrays with no index segment are descended transparently, so
// "users.*.email" matches the email field of every object under users
// whether users is an object or an array.
//
// Rules are validated eagerly when compiled; applying compiled rules to a
// decoded JSON document never fails.
package rules
