// Package cli implements the veil command-line interface.
//
// Commands:
//
//	veil redact --rules rules.yaml [--in f] [--out f]   redact a JSON document
//	veil policies                                       list classifications
//	veil version                                        print the version
//
// Exit codes are deterministic: 0 success, 2 usage or configuration error,
// 4 runtime error (I/O, malformed input).
package cli
