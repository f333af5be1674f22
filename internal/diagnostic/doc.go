// Package diagnostic collects structured errors, warnings and notes
// produced while checking link files.
//
// A diagnostic carries a stable code (e.g. "unknown_type"), a message and
// the location it refers to: the Go type a link targets and the attribute
// involved.
package diagnostic
