// Package attrs provides reflective access to the plain attributes of Go values:
// exported struct fields (optionally renamed with an `attr:"name"` tag) and
// string-keyed map entries.
//
// Key functions:
//   - Get / Set: read and write one attribute by name
//   - Coerce: adapt a dynamic value to a target reflect.Type
//   - Index / PopInsert: sequence element access
//   - MapGet / MapWith: mapping element access with copy-then-merge updates
//   - Format: "{name}" template substitution
package attrs
