// Package linkfile declares links for Go types in YAML.
//
// A link file lists, per Go type, the links the declare package would
// otherwise build in code. Loading a file yields declare.Links that are
// applied to types the caller provides; Validate checks a file statically
// against a type graph loaded from source.
//
// # Schema Overview
//
//	version: "1"
//	links:
//	  - type: users.User          # reflect name of the linked type
//	    method: multiDictionary   # see presets.ParseMethod
//	    source: UserData
//	    targets: [id, name]       # or an ordered map, target: key
//	    setter: true
//	  - type: users.User
//	    method: dictionary
//	    source: UserData
//	    target: status
//	    key: state
//	    default: offline
//	    strict: false
//	    doc: Current status
//	    name: user-status         # registration name in the linker manager
//	  - type: users.User
//	    method: multiList
//	    source: Messages
//	    targets: {first: 0, last: -1}
//
// Singular methods take target plus key (dictionary), index (list),
// attr (object) or template (formattedText). Multi methods take targets.
// Links with custom transforms cannot be expressed in a file.
package linkfile
