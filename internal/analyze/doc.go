// Package analyze loads Go packages and indexes their named types.
//
// It uses golang.org/x/tools/go/packages with go/types to build an
// in-memory model of structs and their fields, so link files can be
// checked against source code without running it.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: kind (struct/map/slice/pointer/...), fields, element types
//   - FieldInfo: field name, attribute name, type, tags
package analyze
