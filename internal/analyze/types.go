package analyze

import (
	"go/types"
	"reflect"
	"slices"
	"strings"
)

// AttrTag is the struct tag that renames a field for attribute lookup.
const AttrTag = "attr"

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "attr-linker/examples/users"
	Name    string // e.g., "User"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindBasic              // int, string, bool, etc.
	TypeKindStruct             // struct type
	TypeKindPointer            // pointer to another type
	TypeKindSlice              // slice of another type
	TypeKindArray              // array of another type
	TypeKindMap                // map type
	TypeKindInterface          // interface, including any
	TypeKindAlias              // named type wrapping a non-struct type
	TypeKindExternal           // named type from a package that was not loaded
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindMap:
		return "map"
	case TypeKindInterface:
		return "interface"
	case TypeKindAlias:
		return "alias"
	case TypeKindExternal:
		return "external"
	default:
		return "unknown"
	}
}

// TypeInfo describes a Go type in the type graph.
type TypeInfo struct {
	ID         TypeID      // Unique identifier (empty for unnamed types like *T or []T)
	PkgName    string      // Package name of named types
	Kind       TypeKind    // Kind of type
	Underlying *TypeInfo   // For aliases, the underlying type
	ElemType   *TypeInfo   // For pointers, slices, arrays and maps, the element type
	KeyType    *TypeInfo   // For maps, the key type
	Fields     []FieldInfo // For structs, the list of exported fields
	GoType     types.Type  // The original go/types.Type
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// ReflectName returns the name reflect.Type.String reports for the type,
// e.g. "users.User".
func (t *TypeInfo) ReflectName() string {
	if t.PkgName == "" {
		return t.ID.Name
	}

	return t.PkgName + "." + t.ID.Name
}

// Deref strips pointers and aliases down to the type holding the value.
func (t *TypeInfo) Deref() *TypeInfo {
	for t != nil {
		switch {
		case t.Kind == TypeKindPointer && t.ElemType != nil:
			t = t.ElemType
		case t.Kind == TypeKindAlias && t.Underlying != nil:
			t = t.Underlying
		default:
			return t
		}
	}

	return nil
}

// Field returns the field answering to attribute name. A field tagged
// `attr:"name"` wins over a field literally called name.
func (t *TypeInfo) Field(name string) (*FieldInfo, bool) {
	t = t.Deref()
	if t == nil || t.Kind != TypeKindStruct {
		return nil, false
	}

	for i := range t.Fields {
		if t.Fields[i].tagName() == name {
			return &t.Fields[i], true
		}
	}

	for i := range t.Fields {
		if t.Fields[i].Name == name {
			return &t.Fields[i], true
		}
	}

	return nil, false
}

// AttrNames returns the attribute names of the struct fields, in field order.
func (t *TypeInfo) AttrNames() []string {
	t = t.Deref()
	if t == nil {
		return nil
	}

	names := make([]string, 0, len(t.Fields))
	for i := range t.Fields {
		names = append(names, t.Fields[i].AttrName())
	}

	return names
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Type     *TypeInfo         // Field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
}

// AttrName returns the attr tag name if present, otherwise the field name.
func (f *FieldInfo) AttrName() string {
	if n := f.tagName(); n != "" {
		return n
	}

	return f.Name
}

func (f *FieldInfo) tagName() string {
	name, _, _ := strings.Cut(f.Tag.Get(AttrTag), ",")
	return name
}

// HasTag returns true if the field has the specified tag.
func (f *FieldInfo) HasTag(key string) bool {
	_, ok := f.Tag.Lookup(key)
	return ok
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// Add registers a named type, filling PkgName from the package table when unset.
func (g *TypeGraph) Add(info *TypeInfo) {
	if info.PkgName == "" {
		if p, ok := g.Packages[info.ID.PkgPath]; ok {
			info.PkgName = p.Name
		}
	}

	g.Types[info.ID] = info
}

// Names returns the reflect-style names of all struct types, sorted.
func (g *TypeGraph) Names() []string {
	var names []string

	for _, t := range g.Types {
		if t.Kind == TypeKindStruct {
			names = append(names, t.ReflectName())
		}
	}

	slices.Sort(names)

	return names
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Named types defined in this package
}
