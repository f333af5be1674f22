package analyze

import "strings"

// Resolve finds a named type by one of:
//   - "users.User" (package name, as printed by reflect)
//   - "attr-linker/examples/users.User" (import path)
//   - "User" (name only, first match in sorted import path order)
func (g *TypeGraph) Resolve(name string) *TypeInfo {
	if g == nil || name == "" {
		return nil
	}

	lastDot := strings.LastIndex(name, ".")
	if lastDot < 0 {
		var found *TypeInfo

		for id, t := range g.Types {
			if id.Name == name && (found == nil || id.PkgPath < found.ID.PkgPath) {
				found = t
			}
		}

		return found
	}

	pkg, typ := name[:lastDot], name[lastDot+1:]
	if pkg == "" || typ == "" {
		return nil
	}

	if t := g.GetType(TypeID{PkgPath: pkg, Name: typ}); t != nil {
		return t
	}

	for id, t := range g.Types {
		if id.Name != typ {
			continue
		}

		if t.PkgName == pkg || strings.HasSuffix(id.PkgPath, "/"+pkg) {
			return t
		}
	}

	return nil
}
