package linkfile

import (
	"fmt"
	"slices"

	"attr-linker/internal/analyze"
	"attr-linker/internal/match"
	"attr-linker/presets"
)

// validateSource checks that the source attribute exists on info, or is
// the target of an earlier link on the same type. It returns the source
// field type when known.
func (v *validator) validateSource(i int, loc string, def *LinkDef, info *analyze.TypeInfo) *analyze.TypeInfo {
	if def.Source == "" {
		return nil
	}

	if f, ok := info.Field(def.Source); ok {
		v.checkSourceKind(loc, def, f.Type)
		return f.Type
	}

	if _, ok := v.declared[info.ID][def.Source]; ok {
		// linked source: its value type is only known at run time
		return nil
	}

	if j, ok := v.declaredLater(i, info.ID, def.Source); ok {
		v.res.AddError("source_declared_later",
			fmt.Sprintf("%s: source %q is linked by links[%d], which comes later", loc, def.Source, j),
			def.Type, def.Source)

		return nil
	}

	candidates := append(info.AttrNames(), v.targetNames(info.ID)...)
	v.res.AddError("unknown_source", fmt.Sprintf("%s: %s has no attribute %q", loc, def.Type, def.Source),
		def.Type, def.Source, match.Suggest(def.Source, candidates, 3)...)

	return nil
}

// checkSourceKind warns when the source field cannot hold what the method reads.
func (v *validator) checkSourceKind(loc string, def *LinkDef, t *analyze.TypeInfo) {
	kind := t.Deref().Kind
	if kind == analyze.TypeKindInterface || kind == analyze.TypeKindUnknown {
		return
	}

	var want []analyze.TypeKind

	method, _ := presets.ParseMethod(def.Method)
	switch method {
	case presets.Dictionary, presets.MultiDictionary, presets.FormattedText:
		want = []analyze.TypeKind{analyze.TypeKindMap}
	case presets.List, presets.MultiList:
		want = []analyze.TypeKind{analyze.TypeKindSlice, analyze.TypeKindArray}
	case presets.Object, presets.MultiObject:
		want = []analyze.TypeKind{analyze.TypeKindStruct, analyze.TypeKindMap, analyze.TypeKindExternal}
	}

	if len(want) > 0 && !slices.Contains(want, kind) {
		v.res.AddWarning("source_kind",
			fmt.Sprintf("%s: %s links read from %v, but %s is a %s", loc, method, want, def.Source, kind),
			def.Type, def.Source)
	}
}

// validateNestedAttr checks an object link's nested attribute when the
// source is a struct the graph knows.
func (v *validator) validateNestedAttr(loc, typ, attr string, source *analyze.TypeInfo) {
	s := source.Deref()
	if s == nil || s.Kind != analyze.TypeKindStruct {
		return
	}

	if _, ok := s.Field(attr); ok {
		return
	}

	name := s.ReflectName()
	if !s.IsNamed() {
		name = "struct"
	}

	v.res.AddError("unknown_attr", fmt.Sprintf("%s: %s has no attribute %q", loc, name, attr),
		typ, attr, match.Suggest(attr, s.AttrNames(), 3)...)
}

func (v *validator) declareTarget(i int, loc string, def *LinkDef, target string, info *analyze.TypeInfo) {
	typ := def.Type

	targets, ok := v.declared[info.ID]
	if !ok {
		targets = map[string]int{}
		v.declared[info.ID] = targets
	}

	if j, dup := targets[target]; dup {
		v.res.AddError("duplicate_target",
			fmt.Sprintf("%s: target %q is already linked by links[%d]", loc, target, j), typ, target)

		return
	}

	targets[target] = i

	if _, ok := info.Field(target); ok {
		v.res.AddWarning("target_shadows_field",
			fmt.Sprintf("%s: target %q hides the field of the same name", loc, target), typ, target)
	}
}

// declaredLater finds a link after index i declaring target on type id.
func (v *validator) declaredLater(i int, id analyze.TypeID, target string) (int, bool) {
	for j := i + 1; j < len(v.file.Links); j++ {
		def := &v.file.Links[j]
		if t := v.graph.Resolve(def.Type); t == nil || t.ID != id {
			continue
		}

		method, err := presets.ParseMethod(def.Method)
		if err != nil {
			continue
		}

		if slices.Contains(targetsOf(def, method), target) {
			return j, true
		}
	}

	return 0, false
}

func (v *validator) targetNames(id analyze.TypeID) []string {
	names := make([]string, 0, len(v.declared[id]))
	for n := range v.declared[id] {
		names = append(names, n)
	}

	slices.Sort(names)

	return names
}

// targetsOf returns the attributes a definition links.
func targetsOf(def *LinkDef, method presets.Method) []string {
	if isMulti(method.String()) {
		return def.Targets.Names()
	}

	if def.Target == "" {
		return nil
	}

	return []string{def.Target}
}
