package linkfile

import (
	"fmt"
	"strconv"

	"attr-linker/internal/analyze"
	"attr-linker/internal/diagnostic"
	"attr-linker/internal/match"
	"attr-linker/presets"
)

// Validate checks a link file against a type graph loaded from source.
// It is a structural check: it proves that types and attributes exist and
// that sources have a fitting kind, not that values will convert.
func Validate(f *File, graph *analyze.TypeGraph) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "link file is nil", "", "")
		return res
	}

	if graph == nil {
		res.AddError("graph_is_nil", "type graph is nil", "", "")
		return res
	}

	if f.Version != "1" {
		res.AddWarning("unknown_version", fmt.Sprintf("version %q, expected \"1\"", f.Version), "", "")
	}

	v := &validator{
		res:      res,
		graph:    graph,
		file:     f,
		declared: map[analyze.TypeID]map[string]int{},
	}

	for i := range f.Links {
		v.validateLink(i, &f.Links[i])
	}

	return res
}

type validator struct {
	res   *diagnostic.Diagnostics
	graph *analyze.TypeGraph
	file  *File
	// declared maps type to target name to the index of the declaring link
	declared map[analyze.TypeID]map[string]int
}

func (v *validator) validateLink(i int, def *LinkDef) {
	typ := def.Type
	loc := fmt.Sprintf("links[%d]", i)

	if typ == "" {
		v.res.AddError("missing_field", loc+": type is required", "", "")
		return
	}

	method, ok := v.validateMethod(loc, def)
	if !ok {
		return
	}

	v.validateFields(loc, def, method)

	info := v.graph.Resolve(typ)
	if info == nil {
		v.res.AddError("unknown_type", fmt.Sprintf("%s: type %q not found", loc, typ), typ, "",
			match.Suggest(typ, v.graph.Names(), 3)...)

		return
	}

	if info.Deref().Kind != analyze.TypeKindStruct {
		v.res.AddError("not_a_struct", fmt.Sprintf("%s: type %q is a %s", loc, typ, info.Kind), typ, "")
		return
	}

	source := v.validateSource(i, loc, def, info)

	for _, t := range targetsOf(def, method) {
		v.declareTarget(i, loc, def, t, info)
	}

	if source != nil && method == presets.Object && def.Attr != "" {
		v.validateNestedAttr(loc, typ, def.Attr, source)
	}

	if source != nil && method == presets.MultiObject {
		for _, t := range def.Targets {
			v.validateNestedAttr(loc, typ, t.Ref, source)
		}
	}
}

func (v *validator) validateMethod(loc string, def *LinkDef) (presets.Method, bool) {
	if def.Method == "" {
		v.res.AddError("missing_field", loc+": method is required", def.Type, "")
		return presets.Direct, false
	}

	method, err := presets.ParseMethod(def.Method)
	if err != nil {
		names := make([]string, 0, len(presets.Methods()))
		for _, m := range presets.Methods() {
			names = append(names, m.String())
		}

		v.res.AddError("unknown_method", fmt.Sprintf("%s: unknown method %q", loc, def.Method), def.Type, "",
			match.Suggest(def.Method, names, 2)...)

		return presets.Direct, false
	}

	if method == presets.Direct {
		v.res.AddError("direct_not_supported", loc+": direct links need transforms written in code", def.Type, def.Target)
		return presets.Direct, false
	}

	return method, true
}

func (v *validator) validateFields(loc string, def *LinkDef, method presets.Method) {
	missing := func(field string) {
		v.res.AddError("missing_field", fmt.Sprintf("%s: %s is required for %s", loc, field, method), def.Type, def.Source)
	}

	if def.Source == "" {
		missing("source")
	}

	if isMulti(method.String()) {
		if len(def.Targets) == 0 {
			missing("targets")
		}

		if def.Name != "" {
			v.res.AddError("name_on_multi", fmt.Sprintf("%s: name cannot be set on %s links", loc, method), def.Type, def.Source)
		}

		if method == presets.MultiList {
			for _, t := range def.Targets {
				if _, err := strconv.Atoi(t.Ref); err != nil {
					v.res.AddError("invalid_index", fmt.Sprintf("%s: index %q is not an integer", loc, t.Ref), def.Type, t.Name)
				}
			}
		}

		return
	}

	if def.Target == "" {
		missing("target")
	}

	switch method {
	case presets.List:
		if def.Index == nil {
			missing("index")
		}
	case presets.FormattedText:
		if def.Template == "" {
			missing("template")
		}

		if def.Setter {
			v.res.AddWarning("setter_ignored", loc+": formatted text links are always read-only", def.Type, def.Target)
		}
	}
}
