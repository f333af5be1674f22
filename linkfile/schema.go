package linkfile

// File is the root of a link file.
type File struct {
	// Version is the schema version, "1" when omitted.
	Version string `yaml:"version"`
	// Links are applied in order.
	Links []LinkDef `yaml:"links"`
}

// LinkDef declares one link, or one group of links for multi methods.
type LinkDef struct {
	// Type is the linked Go type, as printed by reflect ("users.User").
	Type string `yaml:"type"`
	// Method names the preset, see presets.ParseMethod.
	Method string `yaml:"method"`
	// Source is the attribute the link reads from.
	Source string `yaml:"source"`

	// Target is the linked attribute of singular methods.
	Target string `yaml:"target,omitempty"`
	// Key is the map key of dictionary links; empty means Target.
	Key any `yaml:"key,omitempty"`
	// Index is the slice index of list links.
	Index *int `yaml:"index,omitempty"`
	// Attr is the nested attribute of object links; empty means Target.
	Attr string `yaml:"attr,omitempty"`
	// Template is the formattedText template.
	Template string `yaml:"template,omitempty"`

	// Targets are the pairs of multi methods.
	Targets TargetMap `yaml:"targets,omitempty"`

	Setter  bool   `yaml:"setter,omitempty"`
	Default any    `yaml:"default,omitempty"`
	Strict  bool   `yaml:"strict,omitempty"`
	Doc     string `yaml:"doc,omitempty"`
	// Name registers a singular link under an explicit name.
	Name string `yaml:"name,omitempty"`
}

// Target pairs a linked attribute with its location in the source: a key,
// an index or a nested attribute, kept as written.
type Target struct {
	Name string
	Ref  string
}

// TargetMap is an ordered list of targets.
type TargetMap []Target

// Names returns the target names in order.
func (m TargetMap) Names() []string {
	out := make([]string, len(m))
	for i, t := range m {
		out[i] = t.Name
	}

	return out
}

// Identity reports whether every target refers to its own name.
func (m TargetMap) Identity() bool {
	for _, t := range m {
		if t.Name != t.Ref {
			return false
		}
	}

	return true
}
