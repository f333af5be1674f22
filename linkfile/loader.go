package linkfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"attr-linker/presets"
)

// LoadFile loads and parses a link file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read link file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a normalized File.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse link YAML: %w", err)
	}

	Normalize(&f)

	return &f, nil
}

// Normalize fills in defaults and rewrites method names to their canonical
// spelling ("linkDictionary" becomes "dictionary"). Unknown methods are
// kept as written so Validate can report them.
func Normalize(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Links {
		def := &f.Links[i]

		if m, err := presets.ParseMethod(def.Method); err == nil && def.Method != "" {
			def.Method = m.String()
		}

		// a single target given to a multi method is a one-element group
		if isMulti(def.Method) && len(def.Targets) == 0 && def.Target != "" {
			def.Targets = TargetMap{{Name: def.Target, Ref: def.Target}}
			def.Target = ""
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal link file: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write link file %s: %w", path, err)
	}

	return nil
}

func isMulti(method string) bool {
	switch presets.Method(method) {
	case presets.MultiDictionary, presets.MultiList, presets.MultiObject:
		return true
	default:
		return false
	}
}
