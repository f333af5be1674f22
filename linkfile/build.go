package linkfile

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/hashicorp/go-multierror"

	"attr-linker/declare"
	"attr-linker/internal/attrs"
	"attr-linker/linker"
	"attr-linker/presets"
)

var (
	// ErrUnknownType indicates a link for a type Apply was not given.
	ErrUnknownType = errors.New("unknown link type")
	// ErrInvalidLink indicates a link definition that cannot be converted.
	ErrInvalidLink = errors.New("invalid link definition")
)

// Entry is a converted link definition.
type Entry struct {
	// Type is the reflect name of the linked type.
	Type string
	Link *declare.Link
}

// Build converts every definition of f. All conversion errors are
// collected; entries are only returned when there are none.
func (f *File) Build() ([]Entry, error) {
	var (
		entries []Entry
		result  *multierror.Error
	)

	for i := range f.Links {
		l, err := f.Links[i].Link()
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("links[%d] (%s): %w", i, f.Links[i].Type, err))
			continue
		}

		entries = append(entries, Entry{Type: f.Links[i].Type, Link: l})
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Link converts the definition into a declarative link.
func (d *LinkDef) Link() (*declare.Link, error) {
	if d.Source == "" {
		return nil, fmt.Errorf("%w: source is required", ErrInvalidLink)
	}

	method, err := presets.ParseMethod(d.Method)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLink, err)
	}

	multi := isMulti(method.String())

	if multi && d.Name != "" {
		return nil, fmt.Errorf("%w: name cannot be set on %s links", ErrInvalidLink, method)
	}

	opts := d.options()

	switch method {
	case presets.Direct:
		return nil, fmt.Errorf("%w: direct links need code", ErrInvalidLink)

	case presets.Dictionary:
		if err := d.requireTarget(); err != nil {
			return nil, err
		}

		return declare.Dictionary(d.Source, d.Target, d.Key, opts...), nil

	case presets.List:
		if err := d.requireTarget(); err != nil {
			return nil, err
		}

		if d.Index == nil {
			return nil, fmt.Errorf("%w: index is required", ErrInvalidLink)
		}

		return declare.List(d.Source, d.Target, *d.Index, opts...), nil

	case presets.Object:
		if err := d.requireTarget(); err != nil {
			return nil, err
		}

		return declare.Object(d.Source, d.Target, d.Attr, opts...), nil

	case presets.FormattedText:
		if err := d.requireTarget(); err != nil {
			return nil, err
		}

		if d.Template == "" {
			return nil, fmt.Errorf("%w: template is required", ErrInvalidLink)
		}

		return declare.FormattedText(d.Source, d.Target, d.Template, opts...), nil
	}

	if len(d.Targets) == 0 {
		return nil, fmt.Errorf("%w: targets are required", ErrInvalidLink)
	}

	switch method {
	case presets.MultiList:
		indexes, err := d.Targets.Indexes()
		if err != nil {
			return nil, err
		}

		return declare.MultiList(d.Source, indexes, opts...), nil

	case presets.MultiObject:
		return declare.MultiObject(d.Source, d.Targets.Keys(), opts...), nil

	default:
		return declare.MultiDictionary(d.Source, d.Targets.Keys(), opts...), nil
	}
}

func (d *LinkDef) requireTarget() error {
	if d.Target == "" {
		return fmt.Errorf("%w: target is required", ErrInvalidLink)
	}

	return nil
}

func (d *LinkDef) options() []presets.Option {
	opts := []presets.Option{presets.WithSetter(d.Setter)}

	if d.Default != nil {
		opts = append(opts, presets.WithDefault(d.Default))
	}

	if d.Strict {
		opts = append(opts, presets.StrictKey())
	}

	if d.Doc != "" {
		opts = append(opts, presets.WithDoc(d.Doc))
	}

	if d.Name != "" {
		opts = append(opts, presets.WithBind(linker.Name(d.Name)))
	}

	return opts
}

// Keys converts the targets for MultiDictionary and MultiObject.
func (m TargetMap) Keys() presets.LinkMap[string] {
	out := make(presets.LinkMap[string], len(m))
	for i, t := range m {
		out[i] = presets.Pair[string]{Target: t.Name, Key: t.Ref}
	}

	return out
}

// Indexes converts the targets for MultiList.
func (m TargetMap) Indexes() (presets.LinkMap[int], error) {
	out := make(presets.LinkMap[int], len(m))

	for i, t := range m {
		n, err := strconv.Atoi(t.Ref)
		if err != nil {
			return nil, fmt.Errorf("%w: target %s: index %q is not an integer", ErrInvalidLink, t.Name, t.Ref)
		}

		out[i] = presets.Pair[int]{Target: t.Name, Key: n}
	}

	return out, nil
}

// Apply builds f and applies every entry to the matching type among types,
// matched by reflect name. Nothing is applied when the file does not build
// or names a type missing from types; otherwise links are applied in order
// and the first failure stops the run.
func Apply(f *File, types ...reflect.Type) error {
	entries, err := f.Build()
	if err != nil {
		return err
	}

	byName := make(map[string]reflect.Type, len(types))
	for _, t := range types {
		if base := attrs.BaseType(t); base != nil {
			byName[base.String()] = base
		}
	}

	resolved := make([]reflect.Type, len(entries))

	var result *multierror.Error

	for i, e := range entries {
		t, ok := byName[e.Type]
		if !ok {
			result = multierror.Append(result, fmt.Errorf("%w: %q", ErrUnknownType, e.Type))
			continue
		}

		resolved[i] = t
	}

	if err := result.ErrorOrNil(); err != nil {
		return err
	}

	for i, e := range entries {
		if err := e.Link.Apply(resolved[i]); err != nil {
			return fmt.Errorf("links[%d] (%s): %w", i, e.Type, err)
		}
	}

	return nil
}
