package presets

import (
	"reflect"

	"attr-linker/internal/attrs"
	"attr-linker/linker"
)

// LinkDictionary links target to source[key], where source is a map.
// A nil key means the key is the target name. Writes store a copy of the map
// with key replaced.
func LinkDictionary(t reflect.Type, source, target string, key any, opts ...Option) error {
	o := newOptions(opts)
	if key == nil {
		key = target
	}

	def, strict := o.def, o.strict

	read := func(m any) (any, error) {
		return attrs.MapGet(m, key, def, strict)
	}

	write := linker.WriteTransform(func(self linker.Instance, replacement any) (any, error) {
		m, err := self.Attr(source)
		if err != nil {
			return nil, err
		}

		return attrs.MapWith(m, key, replacement)
	})

	_, err := linker.Default().Bind(t, source, target, read, write, o.bindOptions()...)

	return err
}

// LinkList links target to source[index], where source is a slice. Negative
// indexes count from the end. Writes pop the element at index and insert the
// replacement at the same index, in place.
func LinkList(t reflect.Type, source, target string, index int, opts ...Option) error {
	o := newOptions(opts)

	read := func(s any) (any, error) {
		return attrs.Index(s, index)
	}

	write := linker.WriteOverride(func(self linker.Instance, source string, replacement any) error {
		s, err := self.Attr(source)
		if err != nil {
			return err
		}

		return attrs.PopInsert(s, index, replacement)
	})

	_, err := linker.Default().Bind(t, source, target, read, write, o.bindOptions()...)

	return err
}

// LinkObject links target to source.attr. An empty attr means the nested
// attribute has the target name.
func LinkObject(t reflect.Type, source, target, attr string, opts ...Option) error {
	o := newOptions(opts)
	if attr == "" {
		attr = target
	}

	m := linker.Default()
	ns := m.Namespace()

	read := func(obj any) (any, error) {
		return ns.Get(obj, attr)
	}

	write := linker.WriteOverride(func(self linker.Instance, source string, replacement any) error {
		obj, err := self.Attr(source)
		if err != nil {
			return err
		}

		return setNested(self, source, obj, attr, replacement)
	})

	_, err := m.Bind(t, source, target, read, write, o.bindOptions()...)

	return err
}

// setNested writes obj.attr. A struct held by value is copied, updated and
// stored back into source.
func setNested(self linker.Instance, source string, obj any, attr string, replacement any) error {
	ns := self.Namespace()

	v := reflect.ValueOf(obj)
	if !v.IsValid() || v.Kind() != reflect.Struct {
		return ns.Set(obj, attr, replacement)
	}

	cp := reflect.New(v.Type())
	cp.Elem().Set(v)

	if err := ns.Set(cp.Interface(), attr, replacement); err != nil {
		return err
	}

	return self.SetAttr(source, cp.Elem().Interface())
}

// FormattedTextFromDict links target to template rendered with the entries of
// the source map: "{name}#{id}" reads source["name"] and source["id"]. The
// link is always read-only; a placeholder missing from the map fails with
// linker.ErrKeyLookup.
func FormattedTextFromDict(t reflect.Type, source, target, template string, opts ...Option) error {
	o := newOptions(opts)
	o.setter = false

	m := linker.Default()
	ns := m.Namespace()

	read := func(src any) (any, error) {
		return attrs.Format(template, func(name string) (any, error) {
			return ns.Get(src, name)
		})
	}

	bind := append(o.bindOptions(), linker.WithRealize(linker.ReadOnly()))
	_, err := m.Bind(t, source, target, read, linker.Writer{}, bind...)

	return err
}
