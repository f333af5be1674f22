package declare

import (
	"fmt"
	"reflect"

	"attr-linker/linker"
	"attr-linker/presets"
)

// Link is one deferred preset call, or a direct linker.Manager.Bind call.
type Link struct {
	method  presets.Method
	source  string
	args    presets.Args
	applied []reflect.Type
}

// New creates a link for method on source.
func New(method presets.Method, source string, args presets.Args) *Link {
	return &Link{method: method, source: source, args: args}
}

// Dictionary defers presets.LinkDictionary.
func Dictionary(source, target string, key any, opts ...presets.Option) *Link {
	return New(presets.Dictionary, source, presets.Args{Target: target, Key: key, Options: opts})
}

// MultiDictionary defers presets.MultiLinkDictionary.
func MultiDictionary(source string, links presets.LinkMap[string], opts ...presets.Option) *Link {
	return New(presets.MultiDictionary, source, presets.Args{Names: links, Options: opts})
}

// List defers presets.LinkList.
func List(source, target string, index int, opts ...presets.Option) *Link {
	return New(presets.List, source, presets.Args{Target: target, Index: index, Options: opts})
}

// MultiList defers presets.MultiLinkList.
func MultiList(source string, links presets.LinkMap[int], opts ...presets.Option) *Link {
	return New(presets.MultiList, source, presets.Args{Indexes: links, Options: opts})
}

// Object defers presets.LinkObject.
func Object(source, target, attr string, opts ...presets.Option) *Link {
	return New(presets.Object, source, presets.Args{Target: target, Attr: attr, Options: opts})
}

// MultiObject defers presets.MultiLinkObject.
func MultiObject(source string, links presets.LinkMap[string], opts ...presets.Option) *Link {
	return New(presets.MultiObject, source, presets.Args{Names: links, Options: opts})
}

// FormattedText defers presets.FormattedTextFromDict.
func FormattedText(source, target, template string, opts ...presets.Option) *Link {
	return New(presets.FormattedText, source, presets.Args{Target: target, Template: template, Options: opts})
}

// DirectLink defers a linker.Manager.Bind call with custom transforms.
func DirectLink(source, target string, read linker.ReadFunc, write linker.Writer, opts ...linker.Option) *Link {
	return New(presets.Direct, source, presets.Args{Target: target, Read: read, Write: write, Bind: opts})
}

// Method returns the preset the link applies, Direct for DirectLink.
func (l *Link) Method() presets.Method { return l.method }

// Source returns the attribute the link reads from.
func (l *Link) Source() string { return l.source }

// Args returns the parameters passed to the preset.
func (l *Link) Args() presets.Args { return l.args }

// Apply performs the link on type t. Each successful call is recorded, so a
// link applied to several types, or twice to one, is listed each time.
func (l *Link) Apply(t reflect.Type) error {
	if t == nil {
		return linker.ErrNilType
	}

	if l.method == presets.Direct {
		a := l.args
		if _, err := linker.Default().Bind(t, l.source, a.Target, a.Read, a.Write, a.Bind...); err != nil {
			return err
		}
	} else {
		p, ok := presets.Lookup(l.method)
		if !ok {
			return fmt.Errorf("unknown link method %q", l.method)
		}

		if err := p(t, l.source, l.args); err != nil {
			return err
		}
	}

	l.applied = append(l.applied, t)

	return nil
}

// Applied returns the types the link was applied to, in order.
func (l *Link) Applied() []reflect.Type {
	return append([]reflect.Type(nil), l.applied...)
}

func (l *Link) String() string {
	return fmt.Sprintf("<Link Method=%s AppliedCount=%d>", l.method, len(l.applied))
}
