package presets

import (
	"fmt"
	"reflect"
	"strings"

	"attr-linker/linker"
)

// Method names a preset. The zero value, Direct, stands for a plain
// linker.Manager.Bind call.
type Method string

const (
	Direct          Method = ""
	Dictionary      Method = "dictionary"
	MultiDictionary Method = "multiDictionary"
	List            Method = "list"
	MultiList       Method = "multiList"
	Object          Method = "object"
	MultiObject     Method = "multiObject"
	FormattedText   Method = "formattedText"
)

// String returns the method name, "direct" for Direct.
func (m Method) String() string {
	if m == Direct {
		return "direct"
	}

	return string(m)
}

// Methods returns every preset method in declaration order.
func Methods() []Method {
	return []Method{Dictionary, MultiDictionary, List, MultiList, Object, MultiObject, FormattedText}
}

// aliases accepts the preset function names as method names.
var aliases = map[string]Method{
	"direct":                Direct,
	"linkdictionary":        Dictionary,
	"multilinkdictionary":   MultiDictionary,
	"linklist":              List,
	"multilinklist":         MultiList,
	"linkobject":            Object,
	"multilinkobject":       MultiObject,
	"formattedtextfromdict": FormattedText,
}

// ParseMethod resolves a method name, case-insensitively. Preset function
// names such as "linkDictionary" are accepted too.
func ParseMethod(s string) (Method, error) {
	key := strings.ToLower(strings.TrimSpace(s))

	for _, m := range Methods() {
		if strings.ToLower(string(m)) == key {
			return m, nil
		}
	}

	if m, ok := aliases[key]; ok {
		return m, nil
	}

	return Direct, fmt.Errorf("unknown link method %q", s)
}

// Args carries the parameters of one deferred preset call. Each method reads
// only the fields it needs.
type Args struct {
	// Target is the linked attribute name of the singular presets and of Direct.
	Target string
	// Key is the map key of Dictionary; nil means Target.
	Key any
	// Index is the slice index of List.
	Index int
	// Attr is the nested attribute of Object; empty means Target.
	Attr string
	// Template is the FormattedText template.
	Template string
	// Names holds the pairs of MultiDictionary and MultiObject.
	Names LinkMap[string]
	// Indexes holds the pairs of MultiList.
	Indexes LinkMap[int]
	// Read and Write are the transforms of Direct.
	Read  linker.ReadFunc
	Write linker.Writer
	// Options configure the preset.
	Options []Option
	// Bind options are passed to linker.Manager.Bind by Direct.
	Bind []linker.Option
}

// Preset applies a method to type t for the source attribute.
type Preset func(t reflect.Type, source string, a Args) error

var table = map[Method]Preset{
	Dictionary: func(t reflect.Type, source string, a Args) error {
		return LinkDictionary(t, source, a.Target, a.Key, a.Options...)
	},
	MultiDictionary: func(t reflect.Type, source string, a Args) error {
		return MultiLinkDictionary(t, source, a.Names, a.Options...)
	},
	List: func(t reflect.Type, source string, a Args) error {
		return LinkList(t, source, a.Target, a.Index, a.Options...)
	},
	MultiList: func(t reflect.Type, source string, a Args) error {
		return MultiLinkList(t, source, a.Indexes, a.Options...)
	},
	Object: func(t reflect.Type, source string, a Args) error {
		return LinkObject(t, source, a.Target, a.Attr, a.Options...)
	},
	MultiObject: func(t reflect.Type, source string, a Args) error {
		return MultiLinkObject(t, source, a.Names, a.Options...)
	},
	FormattedText: func(t reflect.Type, source string, a Args) error {
		return FormattedTextFromDict(t, source, a.Target, a.Template, a.Options...)
	},
}

// Lookup returns the preset for m. Direct has no preset.
func Lookup(m Method) (Preset, bool) {
	p, ok := table[m]
	return p, ok
}
