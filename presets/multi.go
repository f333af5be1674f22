package presets

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// Pair links Target to the source location Key.
type Pair[K any] struct {
	Target string
	Key    K
}

// LinkMap is an ordered list of links applied by the Multi presets.
type LinkMap[K any] []Pair[K]

// Names links every name to the source location of the same name.
func Names(names ...string) LinkMap[string] {
	out := make(LinkMap[string], 0, len(names))
	for _, n := range names {
		out = append(out, Pair[string]{Target: n, Key: n})
	}

	return out
}

// MapOf converts a target-to-key map, ordered by target name.
func MapOf[K any](m map[string]K) LinkMap[K] {
	out := make(LinkMap[K], 0, len(m))
	for target, key := range m {
		out = append(out, Pair[K]{Target: target, Key: key})
	}

	slices.SortFunc(out, func(a, b Pair[K]) int { return cmp.Compare(a.Target, b.Target) })

	return out
}

// Targets returns the target names in order.
func (l LinkMap[K]) Targets() []string {
	out := make([]string, len(l))
	for i, p := range l {
		out[i] = p.Target
	}

	return out
}

// MultiLinkDictionary calls LinkDictionary for every pair. It stops at the
// first failure; links made before it stay installed.
func MultiLinkDictionary(t reflect.Type, source string, links LinkMap[string], opts ...Option) error {
	for _, p := range links {
		if err := LinkDictionary(t, source, p.Target, p.Key, opts...); err != nil {
			return fmt.Errorf("link %s to %s[%q]: %w", p.Target, source, p.Key, err)
		}
	}

	return nil
}

// MultiLinkList calls LinkList for every pair.
func MultiLinkList(t reflect.Type, source string, links LinkMap[int], opts ...Option) error {
	for _, p := range links {
		if err := LinkList(t, source, p.Target, p.Key, opts...); err != nil {
			return fmt.Errorf("link %s to %s[%d]: %w", p.Target, source, p.Key, err)
		}
	}

	return nil
}

// MultiLinkObject calls LinkObject for every pair.
func MultiLinkObject(t reflect.Type, source string, links LinkMap[string], opts ...Option) error {
	for _, p := range links {
		if err := LinkObject(t, source, p.Target, p.Key, opts...); err != nil {
			return fmt.Errorf("link %s to %s.%s: %w", p.Target, source, p.Key, err)
		}
	}

	return nil
}
