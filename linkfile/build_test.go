package linkfile

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attr-linker/linker"
	"attr-linker/presets"
)

type team struct {
	Meta    map[string]any
	Members []string
	Lead    *member
}

type member struct {
	Name string
}

func useManager(t *testing.T) *linker.Manager {
	t.Helper()

	m := linker.NewManager(linker.WithNamespace(linker.NewNamespace()))
	prev := linker.SetDefault(m)
	t.Cleanup(func() { linker.SetDefault(prev) })

	return m
}

const teamLinks = `
links:
  - type: linkfile.team
    method: multiDictionary
    source: Meta
    targets: [title]
    setter: true
  - type: linkfile.team
    method: dictionary
    source: Meta
    target: visibility
    default: private
    name: team-visibility
  - type: linkfile.team
    method: formattedText
    source: Meta
    target: label
    template: "{title} ({visibility})"
  - type: linkfile.team
    method: multiList
    source: Members
    targets: {leader: 0, newest: -1}
    setter: true
  - type: linkfile.team
    method: object
    source: Lead
    target: lead_name
    attr: Name
`

func TestApply(t *testing.T) {
	m := useManager(t)

	f, err := Parse([]byte(teamLinks))
	require.NoError(t, err)
	require.NoError(t, Apply(f, reflect.TypeFor[*team]()))

	tm := &team{
		Meta:    map[string]any{"title": "core", "visibility": "public"},
		Members: []string{"ada", "bob", "cy"},
		Lead:    &member{Name: "ada"},
	}

	ns := m.Namespace()
	get := func(name string) any {
		v, err := ns.Get(tm, name)
		require.NoError(t, err, name)
		return v
	}

	assert.Equal(t, "core", get("title"))
	assert.Equal(t, "public", get("visibility"))
	assert.Equal(t, "core (public)", get("label"))
	assert.Equal(t, "ada", get("leader"))
	assert.Equal(t, "cy", get("newest"))
	assert.Equal(t, "ada", get("lead_name"))

	require.NoError(t, ns.Set(tm, "newest", "dee"))
	assert.Equal(t, []string{"ada", "bob", "dee"}, tm.Members)

	require.ErrorIs(t, ns.Set(tm, "lead_name", "x"), linker.ErrReadOnly)

	_, ok := m.Lookup("team-visibility")
	assert.True(t, ok)

	// the template reads the map itself, not the linked attributes
	delete(tm.Meta, "visibility")
	assert.Equal(t, "private", get("visibility"))

	_, err = ns.Get(tm, "label")
	require.ErrorIs(t, err, linker.ErrKeyLookup)
}

func TestApply_UnknownTypeAppliesNothing(t *testing.T) {
	m := useManager(t)

	f, err := Parse([]byte(teamLinks + "  - {type: linkfile.other, method: dictionary, source: Meta, target: x}\n"))
	require.NoError(t, err)

	err = Apply(f, reflect.TypeFor[team]())
	require.ErrorIs(t, err, ErrUnknownType)
	assert.Zero(t, m.Len())
	assert.Empty(t, m.Namespace().Types())
}

func TestBuild_CollectsErrors(t *testing.T) {
	f := &File{Links: []LinkDef{
		{Type: "T", Method: "dictionary", Source: "Data"},
		{Type: "T", Method: "list", Source: "Items", Target: "first"},
		{Type: "T", Method: "tuple", Source: "Data", Target: "x"},
		{Type: "T", Method: "direct", Source: "Data", Target: "x"},
		{Type: "T", Method: "multiList", Source: "Items", Targets: TargetMap{{"a", "one"}}},
		{Type: "T", Method: "multiDictionary", Source: "Data", Targets: TargetMap{{"a", "a"}}, Name: "n"},
		{Type: "T", Method: "formattedText", Source: "Data", Target: "x"},
		{Type: "T", Method: "object", Target: "x"},
		{Type: "T", Method: "multiObject", Source: "Data"},
		{Type: "T", Method: "object", Source: "Data", Target: "ok"},
	}}

	entries, err := f.Build()
	require.ErrorIs(t, err, ErrInvalidLink)
	assert.Nil(t, entries)

	for _, want := range []string{
		"links[0] (T): invalid link definition: target is required",
		"links[1] (T): invalid link definition: index is required",
		"links[2]",
		"links[3] (T): invalid link definition: direct links need code",
		`links[4] (T): invalid link definition: target a: index "one" is not an integer`,
		"links[5] (T): invalid link definition: name cannot be set on multiDictionary links",
		"links[6] (T): invalid link definition: template is required",
		"links[7] (T): invalid link definition: source is required",
		"links[8] (T): invalid link definition: targets are required",
	} {
		assert.Contains(t, err.Error(), want)
	}

	assert.NotContains(t, err.Error(), "links[9]")
}

func TestBuild(t *testing.T) {
	f, err := Parse([]byte(teamLinks))
	require.NoError(t, err)

	entries, err := f.Build()
	require.NoError(t, err)
	require.Len(t, entries, 5)

	methods := make([]presets.Method, len(entries))
	for i, e := range entries {
		assert.Equal(t, "linkfile.team", e.Type)
		methods[i] = e.Link.Method()
	}

	assert.Equal(t, []presets.Method{
		presets.MultiDictionary, presets.Dictionary, presets.FormattedText, presets.MultiList, presets.Object,
	}, methods)

	idx := entries[3].Link.Args().Indexes
	assert.Equal(t, presets.LinkMap[int]{{Target: "leader", Key: 0}, {Target: "newest", Key: -1}}, idx)
}
