package presets

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		input    string
		expected Method
	}{
		{"dictionary", Dictionary},
		{"Dictionary", Dictionary},
		{"multiDictionary", MultiDictionary},
		{"linkDictionary", Dictionary},
		{"multiLinkList", MultiList},
		{"formattedTextFromDict", FormattedText},
		{" object ", Object},
		{"direct", Direct},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, err := ParseMethod(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m)
		})
	}

	_, err := ParseMethod("tuple")
	require.Error(t, err)
}

func TestMethod_String(t *testing.T) {
	assert.Equal(t, "direct", Direct.String())
	assert.Equal(t, "multiList", MultiList.String())
}

func TestLookup(t *testing.T) {
	for _, m := range Methods() {
		p, ok := Lookup(m)
		assert.True(t, ok, m)
		assert.NotNil(t, p, m)
	}

	_, ok := Lookup(Direct)
	assert.False(t, ok)
}

func TestLookup_DispatchesArgs(t *testing.T) {
	m := useManager(t)
	typ := reflect.TypeFor[user]()

	apply := func(method Method, source string, a Args) {
		t.Helper()

		p, ok := Lookup(method)
		require.True(t, ok)
		require.NoError(t, p(typ, source, a))
	}

	apply(Dictionary, "UserData", Args{Target: "id"})
	apply(List, "SentMessages", Args{Target: "first", Index: 0})
	apply(Object, "Profile", Args{Target: "login", Attr: "login_time"})
	apply(FormattedText, "UserData", Args{Target: "tag", Template: "{name}#{id}"})

	u := newUser()
	got := map[string]any{}
	for _, name := range []string{"id", "first", "login", "tag"} {
		v, err := m.Namespace().Get(u, name)
		require.NoError(t, err)
		got[name] = v
	}

	assert.Equal(t, map[string]any{
		"id":    1,
		"first": "Hi There!",
		"login": 100,
		"tag":   "Foo#1",
	}, got)
}
