package presets

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attr-linker/linker"
)

type listed struct {
	Data map[string]any
}

type mapped struct {
	Data map[string]any
}

func TestNamesAndMapOf(t *testing.T) {
	assert.Equal(t, LinkMap[string]{{"a", "a"}, {"b", "b"}}, Names("a", "b"))
	assert.Equal(t, LinkMap[int]{{"first", 0}, {"last", -1}}, MapOf(map[string]int{"last": -1, "first": 0}))
	assert.Equal(t, []string{"a", "b"}, Names("a", "b").Targets())
}

func TestMultiLinkDictionary_ListEqualsMap(t *testing.T) {
	m := useManager(t)
	ns := m.Namespace()

	require.NoError(t, MultiLinkDictionary(reflect.TypeFor[listed](), "Data", Names("a", "b")))
	require.NoError(t, MultiLinkDictionary(reflect.TypeFor[mapped](), "Data", MapOf(map[string]string{"a": "a", "b": "b"})))

	lc, ok := ns.Lookup(reflect.TypeFor[listed]())
	require.True(t, ok)
	mc, ok := ns.Lookup(reflect.TypeFor[mapped]())
	require.True(t, ok)
	assert.Equal(t, lc.Names(), mc.Names())

	data := map[string]any{"a": 1, "b": 2}
	for _, name := range []string{"a", "b"} {
		lv, err := ns.Get(&listed{Data: data}, name)
		require.NoError(t, err)
		mv, err := ns.Get(&mapped{Data: data}, name)
		require.NoError(t, err)
		assert.Equal(t, lv, mv)
	}
}

// Each generated link must read its own key, not the last one of the loop.
func TestMultiLinkDictionary_PerEntryCapture(t *testing.T) {
	m := useManager(t)
	require.NoError(t, MultiLinkDictionary(reflect.TypeFor[listed](), "Data",
		MapOf(map[string]string{"x": "k1", "y": "k2", "z": "k3"})))

	l := &listed{Data: map[string]any{"k1": 1, "k2": 2, "k3": 3}}
	for target, want := range map[string]int{"x": 1, "y": 2, "z": 3} {
		v, err := m.Namespace().Get(l, target)
		require.NoError(t, err)
		assert.Equal(t, want, v, target)
	}
}

func TestMultiLinkList_OnLinkedSource(t *testing.T) {
	m := useManager(t)
	typ := reflect.TypeFor[user]()
	ns := m.Namespace()

	require.NoError(t, MultiLinkDictionary(typ, "UserData", Names("id", "name", "sent_messages"), Writable()))
	require.NoError(t, MultiLinkList(typ, "sent_messages", MapOf(map[string]int{"first_message": 0, "last_message": -1}), Writable()))

	u := &user{UserData: map[string]any{
		"id":            1234,
		"name":          "Steve",
		"sent_messages": []any{"Hi There!", "Goodbye!"},
	}}

	v, err := ns.Get(u, "first_message")
	require.NoError(t, err)
	assert.Equal(t, "Hi There!", v)

	v, err = ns.Get(u, "last_message")
	require.NoError(t, err)
	assert.Equal(t, "Goodbye!", v)

	require.NoError(t, ns.Set(u, "last_message", "See you"))
	assert.Equal(t, []any{"Hi There!", "See you"}, u.UserData["sent_messages"])
}

func TestMultiLinkObject(t *testing.T) {
	m := useManager(t)
	require.NoError(t, MultiLinkObject(reflect.TypeFor[user](), "Profile",
		MapOf(map[string]string{"login_time": "LoginTime"}), Writable()))

	u := newUser()
	require.NoError(t, m.Namespace().Set(u, "login_time", 300))
	assert.Equal(t, 300, u.Profile.LoginTime)
}

func TestMulti_StopsAtFirstError(t *testing.T) {
	m := useManager(t)
	typ := reflect.TypeFor[listed]()

	require.NoError(t, LinkDictionary(typ, "Data", "b", nil))

	err := MultiLinkDictionary(typ, "Data", Names("a", "b", "c"))
	require.ErrorIs(t, err, linker.ErrExists)

	class, ok := m.Namespace().Lookup(typ)
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, class.Names(), "a stays applied, c is never reached")
}
