package attrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapGet(t *testing.T) {
	m := map[string]any{"id": 1}

	v, err := MapGet(m, "id", nil, false)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = MapGet(m, "name", "anon", false)
	require.NoError(t, err)
	assert.Equal(t, "anon", v)

	_, err = MapGet(m, "name", nil, true)
	require.ErrorIs(t, err, ErrKeyLookup)

	var empty map[string]int
	v, err = MapGet(empty, "x", 5, false)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	_, err = MapGet([]int{}, "x", nil, false)
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestMapGet_IntKeys(t *testing.T) {
	m := map[int]string{7: "seven"}

	v, err := MapGet(m, 7, "", true)
	require.NoError(t, err)
	assert.Equal(t, "seven", v)

	_, err = MapGet(m, "7", "", true)
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestMapWith_CopiesBeforeMerge(t *testing.T) {
	orig := map[string]any{"id": 1, "name": "Foo"}

	out, err := MapWith(orig, "name", "Bar")
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"id": 1, "name": "Bar"}, out)
	assert.Equal(t, "Foo", orig["name"], "original mapping must not be mutated")
}

func TestMapWith_NilMapAndTypes(t *testing.T) {
	var m map[string]int

	out, err := MapWith(m, "a", 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 1}, out)

	_, err = MapWith(map[string]int{}, "a", "one")
	require.ErrorIs(t, err, ErrTypeMismatch)
}
