package attrs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profile struct {
	LoginTime int
}

type account struct {
	Data    map[string]any `attr:"userData"`
	Profile *profile
	Nick    string
	Count   int64
	secret  string
}

func TestGet_StructField(t *testing.T) {
	a := &account{Nick: "steve", Data: map[string]any{"id": 1}}

	v, err := Get(a, "Nick")
	require.NoError(t, err)
	assert.Equal(t, "steve", v)

	v, err = Get(*a, "Nick")
	require.NoError(t, err)
	assert.Equal(t, "steve", v)
}

func TestGet_TaggedField(t *testing.T) {
	a := &account{Data: map[string]any{"id": 1}}

	v, err := Get(a, "userData")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": 1}, v)
}

func TestGet_Errors(t *testing.T) {
	a := &account{secret: "x"}

	_, err := Get(a, "secret")
	require.ErrorIs(t, err, ErrNoAttribute)

	_, err = Get(a, "Missing")
	require.ErrorIs(t, err, ErrNoAttribute)

	_, err = Get(nil, "Nick")
	require.ErrorIs(t, err, ErrNoAttribute)

	var nilAccount *account
	_, err = Get(nilAccount, "Nick")
	require.ErrorIs(t, err, ErrNoAttribute)

	_, err = Get(42, "Nick")
	require.ErrorIs(t, err, ErrNoAttribute)
}

func TestGet_Map(t *testing.T) {
	m := map[string]any{"name": "Foo"}

	v, err := Get(m, "name")
	require.NoError(t, err)
	assert.Equal(t, "Foo", v)

	_, err = Get(m, "id")
	require.ErrorIs(t, err, ErrNoAttribute)

	_, err = Get(map[int]string{1: "a"}, "1")
	require.ErrorIs(t, err, ErrNoAttribute)
}

func TestSet_StructField(t *testing.T) {
	a := &account{}

	require.NoError(t, Set(a, "Nick", "bob"))
	assert.Equal(t, "bob", a.Nick)

	// int -> int64 widening is accepted
	require.NoError(t, Set(a, "Count", 7))
	assert.Equal(t, int64(7), a.Count)

	require.NoError(t, Set(a, "userData", map[string]any{"k": "v"}))
	assert.Equal(t, map[string]any{"k": "v"}, a.Data)

	require.NoError(t, Set(a, "Profile", nil))
	assert.Nil(t, a.Profile)
}

func TestSet_Errors(t *testing.T) {
	err := Set(account{}, "Nick", "bob")
	require.ErrorIs(t, err, ErrNotAddressable)

	err = Set(&account{}, "Nick", 12)
	require.ErrorIs(t, err, ErrTypeMismatch)

	err = Set(&account{}, "Missing", 1)
	require.ErrorIs(t, err, ErrNoAttribute)

	var m map[string]int
	err = Set(m, "a", 1)
	require.ErrorIs(t, err, ErrNotAddressable)
}

func TestSet_Map(t *testing.T) {
	m := map[string]int{}
	require.NoError(t, Set(m, "a", 1))
	assert.Equal(t, 1, m["a"])
}

func TestCoerce(t *testing.T) {
	type status string

	tests := []struct {
		name    string
		value   any
		target  any
		want    any
		wantErr bool
	}{
		{"assignable", "x", "", "x", false},
		{"named string", "ok", status(""), status("ok"), false},
		{"int to int64", 3, int64(0), int64(3), false},
		{"int to float", 3, float64(0), float64(3), false},
		{"float to int", 3.5, 0, nil, true},
		{"int to string", 65, "", nil, true},
		{"nil to zero", nil, 0, 0, false},
		{"int fits int8", 100, int8(0), int8(100), false},
		{"int overflows int8", 300, int8(0), nil, true},
		{"negative to uint", -1, uint(0), nil, true},
		{"uint64 overflows int64", uint64(math.MaxUint64), int64(0), nil, true},
		{"uint to int", uint(7), 0, 7, false},
		{"int loses float precision", int64(1<<53 + 1), float64(0), nil, true},
		{"float64 to float32", 1.5, float32(0), float32(1.5), false},
		{"float64 overflows float32", math.MaxFloat64, float32(0), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Coerce(tt.value, TypeOf(tt.target))
			if tt.wantErr {
				require.ErrorIs(t, err, ErrTypeMismatch)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Interface())
		})
	}
}
