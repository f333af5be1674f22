package attrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {
	s := []any{"a", "b", "c"}

	v, err := Index(s, 0)
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	v, err = Index(s, -1)
	require.NoError(t, err)
	assert.Equal(t, "c", v)

	v, err = Index([2]int{4, 5}, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	_, err = Index(s, 3)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = Index(s, -4)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = Index("abc", 0)
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestPopInsert_ReplacesInPlace(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  []string
	}{
		{"first", 0, []string{"X", "b", "c", "d"}},
		{"middle", 2, []string{"a", "b", "X", "d"}},
		{"last", 3, []string{"a", "b", "c", "X"}},
		{"negative last", -1, []string{"a", "b", "c", "X"}},
		{"negative first", -4, []string{"X", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := []string{"a", "b", "c", "d"}
			alias := s

			require.NoError(t, PopInsert(s, tt.index, "X"))

			assert.Equal(t, tt.want, s)
			assert.Len(t, s, 4)
			// same backing array: holders of the slice observe the write
			assert.Equal(t, tt.want, alias)
		})
	}
}

func TestPopInsert_SingleElement(t *testing.T) {
	s := []int{1}
	require.NoError(t, PopInsert(s, 0, 9))
	assert.Equal(t, []int{9}, s)
}

func TestPopInsert_Errors(t *testing.T) {
	require.ErrorIs(t, PopInsert([]int{}, 0, 1), ErrIndexOutOfRange)
	require.ErrorIs(t, PopInsert([]int{1}, 0, "x"), ErrTypeMismatch)
	require.ErrorIs(t, PopInsert([1]int{1}, 0, 2), ErrTypeMismatch)

	// a failed coercion leaves the slice untouched
	s := []int{1, 2, 3}
	require.Error(t, PopInsert(s, 1, "x"))
	assert.Equal(t, []int{1, 2, 3}, s)
}
