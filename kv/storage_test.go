package kv

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	getHeaders := func() *Storage {
		return New().
			Add("Foo", "bar").
			Add("Hello", "World").
			Add("Lorem", "ipsum").
			Add("hello", "Pavlo")
	}

	t.Run("order and duplicates", func(t *testing.T) {
		kv := getHeaders()
		require.Equal(t, 4, kv.Len())
		require.Equal(t, []Pair{
			{"Foo", "bar"},
			{"Hello", "World"},
			{"Lorem", "ipsum"},
			{"hello", "Pavlo"},
		}, kv.Expose())
	})

	t.Run("case-insensitive lookup", func(t *testing.T) {
		kv := getHeaders()
		require.Equal(t, "World", kv.Value("HELLO"))
		require.Equal(t, []string{"World", "Pavlo"}, slices.Collect(kv.Values("hello")))
		require.True(t, kv.Has("lorem"))
		require.False(t, kv.Has("ipsum"))
		require.Equal(t, "default", kv.ValueOr("missing", "default"))
	})

	t.Run("delete", func(t *testing.T) {
		kv := getHeaders().Delete("HELLO")

		require.Equal(t, []Pair{
			{"Foo", "bar"},
			{"Lorem", "ipsum"},
		}, kv.Expose())
	})

	t.Run("set", func(t *testing.T) {
		kv := getHeaders().Set("HELLO", "no more Pavlo")

		require.Equal(t, []Pair{
			{"Foo", "bar"},
			{"HELLO", "no more Pavlo"},
			{"Lorem", "ipsum"},
		}, kv.Expose())
	})

	t.Run("set new key", func(t *testing.T) {
		kv := New().
			Add("Pavlo", "the best").
			Set("Glory to", "Ukraine")

		require.Equal(t, []Pair{
			{"Pavlo", "the best"},
			{"Glory to", "Ukraine"},
		}, kv.Expose())
	})

	t.Run("keys", func(t *testing.T) {
		require.Equal(t, []string{"Foo", "Hello", "Lorem"}, slices.Collect(getHeaders().Keys()))
	})

	t.Run("pairs", func(t *testing.T) {
		var keys []string
		for key := range getHeaders().Pairs() {
			keys = append(keys, key)
		}

		require.Equal(t, []string{"Foo", "Hello", "Lorem", "hello"}, keys)
	})

	t.Run("equal", func(t *testing.T) {
		require.True(t, getHeaders().Equal(*getHeaders()))
		require.True(t, New().Equal(*NewPrealloc(10)))
		require.False(t, getHeaders().Equal(*getHeaders().Delete("foo")))
		require.False(t, New().Add("a", "b").Equal(*New().Add("A", "b")))
	})

	t.Run("clone is independent", func(t *testing.T) {
		original := getHeaders()
		clone := original.Clone().Add("extra", "value")
		require.Equal(t, 4, original.Len())
		require.Equal(t, 5, clone.Len())
	})
}
