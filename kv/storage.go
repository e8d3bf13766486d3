package kv

import (
	"iter"

	"github.com/indigo-web/utils/strcomp"
)

type Pair struct {
	Key, Value string
}

// Storage is an associative structure for storing (string, string) pairs. It acts as a map but
// uses linear search instead, which proves to be more efficient on relatively low amount of
// entries, which often enough is the case.
//
// Pairs are kept in the insertion order and duplicates are never merged. Keys are looked up
// case-insensitively but stored verbatim. Reading methods have value receivers, so a Storage
// embedded into a value type is readable without being addressable.
type Storage struct {
	pairs []Pair
}

func New(pairs ...Pair) *Storage {
	return &Storage{pairs: clone(pairs)}
}

// NewPrealloc returns an instance of Storage with pre-allocated underlying storage.
func NewPrealloc(n int) *Storage {
	return &Storage{
		pairs: make([]Pair, 0, n),
	}
}

// Add adds a new pair of key and value.
func (s *Storage) Add(key, value string) *Storage {
	s.pairs = append(s.pairs, Pair{
		Key:   key,
		Value: value,
	})
	return s
}

// Set replaces all the values of the key by a single one, keeping the position of the first
// occurrence. If the key isn't presented, it's added.
func (s *Storage) Set(key, value string) *Storage {
	for i, pair := range s.pairs {
		if strcomp.EqualFold(pair.Key, key) {
			s.pairs[i] = Pair{Key: key, Value: value}
			s.pairs = append(s.pairs[:i+1], deleteKey(s.pairs[i+1:], key)...)
			return s
		}
	}

	return s.Add(key, value)
}

// Delete removes all the pairs with the key.
func (s *Storage) Delete(key string) *Storage {
	s.pairs = deleteKey(s.pairs, key)
	return s
}

// Value returns the first value, corresponding to the key. Otherwise, empty string is returned
func (s Storage) Value(key string) string {
	return s.ValueOr(key, "")
}

// ValueOr returns either the first value corresponding to the key or custom value, defined
// via the second parameter.
func (s Storage) ValueOr(key, or string) string {
	value, found := s.Get(key)
	if !found {
		return or
	}

	return value
}

// Get returns a value and a bool, indicating whether the value was found. If it wasn't, it'll
// be an empty string.
func (s Storage) Get(key string) (value string, found bool) {
	for _, pair := range s.pairs {
		if strcomp.EqualFold(key, pair.Key) {
			return pair.Value, true
		}
	}

	return "", false
}

// Values returns an iterator over all values of the key in their order.
func (s Storage) Values(key string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, pair := range s.pairs {
			if strcomp.EqualFold(pair.Key, key) && !yield(pair.Value) {
				return
			}
		}
	}
}

// Keys returns an iterator over unique keys. The first met spelling of each key is yielded.
func (s Storage) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i, pair := range s.pairs {
			if contains(s.pairs[:i], pair.Key) {
				continue
			}

			if !yield(pair.Key) {
				return
			}
		}
	}
}

// Pairs returns an iterator over the pairs.
func (s Storage) Pairs() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, pair := range s.pairs {
			if !yield(pair.Key, pair.Value) {
				break
			}
		}
	}
}

// Has indicates, whether there's an entry of the key.
func (s Storage) Has(key string) bool {
	_, found := s.Get(key)
	return found
}

// Len returns a number of stored pairs.
func (s Storage) Len() int {
	return len(s.pairs)
}

func (s Storage) Empty() bool {
	return s.Len() == 0
}

// Equal reports whether both storages hold exactly the same pairs in the same order. Keys are
// compared case-sensitively here, as they are stored verbatim.
func (s Storage) Equal(other Storage) bool {
	if len(s.pairs) != len(other.pairs) {
		return false
	}

	for i := range s.pairs {
		if s.pairs[i] != other.pairs[i] {
			return false
		}
	}

	return true
}

// Clone creates a deep copy, which may be used later or stored somewhere safely. However,
// it comes at cost of an allocation.
func (s Storage) Clone() *Storage {
	return &Storage{pairs: clone(s.pairs)}
}

// Expose exposes the underlying pairs slice. It must not be modified.
func (s Storage) Expose() []Pair {
	return s.pairs
}

// Clear all the entries. However, all the allocated space won't be freed.
func (s *Storage) Clear() *Storage {
	s.pairs = s.pairs[:0]
	return s
}

func deleteKey(pairs []Pair, key string) []Pair {
	var cleaned int

	for _, pair := range pairs {
		if !strcomp.EqualFold(pair.Key, key) {
			pairs[cleaned] = pair
			cleaned++
		}
	}

	return pairs[:cleaned]
}

func contains(pairs []Pair, key string) bool {
	for _, pair := range pairs {
		if strcomp.EqualFold(pair.Key, key) {
			return true
		}
	}

	return false
}

func clone[T any](source []T) []T {
	if len(source) == 0 {
		return nil
	}

	newSlice := make([]T, len(source))
	copy(newSlice, source)

	return newSlice
}
