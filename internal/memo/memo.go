// Package memo caches values derived from chart inputs, keyed by a content
// hash of those inputs.
package memo

import (
	"encoding/binary"
	"math"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/patrickmn/go-cache"
)

// DefaultTTL is how long an unused entry stays cached.
const DefaultTTL = 5 * time.Minute

// Key identifies a set of inputs.
type Key uint64

// String returns the key in hexadecimal.
func (k Key) String() string {
	return strconv.FormatUint(uint64(k), 16)
}

// Hasher accumulates inputs into a Key.
// The zero Hasher is not usable; call NewHasher.
type Hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

// NewHasher returns an empty Hasher.
func NewHasher() *Hasher {
	return &Hasher{d: xxhash.New()}
}

// Float adds v. All NaN values hash alike, and so do 0 and -0.
func (h *Hasher) Float(v float64) *Hasher {
	switch {
	case math.IsNaN(v):
		v = math.NaN()
	case v == 0:
		v = 0
	}
	binary.LittleEndian.PutUint64(h.buf[:], math.Float64bits(v))
	_, _ = h.d.Write(h.buf[:])
	return h
}

// Int adds n.
func (h *Hasher) Int(n int) *Hasher {
	binary.LittleEndian.PutUint64(h.buf[:], uint64(n))
	_, _ = h.d.Write(h.buf[:])
	return h
}

// Text adds s, prefixed by its length.
func (h *Hasher) Text(s string) *Hasher {
	h.Int(len(s))
	_, _ = h.d.WriteString(s)
	return h
}

// Sum returns the key of everything added so far.
func (h *Hasher) Sum() Key {
	return Key(h.d.Sum64())
}

// Cache holds derived values of type T. It is safe for concurrent use.
type Cache[T any] struct {
	c *cache.Cache
}

// New returns a cache whose entries expire ttl after they were last set.
// A non-positive ttl means DefaultTTL.
func New[T any](ttl time.Duration) *Cache[T] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache[T]{c: cache.New(ttl, 2*ttl)}
}

// Get returns the value stored under k.
func (c *Cache[T]) Get(k Key) (T, bool) {
	v, ok := c.c.Get(k.String())
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// Set stores v under k.
func (c *Cache[T]) Set(k Key, v T) {
	c.c.SetDefault(k.String(), v)
}

// GetOrCompute returns the value stored under k, computing and storing it
// with fn on a miss. Errors from fn are returned and nothing is stored.
// hit reports whether the value came from the cache.
func (c *Cache[T]) GetOrCompute(k Key, fn func() (T, error)) (v T, hit bool, err error) {
	if v, ok := c.Get(k); ok {
		return v, true, nil
	}
	v, err = fn()
	if err != nil {
		var zero T
		return zero, false, err
	}
	c.Set(k, v)
	return v, false, nil
}

// Delete removes the entry stored under k, if any.
func (c *Cache[T]) Delete(k Key) {
	c.c.Delete(k.String())
}

// Len returns the number of cached entries, including expired entries that
// have not been cleaned up yet.
func (c *Cache[T]) Len() int {
	return c.c.ItemCount()
}

// Flush removes every entry.
func (c *Cache[T]) Flush() {
	c.c.Flush()
}
