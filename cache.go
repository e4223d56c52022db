// Package tinylfu implements a single-threaded, in-memory key-value cache
// approximating the Window-TinyLFU admission policy of Einziger, Friedman
// and Manasse: a small recency-biased admission window feeding a segmented
// main cache (probationary + protected), gated by a frequency estimate
// from a Bloom-filtered count-min sketch.
//
// The cache is not safe for concurrent use: Get mutates LRU order and the
// frequency estimator, so callers needing shared
// access must wrap the whole cache in their own mutual exclusion, exactly
// as a plain container/list-based LRU would require.
package tinylfu

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/go-tinylfu/tinylfu/internal/logging"
)

const windowRatio = 0.01
const probationaryRatio = 0.2

// Cache is the Window-TinyLFU façade: the public API, routing every
// operation to the window or main sub-cache and running the admission
// contest on window overflow.
type Cache[K comparable, V any] struct {
	cap int

	window *window[K, V]
	main   *slru[K, V]
	freq   *frequencyEstimator[K]
}

// New returns a Cache with the given capacity and frequency-estimator
// sample size. Both must be at least 1; violating that is a constructor
// misuse and panics, since there is no recoverable construction error in
// this library (there is no I/O and no configuration the caller could fix
// at runtime).
func New[K comparable, V any](capacity, sampleSize int) *Cache[K, V] {
	if capacity < 1 {
		panic(errors.Errorf("tinylfu: capacity must be at least 1, got %d", capacity))
	}

	if sampleSize < 1 {
		panic(errors.Errorf("tinylfu: sample size must be at least 1, got %d", sampleSize))
	}

	w, prob, prot := segmentSizes(capacity)

	return &Cache[K, V]{
		cap:    capacity,
		window: newWindow[K, V](w),
		main:   newSLRU[K, V](prob, prot),
		freq:   newFrequencyEstimator[K](sampleSize),
	}
}

// segmentSizes computes W, P_prob, P_prot from a total capacity C, per
// spec.md §3: W = max(1, floor(0.01*C)); P_prob = max(1, floor(0.2*(C-W)));
// P_prot = max(1, (C-W)-P_prob).
func segmentSizes(capacity int) (window, probationary, protected int) {
	window = int(windowRatio * float64(capacity))
	if window < 1 {
		window = 1
	}

	mainCap := capacity - window

	probationary = int(probationaryRatio * float64(mainCap))
	if probationary < 1 {
		probationary = 1
	}

	protected = mainCap - probationary
	if protected < 1 {
		protected = 1
	}

	return window, probationary, protected
}

// Put inserts or updates key. If key was already present (in either
// sub-cache), its previous value is returned and len is unchanged.
// Otherwise it delegates to Push and hides whatever Push evicted.
func (c *Cache[K, V]) Put(key K, value V) (V, bool) {
	if c.window.Contains(key) {
		return c.window.Put(key, value)
	}

	if c.main.Contains(key) {
		return c.main.Put(key, value)
	}

	c.Push(key, value)

	var zero V
	return zero, false
}

// Push is the central routine: it inserts or updates key and, unlike Put,
// surfaces whatever was evicted — either an existing entry's previous
// value (the spec's "update in place" case) or the outcome of the
// admission contest run when the window overflows.
func (c *Cache[K, V]) Push(key K, value V) (evictedKey K, evictedValue V, evicted bool) {
	if c.window.Contains(key) {
		old, _ := c.window.Put(key, value)
		return key, old, true
	}

	if c.main.Contains(key) {
		old, _ := c.main.Put(key, value)
		return key, old, true
	}

	windowKey, windowValue, windowOverflowed := c.window.Push(key, value)
	if !windowOverflowed {
		var zk K
		var zv V
		return zk, zv, false
	}

	return c.admit(windowKey, windowValue)
}

// admit runs the admission contest for a candidate evicted from the
// window: it is compared against the main cache's current probationary
// victim (if main is already at probationary capacity) and the more
// frequently observed of the two is kept.
func (c *Cache[K, V]) admit(candidateKey K, candidateValue V) (K, V, bool) {
	victimKey, _, hasVictim := c.main.PeekLRUIfFull()
	if !hasVictim {
		return c.main.Push(candidateKey, candidateValue)
	}

	candidateFreq := c.freq.Estimate(candidateKey)
	victimFreq := c.freq.Estimate(victimKey)

	if candidateFreq > victimFreq {
		logging.Debugf("tinylfu: admitting candidate over incumbent (freq %d > %d)", candidateFreq, victimFreq)
		return c.main.Push(candidateKey, candidateValue)
	}

	logging.Debugf("tinylfu: denying candidate (freq %d <= %d)", candidateFreq, victimFreq)

	return candidateKey, candidateValue, true
}

// Get returns the value for key, promoting it within its owning sub-cache
// (and, on a probationary hit, possibly promoting it to protected) and
// notifying the frequency estimator.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	if v, ok := c.window.Get(key); ok {
		c.freq.Record(key)
		return v, true
	}

	if v, ok := c.main.Get(key); ok {
		c.freq.Record(key)
		return v, true
	}

	var zero V
	return zero, false
}

// Peek returns the value for key with no reordering and no frequency
// estimator update.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	if v, ok := c.window.Peek(key); ok {
		return v, true
	}

	return c.main.Peek(key)
}

// PeekLRUWindow returns the window's least-recently-used entry.
func (c *Cache[K, V]) PeekLRUWindow() (K, V, bool) {
	return c.window.PeekLRU()
}

// PeekLRUMain returns the main cache's least-recently-used entry
// (probationary LRU if present, otherwise protected LRU).
func (c *Cache[K, V]) PeekLRUMain() (K, V, bool) {
	return c.main.PeekLRU()
}

// Pop removes and returns the value for key.
func (c *Cache[K, V]) Pop(key K) (V, bool) {
	if v, ok := c.window.Pop(key); ok {
		return v, true
	}

	return c.main.Pop(key)
}

// PopEntry removes and returns the (key, value) pair for key.
func (c *Cache[K, V]) PopEntry(key K) (K, V, bool) {
	if k, v, ok := c.window.PopEntry(key); ok {
		return k, v, ok
	}

	return c.main.PopEntry(key)
}

// PopLRUWindow removes and returns the window's least-recently-used entry.
func (c *Cache[K, V]) PopLRUWindow() (K, V, bool) {
	return c.window.PopLRU()
}

// PopLRUMain removes and returns the main cache's least-recently-used
// entry.
func (c *Cache[K, V]) PopLRUMain() (K, V, bool) {
	return c.main.PopLRU()
}

// Contains reports whether key is present, without reordering.
func (c *Cache[K, V]) Contains(key K) bool {
	return c.window.Contains(key) || c.main.Contains(key)
}

// Len returns the number of entries currently held across both
// sub-caches.
func (c *Cache[K, V]) Len() int {
	return c.window.Len() + c.main.Len()
}

// Cap returns the configured total capacity.
func (c *Cache[K, V]) Cap() int {
	return c.cap
}

// IsEmpty reports whether the cache currently holds no entries.
func (c *Cache[K, V]) IsEmpty() bool {
	return c.Len() == 0
}

// Resize changes the total capacity, recomputing and resizing each
// sub-cache's share. Entries beyond a shrunk sub-cache's new capacity are
// discarded LRU-first. The frequency estimator is not resized or cleared:
// its warm history is preserved across a resize, matching spec.md §9.3.
func (c *Cache[K, V]) Resize(capacity int) {
	if capacity < 1 {
		panic(errors.Errorf("tinylfu: capacity must be at least 1, got %d", capacity))
	}

	c.cap = capacity

	w, prob, prot := segmentSizes(capacity)
	logging.Debugf("tinylfu: resizing to capacity %d (window %d, probationary %d, protected %d)", capacity, w, prob, prot)

	c.window.Resize(w)
	c.main.Resize(prob, prot)
}

// Clear removes every entry from both sub-caches. The frequency estimator
// is not cleared: frequency history survives Clear, matching spec.md §9.2.
func (c *Cache[K, V]) Clear() {
	c.window.Clear()
	c.main.Clear()
}

// Each calls fn for every entry: window entries first (in the window's own
// recency order), then main entries (probationary then protected). It
// stops early if fn returns false. There is no ordering guarantee beyond
// that, and no guarantee a key won't be yielded if a concurrent mutation
// races with iteration — the cache is not safe for concurrent use.
func (c *Cache[K, V]) Each(fn func(K, V) bool) {
	cont := true

	c.window.Each(func(k K, v V) bool {
		cont = fn(k, v)
		return cont
	})

	if !cont {
		return
	}

	c.main.Each(fn)
}

// String returns a short, human-readable representation of the cache, for
// use in debug logging.
func (c *Cache[K, V]) String() string {
	return fmt.Sprintf("tinylfu.Cache[%T, %T](len=%d, cap=%d)", *new(K), *new(V), c.Len(), c.cap)
}
