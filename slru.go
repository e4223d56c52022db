package tinylfu

import "github.com/go-tinylfu/tinylfu/internal/logging"

// slru is the segmented main cache: a probationary segment holding items
// new to main, and a protected segment holding items re-used since they
// entered main. The two segments are disjoint in their key sets.
type slru[K comparable, V any] struct {
	probationary *lru[K, V]
	protected    *lru[K, V]
}

func newSLRU[K comparable, V any](probationaryCap, protectedCap int) *slru[K, V] {
	return &slru[K, V]{
		probationary: newLRU[K, V](probationaryCap),
		protected:    newLRU[K, V](protectedCap),
	}
}

func (s *slru[K, V]) Len() int { return s.probationary.Len() + s.protected.Len() }
func (s *slru[K, V]) Cap() int { return s.probationary.Cap() + s.protected.Cap() }

func (s *slru[K, V]) Contains(key K) bool {
	return s.probationary.Contains(key) || s.protected.Contains(key)
}

// Peek checks probationary first, then protected, with no reordering.
func (s *slru[K, V]) Peek(key K) (V, bool) {
	if v, ok := s.probationary.Peek(key); ok {
		return v, true
	}

	return s.protected.Peek(key)
}

// Get implements the promotion rule: a probationary hit is moved to
// protected; if that overflows protected, its LRU victim demotes into
// probationary, and if probationary in turn overflows, the displaced
// probationary entry is silently dropped (spec.md §9, open question 1).
// A protected hit, or a miss, behaves like a plain lru Get.
func (s *slru[K, V]) Get(key K) (V, bool) {
	v, ok := s.probationary.Pop(key)
	if !ok {
		return s.protected.Get(key)
	}

	demotedKey, demotedValue, overflowed := s.protected.Push(key, v)
	if overflowed {
		if _, _, dropped := s.probationary.Push(demotedKey, demotedValue); dropped {
			logging.Debugf("slru: dropped entry on promotion overflow")
		}
	}

	pv, _ := s.protected.Peek(key)
	return pv, true
}

// Put inserts or updates key: if already in probationary or protected,
// update it in place; otherwise insert into probationary, silently
// evicting its LRU entry if it overflows.
func (s *slru[K, V]) Put(key K, value V) (V, bool) {
	if s.probationary.Contains(key) {
		return s.probationary.Put(key, value)
	}

	if s.protected.Contains(key) {
		return s.protected.Put(key, value)
	}

	return s.probationary.Put(key, value)
}

// Push is Put's sibling, surfacing the evicted probationary pair instead of
// dropping it silently when a fresh insertion overflows.
func (s *slru[K, V]) Push(key K, value V) (evictedKey K, evictedValue V, evicted bool) {
	if s.probationary.Contains(key) {
		s.probationary.Put(key, value)
		return
	}

	if s.protected.Contains(key) {
		s.protected.Put(key, value)
		return
	}

	return s.probationary.Push(key, value)
}

// PeekLRUIfFull returns the probationary LRU entry only when probationary
// is at capacity — the hook the façade uses to find (or not) a main-cache
// admission-contest victim.
func (s *slru[K, V]) PeekLRUIfFull() (K, V, bool) {
	if s.probationary.Len() < s.probationary.Cap() {
		var zk K
		var zv V
		return zk, zv, false
	}

	return s.probationary.PeekLRU()
}

// PeekLRU returns the tail entry, probationary first, else protected, with
// no reordering.
func (s *slru[K, V]) PeekLRU() (K, V, bool) {
	if k, v, ok := s.probationary.PeekLRU(); ok {
		return k, v, ok
	}

	return s.protected.PeekLRU()
}

func (s *slru[K, V]) Pop(key K) (V, bool) {
	if v, ok := s.probationary.Pop(key); ok {
		return v, ok
	}

	return s.protected.Pop(key)
}

func (s *slru[K, V]) PopEntry(key K) (K, V, bool) {
	if k, v, ok := s.probationary.PopEntry(key); ok {
		return k, v, ok
	}

	return s.protected.PopEntry(key)
}

func (s *slru[K, V]) PopLRU() (K, V, bool) {
	if k, v, ok := s.probationary.PopLRU(); ok {
		return k, v, ok
	}

	return s.protected.PopLRU()
}

func (s *slru[K, V]) Resize(probationaryCap, protectedCap int) {
	s.probationary.Resize(probationaryCap)
	s.protected.Resize(protectedCap)
}

func (s *slru[K, V]) Clear() {
	s.probationary.Clear()
	s.protected.Clear()
}

// Each calls fn for every entry, probationary first then protected.
func (s *slru[K, V]) Each(fn func(K, V) bool) {
	cont := true

	s.probationary.Each(func(k K, v V) bool {
		cont = fn(k, v)
		return cont
	})

	if !cont {
		return
	}

	s.protected.Each(fn)
}
