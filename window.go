package tinylfu

// window is a thin wrapper over an lru, holding the most recently admitted
// items. It is the admission source for the main cache: every new key
// enters here first, and the façade runs the admission contest when it
// overflows.
type window[K comparable, V any] struct {
	lru *lru[K, V]
}

func newWindow[K comparable, V any](capacity int) *window[K, V] {
	return &window[K, V]{lru: newLRU[K, V](capacity)}
}

func (w *window[K, V]) Len() int              { return w.lru.Len() }
func (w *window[K, V]) Cap() int              { return w.lru.Cap() }
func (w *window[K, V]) Contains(key K) bool   { return w.lru.Contains(key) }
func (w *window[K, V]) Get(key K) (V, bool)   { return w.lru.Get(key) }
func (w *window[K, V]) Peek(key K) (V, bool)  { return w.lru.Peek(key) }
func (w *window[K, V]) PeekLRU() (K, V, bool) { return w.lru.PeekLRU() }
func (w *window[K, V]) Put(key K, value V) (V, bool) {
	return w.lru.Put(key, value)
}

func (w *window[K, V]) Push(key K, value V) (K, V, bool) {
	return w.lru.Push(key, value)
}

func (w *window[K, V]) Pop(key K) (V, bool)         { return w.lru.Pop(key) }
func (w *window[K, V]) PopEntry(key K) (K, V, bool) { return w.lru.PopEntry(key) }
func (w *window[K, V]) PopLRU() (K, V, bool)        { return w.lru.PopLRU() }
func (w *window[K, V]) Resize(capacity int)         { w.lru.Resize(capacity) }
func (w *window[K, V]) Clear()                      { w.lru.Clear() }
func (w *window[K, V]) Each(fn func(K, V) bool)      { w.lru.Each(fn) }
