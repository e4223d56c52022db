package tinylfu

import (
	"github.com/go-tinylfu/tinylfu/internal"
	"github.com/go-tinylfu/tinylfu/internal/logging"
)

const (
	sketchExpectedKeysFactor = 2
	sketchErrorRate          = 0.97
	sketchWidthFactor        = 4.0
	doorkeeperFPRate         = 0.01
)

// frequencyEstimator provides an approximate per-key access frequency,
// gated by a Bloom-filter doorkeeper and aged by a periodic reset. It wraps
// a count-min sketch (internal.CountMinSketch) and a Bloom filter
// (internal.BloomFilter).
type frequencyEstimator[K comparable] struct {
	sketch     *internal.CountMinSketch
	doorkeeper *internal.BloomFilter

	sampleSize  int
	sampleCount int
}

func newFrequencyEstimator[K comparable](sampleSize int) *frequencyEstimator[K] {
	if sampleSize < 1 {
		sampleSize = 1
	}

	return &frequencyEstimator[K]{
		sketch:     internal.NewCountMinSketch(sketchExpectedKeysFactor*sampleSize, sketchErrorRate, sketchWidthFactor),
		doorkeeper: internal.NewForFPRate(sampleSize, doorkeeperFPRate),
		sampleSize: sampleSize,
	}
}

// Estimate returns the sketch count for key, bumped by one if the
// doorkeeper has already seen it — so a key observed once since the last
// reset outranks one never observed at all.
func (f *frequencyEstimator[K]) Estimate(key K) uint16 {
	h := internal.ComputeHash(key)

	freq := f.sketch.Estimate(h)
	if f.doorkeeper.Contains(h) {
		freq++
	}

	return freq
}

// Record registers an access to key. The doorkeeper gates entry to the
// sketch: a key's first observation only sets its doorkeeper bit; only a
// second (or later) observation increments the sketch, and only those
// qualifying accesses count toward the aging-reset sample.
func (f *frequencyEstimator[K]) Record(key K) {
	h := internal.ComputeHash(key)

	if f.doorkeeper.Contains(h) {
		f.sketch.Increment(h)

		f.sampleCount++
		if f.sampleCount >= f.sampleSize {
			logging.Debugf("frequencyEstimator: aging reset after %d qualifying accesses", f.sampleCount)
			f.reset()
		}

		return
	}

	f.doorkeeper.Insert(h)
}

// Clear resets the sketch, doorkeeper, and sample counter.
func (f *frequencyEstimator[K]) Clear() {
	f.reset()
}

func (f *frequencyEstimator[K]) reset() {
	f.sketch.Reset()
	f.doorkeeper.Clear()
	f.sampleCount = 0
}
