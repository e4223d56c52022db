package internal

const sketchDepth = 4

// CountMinSketch is a count-min sketch with 16-bit counters, used by the
// frequency estimator to approximate per-key access counts.
// See http://dimacs.rutgers.edu/~graham/pubs/papers/cmsoft.pdf
type CountMinSketch struct {
	counters [sketchDepth][]uint16
	mask     uint32
}

// NewCountMinSketch returns a sketch sized for widthHint expected distinct
// keys, scaled by widthFactor. errorRate is accepted to match the
// collaborator interface described by the specification but does not
// currently influence sizing beyond the width computed from widthHint and
// widthFactor; depth is fixed at 4, matching the classic TinyLFU
// admission-policy implementations this design is grounded on.
func NewCountMinSketch(widthHint int, errorRate, widthFactor float64) *CountMinSketch {
	_ = errorRate

	width := nextPowerOfTwo(uint32(float64(widthHint) * widthFactor))
	if width == 0 {
		width = 1
	}

	c := &CountMinSketch{mask: width - 1}
	for i := range c.counters {
		c.counters[i] = make([]uint16, width)
	}

	return c
}

// Increment increases the counters associated with h by one, saturating at
// the maximum uint16 value.
func (c *CountMinSketch) Increment(h uint64) {
	h1, h2 := uint32(h), uint32(h>>32)

	for i := 0; i < sketchDepth; i++ {
		idx := c.index(h1 + uint32(i)*h2)
		if c.counters[i][idx] < 0xFFFF {
			c.counters[i][idx]++
		}
	}
}

// Estimate returns the minimum counter value associated with h across all
// rows of the sketch.
func (c *CountMinSketch) Estimate(h uint64) uint16 {
	h1, h2 := uint32(h), uint32(h>>32)

	min := uint16(0xFFFF)

	for i := 0; i < sketchDepth; i++ {
		idx := c.index(h1 + uint32(i)*h2)
		if v := c.counters[i][idx]; v < min {
			min = v
		}
	}

	return min
}

// Reset zeroes every counter in the sketch.
func (c *CountMinSketch) Reset() {
	for i := range c.counters {
		row := c.counters[i]
		for j := range row {
			row[j] = 0
		}
	}
}

func (c *CountMinSketch) index(h uint32) uint32 {
	return h & c.mask
}
