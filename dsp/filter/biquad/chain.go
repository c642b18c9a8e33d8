package biquad

// Chain is an ordered cascade of biquad sections processed in series.
//
// A Chain holds references to sections owned by the caller. It never copies
// their coefficients or state, and discarding a Chain leaves the sections
// untouched. Adding the same section twice is allowed; that section then
// advances its state twice per sample, in both ProcessSample and
// ProcessBlock.
type Chain struct {
	sections []*Section
}

// NewChain returns a chain over the given sections, in order.
func NewChain(sections ...*Section) *Chain {
	c := &Chain{sections: make([]*Section, 0, len(sections))}
	for _, s := range sections {
		c.Add(s)
	}

	return c
}

// Compose returns a new chain running a and then b.
func Compose(a, b *Section) *Chain {
	return NewChain().Add(a).Add(b)
}

// Add appends s to the end of the chain and returns the chain so calls can
// be strung together.
func (c *Chain) Add(s *Section) *Chain {
	c.sections = append(c.sections, s)
	return c
}

// CombineWith appends one more section to an existing chain. It is the
// chain-with-section counterpart of Compose.
func (c *Chain) CombineWith(s *Section) *Chain {
	return c.Add(s)
}

// ProcessSample cascades input through all sections in order, each
// section's output feeding the next.
func (c *Chain) ProcessSample(x float64) float64 {
	for _, s := range c.sections {
		x = s.ProcessSample(x)
	}

	return x
}

// ProcessBlock filters a block in-place through the full cascade and
// produces the same output as calling ProcessSample per sample.
//
// Distinct sections run block-by-block on their dispatched kernels. When a
// section appears more than once its state is shared between positions, so
// the cascade is stepped sample by sample instead.
func (c *Chain) ProcessBlock(buf []float64) {
	if c.hasRepeatedSection() {
		for i, x := range buf {
			buf[i] = c.ProcessSample(x)
		}

		return
	}

	for _, s := range c.sections {
		s.ProcessBlock(buf)
	}
}

func (c *Chain) hasRepeatedSection() bool {
	for i, s := range c.sections {
		for _, t := range c.sections[:i] {
			if s == t {
				return true
			}
		}
	}

	return false
}

// Reset clears all section states.
func (c *Chain) Reset() {
	for _, s := range c.sections {
		s.Reset()
	}
}

// Order returns the total filter order (2 per biquad section).
func (c *Chain) Order() int {
	return 2 * len(c.sections)
}

// Len returns the number of sections in the chain.
func (c *Chain) Len() int {
	return len(c.sections)
}

// Section returns the i-th section for inspection or modification.
func (c *Chain) Section(i int) *Section {
	return c.sections[i]
}

// State returns a snapshot of all section delay-line states.
func (c *Chain) State() [][2]float64 {
	states := make([][2]float64, len(c.sections))
	for i, s := range c.sections {
		states[i] = s.State()
	}

	return states
}

// SetState restores previously saved section states.
// The slice length must match Len.
func (c *Chain) SetState(states [][2]float64) {
	for i, s := range c.sections {
		s.SetState(states[i])
	}
}
