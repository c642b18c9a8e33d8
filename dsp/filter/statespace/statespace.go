package statespace

import (
	"errors"
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-biquad/dsp/filter/biquad"
)

var (
	// ErrEmptyChain is returned by FromChain for a chain without sections.
	ErrEmptyChain = errors.New("statespace: empty chain")
	// ErrStateSize is returned when an initial state does not match the model order.
	ErrStateSize = errors.New("statespace: state vector size mismatch")
	// ErrEigen is returned when the eigen decomposition of A fails.
	ErrEigen = errors.New("statespace: eigen decomposition failed")
)

// Model is a single-input single-output state-space realization.
type Model struct {
	A    *mat.Dense
	B, C *mat.VecDense
	D    float64
}

// FromCoefficients returns the second-order model of one transposed
// direct-form II section.
func FromCoefficients(c biquad.Coefficients) *Model {
	return &Model{
		A: mat.NewDense(2, 2, []float64{
			-c.A1, 1,
			-c.A2, 0,
		}),
		B: mat.NewVecDense(2, []float64{c.B1 - c.A1*c.B0, c.B2 - c.A2*c.B0}),
		C: mat.NewVecDense(2, []float64{1, 0}),
		D: c.B0,
	}
}

// FromSection returns the model of the section's current coefficients.
func FromSection(s *biquad.Section) *Model {
	return FromCoefficients(s.Coefficients())
}

// FromChain returns the series composition of every section in the chain.
// The state vector stacks the section states in chain order.
func FromChain(c *biquad.Chain) (*Model, error) {
	if c.Len() == 0 {
		return nil, ErrEmptyChain
	}

	m := FromSection(c.Section(0))
	for i := 1; i < c.Len(); i++ {
		m = Series(m, FromSection(c.Section(i)))
	}

	return m, nil
}

// Series returns the model of m1 followed by m2.
func Series(m1, m2 *Model) *Model {
	n1, n2 := m1.Order(), m2.Order()
	n := n1 + n2

	a := mat.NewDense(n, n, nil)
	a.Slice(0, n1, 0, n1).(*mat.Dense).Copy(m1.A)
	a.Slice(n1, n, n1, n).(*mat.Dense).Copy(m2.A)
	a.Slice(n1, n, 0, n1).(*mat.Dense).Outer(1, m2.B, m1.C)

	b := mat.NewVecDense(n, nil)
	b.SliceVec(0, n1).(*mat.VecDense).CopyVec(m1.B)
	b.SliceVec(n1, n).(*mat.VecDense).ScaleVec(m1.D, m2.B)

	c := mat.NewVecDense(n, nil)
	c.SliceVec(0, n1).(*mat.VecDense).ScaleVec(m2.D, m1.C)
	c.SliceVec(n1, n).(*mat.VecDense).CopyVec(m2.C)

	return &Model{A: a, B: b, C: c, D: m2.D * m1.D}
}

// Order returns the dimension of the state vector.
func (m *Model) Order() int {
	r, _ := m.A.Dims()
	return r
}

// Poles returns the eigenvalues of A.
func (m *Model) Poles() ([]complex128, error) {
	var eig mat.Eigen
	if ok := eig.Factorize(m.A, mat.EigenNone); !ok {
		return nil, ErrEigen
	}

	return eig.Values(nil), nil
}

// Stable reports whether every eigenvalue of A lies strictly inside the
// unit circle.
func (m *Model) Stable() (bool, error) {
	poles, err := m.Poles()
	if err != nil {
		return false, err
	}

	stable := true
	for _, p := range poles {
		if cmplx.Abs(p) >= 1 {
			stable = false
		}
	}

	return stable, nil
}

// Simulate runs the model over input starting from x0 and returns the
// output together with the final state. A nil x0 starts from rest.
func (m *Model) Simulate(input []float64, x0 *mat.VecDense) ([]float64, *mat.VecDense, error) {
	n := m.Order()

	x := mat.NewVecDense(n, nil)
	if x0 != nil {
		if x0.Len() != n {
			return nil, nil, fmt.Errorf("%w: got %d, want %d", ErrStateSize, x0.Len(), n)
		}
		x.CopyVec(x0)
	}

	out := make([]float64, len(input))
	next := mat.NewVecDense(n, nil)

	for i, u := range input {
		out[i] = mat.Dot(m.C, x) + m.D*u

		next.MulVec(m.A, x)
		next.AddScaledVec(next, u, m.B)
		x, next = next, x
	}

	return out, x, nil
}

// SectionState returns the section's delay line as a state vector.
func SectionState(s *biquad.Section) *mat.VecDense {
	st := s.State()
	return mat.NewVecDense(2, []float64{st[0], st[1]})
}

// ChainState stacks the states of every chain section, matching the state
// layout of FromChain.
func ChainState(c *biquad.Chain) *mat.VecDense {
	states := c.State()
	data := make([]float64, 0, 2*len(states))
	for _, st := range states {
		data = append(data, st[0], st[1])
	}

	if len(data) == 0 {
		return nil
	}

	return mat.NewVecDense(len(data), data)
}

// ApplyState writes a state vector back into the chain's sections.
func ApplyState(c *biquad.Chain, x *mat.VecDense) error {
	if x == nil || x.Len() != c.Order() {
		n := 0
		if x != nil {
			n = x.Len()
		}
		return fmt.Errorf("%w: got %d, want %d", ErrStateSize, n, c.Order())
	}

	states := make([][2]float64, c.Len())
	for i := range states {
		states[i] = [2]float64{x.AtVec(2 * i), x.AtVec(2*i + 1)}
	}
	c.SetState(states)

	return nil
}
