// Package statespace expresses biquad sections and chains as discrete-time
// state-space models
//
//	x[n+1] = A x[n] + B u[n]
//	y[n]   = C x[n] + D u[n]
//
// using gonum matrices. The state vector of a section is its transposed
// direct-form delay line (d0, d1), so a model can be seeded from a live
// section and continue exactly where the section left off. The eigenvalues
// of A are the poles of the cascade.
package statespace
