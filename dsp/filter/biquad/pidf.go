package biquad

// PIDF returns the bilinear-transform discretization of a PID controller
// whose derivative term is low-pass filtered with bandwidth n (rad/s):
//
//	C(s) = kp + ki/s + kd*n*s/(s + n)
//
// ts is the sample period in seconds. The result is unvalidated;
// n*ts == -2 divides by zero and yields non-finite coefficients.
func PIDF(kp, ki, kd, n, ts float64) Coefficients {
	nts := n * ts
	bd := nts + 2

	return Coefficients{
		B0: (4*kp + 4*kd*n + 2*ki*ts + 2*kp*nts + ki*nts*ts) / (2 * bd),
		B1: (ki*nts*ts - 4*kp - 4*kd*n) / bd,
		B2: (4*kp + 4*kd*n - 2*ki*ts - 2*kp*nts + ki*nts*ts) / (2 * bd),
		A1: -4 / bd,
		A2: -(nts - 2) / bd,
	}
}

// SetPIDF installs PIDF(kp, ki, kd, n, ts) into the section through Set,
// so the section's reset-on-change policy applies.
func (s *Section) SetPIDF(kp, ki, kd, n, ts float64) {
	s.SetCoefficients(PIDF(kp, ki, kd, n, ts))
}
