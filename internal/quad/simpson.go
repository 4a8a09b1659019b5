// Package quad provides numerical quadrature for sampled real functions.
package quad

// DefaultIntervals is the subdivision count used for inner products and norms.
const DefaultIntervals = 200

// Simpson approximates the definite integral of f over [a,b] using the
// composite Simpson's rule with n subintervals. n is rounded up to the next
// even number. Non-finite samples propagate into the result; callers treat a
// non-finite integral as a failed computation.
func Simpson(f func(float64) float64, a, b float64, n int) float64 {
	if n < 2 {
		n = 2
	}
	if n%2 != 0 {
		n++
	}

	h := (b - a) / float64(n)
	sum := f(a) + f(b)
	for i := 1; i < n; i++ {
		x := a + float64(i)*h
		if i%2 == 1 {
			sum += 4 * f(x)
		} else {
			sum += 2 * f(x)
		}
	}
	return sum * h / 3
}
