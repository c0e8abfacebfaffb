package fft

import "math"

// largestPrimeFactor returns the largest prime factor of n, by trial
// division with 2 and then odd divisors up to the square root.
func largestPrimeFactor(n int) int {
	res := 1

	for n&1 == 0 {
		res = 2
		n >>= 1
	}

	limit := int(math.Sqrt(float64(n) + 0.01))
	for x := 3; x <= limit; x += 2 {
		for n%x == 0 {
			res = x
			n /= x
			limit = int(math.Sqrt(float64(n) + 0.01))
		}
	}

	if n > 1 {
		res = n
	}

	return res
}

// costGuess estimates the relative cost of a length-n transform as n times
// the sum of its prime factors, penalizing factors without a hardcoded
// kernel. Only used to compare the direct path against Bluestein.
func costGuess(n int) float64 {
	const lfp = 1.1 // penalty for non-hardcoded larger factors

	ni := n
	result := 0.0

	for n&1 == 0 {
		result += 2
		n >>= 1
	}

	limit := int(math.Sqrt(float64(n) + 0.01))
	for x := 3; x <= limit; x += 2 {
		for n%x == 0 {
			if x <= 5 {
				result += float64(x)
			} else {
				result += lfp * float64(x)
			}

			n /= x
			limit = int(math.Sqrt(float64(n) + 0.01))
		}
	}

	if n > 1 {
		if n <= 5 {
			result += float64(n)
		} else {
			result += lfp * float64(n)
		}
	}

	return result * float64(ni)
}

// goodSize returns the smallest composite of 2, 3, 5, 7 and 11 that is
// >= n. The bounded brute-force search terminates in microseconds for any
// realistic n.
func goodSize(n int) int {
	if n <= 12 {
		return n
	}

	bestfac := 2 * n
	for f2 := 1; f2 < bestfac; f2 *= 2 {
		for f23 := f2; f23 < bestfac; f23 *= 3 {
			for f235 := f23; f235 < bestfac; f235 *= 5 {
				for f2357 := f235; f2357 < bestfac; f2357 *= 7 {
					for f235711 := f2357; f235711 < bestfac; f235711 *= 11 {
						if f235711 >= n {
							bestfac = f235711
						}
					}
				}
			}
		}
	}

	return bestfac
}
