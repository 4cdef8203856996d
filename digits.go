package rounding

import "math"

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]uint64{
	1,                          // 10^0
	10,                         // 10^1
	100,                        // 10^2
	1_000,                      // 10^3
	10_000,                     // 10^4
	100_000,                    // 10^5
	1_000_000,                  // 10^6
	10_000_000,                 // 10^7
	100_000_000,                // 10^8
	1_000_000_000,              // 10^9
	10_000_000_000,             // 10^10
	100_000_000_000,            // 10^11
	1_000_000_000_000,          // 10^12
	10_000_000_000_000,         // 10^13
	100_000_000_000_000,        // 10^14
	1_000_000_000_000_000,      // 10^15
	10_000_000_000_000_000,     // 10^16
	100_000_000_000_000_000,    // 10^17
	1_000_000_000_000_000_000,  // 10^18
	10_000_000_000_000_000_000, // 10^19
}

// digitCount returns the smallest d such that |n| <= 10^d, which is the
// power-of-ten position of the most significant digit of n.
// A value in (1, 10] has 1 digit, a value in (10, 100] has 2 digits, and so
// on: an exact power of ten counts one position lower than its neighbors
// above, so digitCount(100) is 2 while digitCount(101) is 3.
// digitCount assumes that n is not 0.
func digitCount[T Number](n T) int {
	switch f := any(n).(type) {
	case float32:
		return floatDigits(math.Abs(float64(f)))
	case float64:
		return floatDigits(math.Abs(f))
	}
	return intDigits(magnitude(n))
}

// intDigits returns the smallest d such that n <= 10^d.
// Magnitudes above 10^19 have 20 digits.
func intDigits(n uint64) int {
	left, right := 0, len(pow10)
	for left < right {
		mid := (left + right) / 2
		if n <= pow10[mid] {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

// floatDigits returns ceil(log10(f)) for a positive f.
// Unlike intDigits, the result depends on floating-point log10, so a value
// within an ulp of an exact power of ten can count one position off.
func floatDigits(f float64) int {
	return int(math.Ceil(math.Log10(f)))
}

// magnitude returns |n| as a uint64.
// Negating through int64 keeps the minimum value of each signed kind exact.
func magnitude[T Number](n T) uint64 {
	if n < 0 {
		return uint64(-int64(n))
	}
	return uint64(n)
}
