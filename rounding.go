package rounding

import "math"

// Float is a constraint that permits the two floating-point kinds.
type Float interface {
	float32 | float64
}

// Integer is a constraint that permits the eight fixed-width integer kinds.
// int, uint, and uintptr are deliberately absent, which keeps the set of
// supported kinds identical on every platform.
type Integer interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64
}

// Number is a constraint that permits any supported numeric kind.
type Number interface {
	Float | Integer
}

// Round returns f rounded to the given number of decimal places,
// with ties rounded away from zero.
// places must not be negative.
//
// Round does not check for overflow: a sufficiently large places drives the
// scale factor to infinity and the result follows arithmetically.
func Round[T Float](f T, places int) T {
	scale := T(math.Pow10(places))
	return T(math.Round(float64(f*scale))) / scale
}

// Ceil returns f rounded toward positive infinity to the given number of
// decimal places.
// places must not be negative.
func Ceil[T Float](f T, places int) T {
	scale := T(math.Pow10(places))
	return T(math.Ceil(float64(f*scale))) / scale
}

// Floor returns f rounded toward negative infinity to the given number of
// decimal places.
// places must not be negative.
func Floor[T Float](f T, places int) T {
	scale := T(math.Pow10(places))
	return T(math.Floor(float64(f*scale))) / scale
}

// Trunc returns f rounded toward zero to the given number of decimal places.
// places must not be negative.
func Trunc[T Float](f T, places int) T {
	scale := T(math.Pow10(places))
	return T(math.Trunc(float64(f*scale))) / scale
}

// RoundZeros returns n rounded to the nearest multiple of 10^zeros,
// with ties rounded away from zero.
// zeros = 0 rounds to the nearest whole unit.
// zeros must not be negative.
//
// Floating-point values are scaled in their own width.
// Integer values are scaled through a float64 intermediate and narrowed back
// to the input kind with Go's native conversion behavior, so a result whose
// magnitude exceeds the kind's range overflows silently.
func RoundZeros[T Number](n T, zeros int) T {
	if isInteger(n) {
		if zeros <= 0 {
			return n
		}
		scale := math.Pow10(-zeros)
		return T(math.Round(float64(n)*scale) / scale)
	}
	scale := T(math.Pow10(-zeros))
	return T(math.Round(float64(n*scale))) / scale
}

// CeilZeros returns n rounded toward positive infinity to a multiple
// of 10^zeros.
// zeros must not be negative.
func CeilZeros[T Number](n T, zeros int) T {
	if isInteger(n) {
		if zeros <= 0 {
			return n
		}
		scale := math.Pow10(-zeros)
		return T(math.Ceil(float64(n)*scale) / scale)
	}
	scale := T(math.Pow10(-zeros))
	return T(math.Ceil(float64(n*scale))) / scale
}

// FloorZeros returns n rounded toward negative infinity to a multiple
// of 10^zeros.
// zeros must not be negative.
func FloorZeros[T Number](n T, zeros int) T {
	if isInteger(n) {
		if zeros <= 0 {
			return n
		}
		scale := math.Pow10(-zeros)
		return T(math.Floor(float64(n)*scale) / scale)
	}
	scale := T(math.Pow10(-zeros))
	return T(math.Floor(float64(n*scale))) / scale
}

// TruncZeros returns n rounded toward zero to a multiple of 10^zeros.
// zeros must not be negative.
func TruncZeros[T Number](n T, zeros int) T {
	if isInteger(n) {
		if zeros <= 0 {
			return n
		}
		scale := math.Pow10(-zeros)
		return T(math.Trunc(float64(n)*scale) / scale)
	}
	scale := T(math.Pow10(-zeros))
	return T(math.Trunc(float64(n*scale))) / scale
}

// RoundSig returns n rounded to the given number of significant figures,
// with ties rounded away from zero.
// If n is zero, it is returned unchanged regardless of figs.
//
// Requesting more significant figures than the kind can represent exactly
// returns a result limited by the kind's own precision.
func RoundSig[T Number](n T, figs int) T {
	if n == 0 {
		return n
	}
	return RoundZeros(n, digitCount(n)-figs)
}

// CeilSig returns n rounded toward positive infinity to the given number of
// significant figures.
// If n is zero, it is returned unchanged regardless of figs.
func CeilSig[T Number](n T, figs int) T {
	if n == 0 {
		return n
	}
	return CeilZeros(n, digitCount(n)-figs)
}

// FloorSig returns n rounded toward negative infinity to the given number of
// significant figures.
// If n is zero, it is returned unchanged regardless of figs.
func FloorSig[T Number](n T, figs int) T {
	if n == 0 {
		return n
	}
	return FloorZeros(n, digitCount(n)-figs)
}

// TruncSig returns n rounded toward zero to the given number of significant
// figures.
// If n is zero, it is returned unchanged regardless of figs.
func TruncSig[T Number](n T, figs int) T {
	if n == 0 {
		return n
	}
	return TruncZeros(n, digitCount(n)-figs)
}

// isInteger returns true if n belongs to one of the integer kinds.
func isInteger[T Number](n T) bool {
	switch any(n).(type) {
	case float32, float64:
		return false
	}
	return true
}
