/*
Package rounding implements rounding of native numeric types to a chosen
precision.
It operates directly on Go's built-in floating-point and fixed-width integer
kinds, without intermediate decimal or string representations.

# Precision

Precision can be expressed three ways:

  - Decimal places: digits kept to the right of the decimal point.
    [Round], [Ceil], [Floor], and [Trunc] accept floating-point values only,
    since integers have no fractional digits.
  - Zeros: the power-of-ten position of rounding relative to the units digit.
    For example, zeros = 2 rounds to the nearest hundred, and zeros = 0 rounds
    to the nearest whole unit.
    [RoundZeros], [CeilZeros], [FloorZeros], and [TruncZeros] accept both
    floating-point and integer values.
  - Significant figures: the total count of meaningful digits retained,
    counted from the most significant digit regardless of the decimal point.
    [RoundSig], [CeilSig], [FloorSig], and [TruncSig] accept both
    floating-point and integer values.

# Supported Types

The supported kinds form a closed set, expressed by the [Number] constraint:

	| Constraint | Type Set                                                 |
	| ---------- | -------------------------------------------------------- |
	| Float      | float32, float64                                         |
	| Integer    | int8, int16, int32, int64, uint8, uint16, uint32, uint64 |
	| Number     | Float or Integer                                         |

Every operation returns the same kind it was given.
Integer values are scaled through a float64 intermediate, so integer inputs
whose magnitude exceeds 2^53 may round to a nearby representable value
whenever a scaled path is taken.

# Rounding Policies

Four policies are provided, each as its own function family:

  - rounding to nearest, with ties away from zero (2.5 rounds to 3,
    -2.5 rounds to -3): [Round], [RoundZeros], [RoundSig].
  - rounding toward positive infinity: [Ceil], [CeilZeros], [CeilSig].
  - rounding toward negative infinity: [Floor], [FloorZeros], [FloorSig].
  - rounding toward zero: [Trunc], [TruncZeros], [TruncSig].

Under negation the directional policies swap roles: the ceiling of a negated
value equals the negated floor of the original.

# Errors

All functions are pure and panic-free, and no function returns an error.
Inputs are not validated; the only failure modes are the silent numeric
degeneracies inherent to finite-precision arithmetic:

  - Overflow.
    Narrowing an overscaled result back to a bounded integer kind follows
    Go's native float-to-integer conversion behavior.
    It is not detected or reported.
  - Precision loss.
    An extremely large precision count drives the scale factor to zero or
    infinity, and the result follows arithmetically, possibly to zero,
    an infinity, or NaN.
  - Non-finite values.
    [NaN] and [infinities] flow through the scale arithmetic unchecked.

These behaviors are deliberate: detecting them would change the observable
contract of the package.

[NaN]: https://en.wikipedia.org/wiki/NaN
[infinities]: https://en.wikipedia.org/wiki/Infinity#Computing
*/
package rounding
