package decimal128

// Decimal is an IEEE 754-2008 decimal128 value in the BID (binary integer
// decimal) interchange encoding. High holds the sign, combination field,
// exponent and the top of the coefficient; Low holds the bottom 64 bits of
// the coefficient.
//
// The zero value is positive zero with an exponent of -6176 (0E-6176).
type Decimal struct {
	Low  uint64
	High uint64
}

// Named values.
var (
	PositiveMin      = Decimal{Low: 0x0000000000000001, High: 0x0000000000000000}
	PositiveMax      = Decimal{Low: 0x378D8E63FFFFFFFF, High: 0x5FFFED09BEAD87C0}
	NegativeMin      = Decimal{Low: 0x378D8E63FFFFFFFF, High: 0xDFFFED09BEAD87C0}
	NegativeMax      = Decimal{Low: 0x0000000000000001, High: 0x8000000000000000}
	PositiveInfinity = Decimal{Low: 0, High: 0x7800000000000000}
	NegativeInfinity = Decimal{Low: 0, High: 0xF800000000000000}
	PositiveNaN      = Decimal{Low: 0, High: 0x7C00000000000000}
	NegativeNaN      = Decimal{Low: 0, High: 0xFC00000000000000}
)

// New returns the decimal with the given raw words.
func New(low, high uint64) Decimal {
	return Decimal{Low: low, High: high}
}

// Value returns the raw words of d.
func (d Decimal) Value() (low, high uint64) {
	return d.Low, d.High
}

// FromInt32 returns i exactly, with an exponent of zero.
func FromInt32(i int32) Decimal {
	return engine.FromInt32(i)
}

// FromInt64 returns i exactly, with an exponent of zero.
func FromInt64(i int64) Decimal {
	return engine.FromInt64(i)
}

// Add returns d + other.
func (d Decimal) Add(other Decimal, mode RoundingMode) (Decimal, Flags) {
	return engine.Add(d, other, mode)
}

// Sub returns d - other.
func (d Decimal) Sub(other Decimal, mode RoundingMode) (Decimal, Flags) {
	return engine.Sub(d, other, mode)
}

// Mul returns d * other.
func (d Decimal) Mul(other Decimal, mode RoundingMode) (Decimal, Flags) {
	return engine.Mul(d, other, mode)
}

// Div returns d / other. Dividing a non-zero finite value by zero returns a
// signed infinity and signals DivideByZero.
func (d Decimal) Div(other Decimal, mode RoundingMode) (Decimal, Flags) {
	return engine.Div(d, other, mode)
}

// Quantize returns d rounded to the exponent of reference. Invalid is
// signaled when the result would need more than 34 digits.
func (d Decimal) Quantize(reference Decimal, mode RoundingMode) (Decimal, Flags) {
	return engine.Quantize(d, reference, mode)
}

// IsEqual reports whether d and other have the same numeric value. Members
// of a cohort are equal and NaN is equal to nothing.
func (d Decimal) IsEqual(other Decimal) bool { return engine.Equal(d, other) }

// IsNotEqual is the negation of IsEqual, so it is true when either side is
// NaN.
func (d Decimal) IsNotEqual(other Decimal) bool { return engine.NotEqual(d, other) }

// IsGreater reports whether d > other. It is false if either side is NaN.
func (d Decimal) IsGreater(other Decimal) bool { return engine.Greater(d, other) }

// IsGreaterEqual reports whether d >= other. It is false if either side is
// NaN.
func (d Decimal) IsGreaterEqual(other Decimal) bool { return engine.GreaterEqual(d, other) }

// IsLess reports whether d < other. It is false if either side is NaN.
func (d Decimal) IsLess(other Decimal) bool { return engine.Less(d, other) }

// IsLessEqual reports whether d <= other. It is false if either side is NaN.
func (d Decimal) IsLessEqual(other Decimal) bool { return engine.LessEqual(d, other) }

// IsZero reports whether d is a zero of either sign and any exponent.
func (d Decimal) IsZero() bool { return engine.IsZero(d) }

// IsNaN reports whether d is a quiet or signaling NaN.
func (d Decimal) IsNaN() bool { return engine.IsNaN(d) }

// IsInfinite reports whether d is +Inf or -Inf.
func (d Decimal) IsInfinite() bool { return engine.IsInf(d) }

// IsNegative reports whether the sign bit of d is set. This includes -0,
// -Inf and -NaN.
func (d Decimal) IsNegative() bool { return engine.IsSigned(d) }

// ToInt rounds d to an int32. Values that cannot be represented return
// math.MinInt32 and signal Invalid.
func (d Decimal) ToInt(mode RoundingMode) (int32, Flags) {
	return engine.ToInt32(d, mode, false)
}

// ToLong rounds d to an int64. Values that cannot be represented return
// math.MinInt64 and signal Invalid.
func (d Decimal) ToLong(mode RoundingMode) (int64, Flags) {
	return engine.ToInt64(d, mode, false)
}

// ToIntExact is ToInt but also signals Inexact when rounding discarded a
// non-zero fraction.
func (d Decimal) ToIntExact(mode RoundingMode) (int32, Flags) {
	return engine.ToInt32(d, mode, true)
}

// ToLongExact is ToLong but also signals Inexact when rounding discarded a
// non-zero fraction.
func (d Decimal) ToLongExact(mode RoundingMode) (int64, Flags) {
	return engine.ToInt64(d, mode, true)
}

// ToDouble returns the binary64 value nearest to d under mode.
func (d Decimal) ToDouble(mode RoundingMode) (float64, Flags) {
	return engine.ToFloat64(d, mode)
}

// IsAndToInt converts d to an int32 and reports whether the conversion was
// exact.
func (d Decimal) IsAndToInt(mode RoundingMode) (int32, bool) {
	i, flags := d.ToIntExact(mode)

	return i, flags == NoFlag
}

// IsAndToLong converts d to an int64 and reports whether the conversion was
// exact.
func (d Decimal) IsAndToLong(mode RoundingMode) (int64, bool) {
	i, flags := d.ToLongExact(mode)

	return i, flags == NoFlag
}

// IsAndToDouble converts d to a float64 and reports whether the conversion
// was exact.
func (d Decimal) IsAndToDouble(mode RoundingMode) (float64, bool) {
	f, flags := d.ToDouble(mode)

	return f, flags == NoFlag
}

func infinity(neg bool) Decimal {
	if neg {
		return NegativeInfinity
	}

	return PositiveInfinity
}

func nan(neg bool) Decimal {
	if neg {
		return NegativeNaN
	}

	return PositiveNaN
}

// overflowed returns the result of an operation whose rounded magnitude is
// above PositiveMax: infinity, or the largest finite value when mode rounds
// toward zero for that sign.
func overflowed(neg bool, mode RoundingMode) Decimal {
	switch mode.Normalize() {
	case TowardZero:
		if neg {
			return NegativeMin
		}

		return PositiveMax
	case TowardNegative:
		if !neg {
			return PositiveMax
		}
	case TowardPositive:
		if neg {
			return NegativeMin
		}
	}

	return infinity(neg)
}
