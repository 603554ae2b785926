package compare

import (
	"math"

	"github.com/calebcase/decimal128"
)

// Ints compares two int32 values.
func Ints(lhs, rhs int32) int {
	switch {
	case lhs == rhs:
		return 0
	case lhs < rhs:
		return -1
	}

	return 1
}

// Longs compares two int64 values.
func Longs(lhs, rhs int64) int {
	switch {
	case lhs == rhs:
		return 0
	case lhs < rhs:
		return -1
	}

	return 1
}

// Doubles compares two float64 values. NaN is less than every other value
// and equal to NaN.
func Doubles(lhs, rhs float64) int {
	switch {
	case lhs == rhs:
		return 0
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	}

	// lhs or rhs is NaN.
	if math.IsNaN(lhs) {
		if math.IsNaN(rhs) {
			return 0
		}

		return -1
	}

	return 1
}

// Integers with a magnitude up to 2^53 convert to float64 exactly.
const endOfPreciseDoubles = 1 << 53

// boundOfLongRange is 2^63.
const boundOfLongRange = -float64(math.MinInt64)

// LongToDouble compares an int64 with a float64 exactly.
func LongToDouble(lhs int64, rhs float64) int {
	// Every long is greater than NaN.
	if math.IsNaN(rhs) {
		return 1
	}

	if lhs <= endOfPreciseDoubles && lhs >= -endOfPreciseDoubles {
		return Doubles(float64(lhs), rhs)
	}

	// Doubles outside of the long range (including infinities).
	if rhs >= boundOfLongRange {
		return -1
	}

	if rhs < -boundOfLongRange {
		return 1
	}

	// The integer part of rhs fits in a long. |lhs| > 2^53 so dropping the
	// fraction of rhs cannot change the order.
	return Longs(lhs, int64(rhs))
}

// DoubleToLong compares a float64 with an int64 exactly.
func DoubleToLong(lhs float64, rhs int64) int {
	return -LongToDouble(rhs, lhs)
}

// Decimals compares two decimals with the total order
// NaN < -Inf < finite < +Inf. All NaNs are equal.
func Decimals(lhs, rhs decimal128.Decimal) int {
	switch {
	case lhs.IsGreater(rhs):
		return 1
	case lhs.IsLess(rhs):
		return -1
	case lhs.IsNaN():
		if rhs.IsNaN() {
			return 0
		}

		return -1
	case rhs.IsNaN():
		return 1
	}

	return 0
}

// DecimalToInt compares a decimal with an int32.
func DecimalToInt(lhs decimal128.Decimal, rhs int32) int {
	return Decimals(lhs, decimal128.FromInt32(rhs))
}

// IntToDecimal compares an int32 with a decimal.
func IntToDecimal(lhs int32, rhs decimal128.Decimal) int {
	return -DecimalToInt(rhs, lhs)
}

// DecimalToLong compares a decimal with an int64.
func DecimalToLong(lhs decimal128.Decimal, rhs int64) int {
	return Decimals(lhs, decimal128.FromInt64(rhs))
}

// LongToDecimal compares an int64 with a decimal.
func LongToDecimal(lhs int64, rhs decimal128.Decimal) int {
	return -DecimalToLong(rhs, lhs)
}

// DecimalToDouble compares a decimal with a float64 converted to 15
// significant digits.
func DecimalToDouble(lhs decimal128.Decimal, rhs float64) int {
	return Decimals(lhs, decimal128.FromFloat64(rhs, decimal128.TiesToEven))
}

// DoubleToDecimal compares a float64 converted to 15 significant digits with
// a decimal.
func DoubleToDecimal(lhs float64, rhs decimal128.Decimal) int {
	return -DecimalToDouble(rhs, lhs)
}
