// Package compare orders numbers of different types the way BSON does.
//
// Every function returns -1 when lhs < rhs, 0 when they are equal and 1 when
// lhs > rhs. The result is never anything else, so negating it always
// reverses the comparison.
//
// NaN is ordered below every other number and equal to itself:
//
//	NaN < -Inf < finite numbers < +Inf
//
// Integers and doubles compare exactly, even where the integer cannot be
// represented as a double. Decimals compare with integers exactly. Doubles
// are first converted to a decimal holding 15 significant digits, so doubles
// that only differ beyond the 15th digit compare equal to the same decimal:
//
//	DecimalToDouble(decimal128.MustParse("0.1"), 0.1) == 0
//	DecimalToDouble(decimal128.MustParse("0.1"), 0.10000000000000002) == 0
package compare
