// Package decimal128 provides the IEEE 754-2008 decimal128 floating point
// number in its BID (binary integer decimal) interchange encoding.
//
// The equation for a finite decimal128 number is:
//
//	number = (-1)^sign * coefficient * 10 ^ exponent
//
// Where coefficient is an integer of up to 34 decimal digits and exponent is
// in [-6176, 6111]. For example:
//
//	1.23 = 123 * 10^-2
//
// Numbers with the same value and different exponents (1.2, 1.20, 1.200)
// form a cohort. Operations keep the exponent of their inputs where they can
// so that trailing zeros are neither lost nor fabricated.
//
// # Encoding
//
// The value is held in two 64 bit words, High and Low. The layout of High
// for finite values with a coefficient below 2^113 is:
//
//	| 63 | 62 ... 49 | 48 ... 0           |
//	|----|-----------|--------------------|
//	| S  | Exponent  | Coefficient 112-64 |
//	|----|-----------|--------------------|
//
// The exponent is stored with a bias of 6176. Low holds bits 63-0 of the
// coefficient. Special values set the combination bits 62-58:
//
//	| 62 . 61 . 60 . 59 . 58 |
//	|------------------------|
//	|  1 .  1 .  1 .  1 .  0 | Infinity
//	|  1 .  1 .  1 .  1 .  1 | NaN (bit 57 set for signaling NaN)
//	|------------------------|
//
// # Rounding and Flags
//
// Operations that can lose information take a RoundingMode and return the
// Flags they raised next to the result. Results are never errors: NaN and
// infinities are values, failed integer conversions return the minimum
// integer with Invalid and division by zero returns an infinity with
// DivideByZero.
//
// # Formatting
//
// String writes positional notation when the leading digit is between 10^-3
// and 10^11 and the exponent is not positive, and scientific notation
// otherwise:
//
//	0.05        = 5 * 10^-2
//	5E-4        = 5 * 10^-4
//	1.020101E+18 = 1020101 * 10^12
//
// # Engine
//
// Arithmetic is delegated to an Engine. The default engine computes with
// github.com/cockroachdb/apd and packs results with the BSON driver's
// decimal128 type. SetEngine replaces it.
package decimal128
