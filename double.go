package decimal128

import (
	"fmt"
	"math"
)

// Coefficient bounds of a decimal holding exactly 15 significant digits.
const (
	min15Digits = 100000000000000
	max15Digits = 999999999999999
)

// quantizerReference is 1E-15.
var quantizerReference = Decimal{Low: 1, High: 0x3022000000000000}

// FromFloat64 converts f to a decimal with exactly 15 significant digits,
// rounded with mode. Zero, infinities and NaN are converted without
// quantizing.
//
// A binary64 value only carries 15 to 17 significant decimal digits. Fixing
// the result at 15 digits keeps values such as 0.1 from turning into the 34
// digit expansion of their binary approximation.
func FromFloat64(f float64, mode RoundingMode) Decimal {
	converted, _ := engine.FromFloat64(f, mode)

	if f == 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return converted
	}

	_, exp := math.Frexp(f)

	// The decimal exponent is estimated as exp*log10(2) with 301/1000 for
	// log10(2). For |f| in [2^(exp-1), 2^exp) the estimate is at most one
	// below the exponent of the leading digit before truncation. Positive
	// estimates are raised by two so that the first quantization needs at
	// most one step down.
	base10Exp := exp * 301 / 1000
	if base10Exp > 0 {
		base10Exp += 2
	}

	d, digits := quantizeTo15Digits(converted, base10Exp, mode)

	// Correct the estimate by the number of digits it was off by. This is a
	// single step of one except right below a power of ten (e.g. 8.0), where
	// the raised estimate is two above.
	for retry := 0; digits != 15 && retry < 2; retry++ {
		base10Exp += digits - 15
		d, digits = quantizeTo15Digits(converted, base10Exp, mode)
	}

	if digits != 15 {
		panic(fmt.Sprintf("decimal128: %v quantized to %d digits", f, digits))
	}

	return d
}

// quantizeTo15Digits quantizes d to the exponent base10Exp-15 and returns
// the result with the number of digits of its coefficient.
func quantizeTo15Digits(d Decimal, base10Exp int, mode RoundingMode) (Decimal, int) {
	quantizer, _ := engine.Scalbn(quantizerReference, base10Exp, mode)
	q, _ := engine.Quantize(d, quantizer, mode)

	_, coeff, _, ok := q.Coefficient()
	if !ok {
		return q, 0
	}

	if coeff.IsUint64() && coeff.Uint64() >= min15Digits && coeff.Uint64() <= max15Digits {
		return q, 15
	}

	return q, numDigits(coeff)
}
