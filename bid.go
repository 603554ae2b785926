package decimal128

import (
	"math/big"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Bit layout of the high word.
const (
	signBit     uint64 = 0x8000_0000_0000_0000
	specialMask uint64 = 0x7C00_0000_0000_0000
	infBits     uint64 = 0x7800_0000_0000_0000
	nanBits     uint64 = 0x7C00_0000_0000_0000
)

// Exponent and coefficient limits of the interchange format.
const (
	MaxDigits   = 34
	MaxExponent = primitive.MaxDecimal128Exp
	MinExponent = primitive.MinDecimal128Exp
)

var maxCoefficient = new(big.Int).Sub(new(big.Int).Exp(big.NewInt(10), big.NewInt(MaxDigits), nil), big.NewInt(1))

// Form classifies a Decimal as finite, infinite or NaN.
type Form uint8

// Forms
const (
	Finite Form = iota
	Infinite
	NaN
)

func (f Form) String() string {
	switch f {
	case Finite:
		return "Finite"
	case Infinite:
		return "Infinite"
	case NaN:
		return "NaN"
	}

	return "Unknown"
}

// Form returns the form of d.
func (d Decimal) Form() Form {
	switch d.High & specialMask {
	case nanBits:
		return NaN
	case infBits:
		return Infinite
	}

	return Finite
}

// signed reports the sign bit. It is set for negative values, negative zero,
// negative infinity and negative NaN.
func (d Decimal) signed() bool {
	return d.High&signBit != 0
}

// Coefficient splits a finite d into its sign, coefficient and exponent so
// that d = (-1)^neg * coeff * 10^exp. Non-canonical coefficients (larger than
// 34 digits) are reported as zero. ok is false for NaN and infinities.
func (d Decimal) Coefficient() (neg bool, coeff *big.Int, exp int, ok bool) {
	neg = d.signed()

	if d.Form() != Finite {
		return neg, nil, 0, false
	}

	coeff, exp, err := primitive.NewDecimal128(d.High, d.Low).BigInt()
	if err != nil {
		return neg, nil, 0, false
	}

	coeff.Abs(coeff)
	if coeff.Cmp(maxCoefficient) > 0 {
		coeff.SetInt64(0)
	}

	return neg, coeff, exp, true
}

// FromCoefficient builds the finite decimal (-1)^neg * coeff * 10^exp. The
// coefficient must not be negative. ok is false when the value cannot be
// represented exactly; exponents above MaxExponent are folded into the
// coefficient when it has room for the trailing zeros.
func FromCoefficient(neg bool, coeff *big.Int, exp int) (d Decimal, ok bool) {
	if coeff.Sign() < 0 {
		return Decimal{}, false
	}

	p, ok := primitive.ParseDecimal128FromBigInt(coeff, exp)
	if !ok {
		return Decimal{}, false
	}

	high, low := p.GetBytes()
	if neg {
		high |= signBit
	}

	return Decimal{Low: low, High: high}, true
}

// Primitive returns d as the BSON driver's decimal128 type.
func (d Decimal) Primitive() primitive.Decimal128 {
	return primitive.NewDecimal128(d.High, d.Low)
}

// FromPrimitive returns the BSON driver's decimal128 value as a Decimal.
func FromPrimitive(p primitive.Decimal128) Decimal {
	high, low := p.GetBytes()

	return Decimal{Low: low, High: high}
}
