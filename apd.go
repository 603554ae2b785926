package decimal128

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// unrounded performs exact apd arithmetic. Results are rounded into the
// interchange format by fit.
var unrounded = apd.Context{
	Precision:   0,
	MaxExponent: apd.MaxExponent,
	MinExponent: apd.MinExponent,
	Traps:       0,
}

var (
	bigOne = big.NewInt(1)
	bigTen = big.NewInt(10)
)

// apdEngine is the default Engine. Sums, differences, products and
// comparisons of finite operands run on apd; rounding to 34 digits and the
// exponent range of the format are applied by fit.
type apdEngine struct{}

var _ Engine = apdEngine{}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

func numDigits(x *big.Int) int {
	if x.Sign() == 0 {
		return 1
	}

	// Estimate from the bit length and correct by at most one.
	n := int(float64(x.BitLen()) * math.Log10(2))
	if n < 1 {
		n = 1
	}

	abs := new(big.Int).Abs(x)
	if abs.Cmp(pow10(n)) >= 0 {
		n++
	}

	return n
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}

// roundUp decides whether the truncated quotient q (of a non-negative
// coefficient by divisor, leaving the non-zero remainder r) must be
// incremented.
func roundUp(neg bool, q, r, divisor *big.Int, mode RoundingMode) bool {
	mode = mode.Normalize()

	switch mode {
	case TowardZero:
		return false
	case TowardNegative:
		return neg
	case TowardPositive:
		return !neg
	}

	switch new(big.Int).Lsh(r, 1).Cmp(divisor) {
	case 1:
		return true
	case -1:
		return false
	}

	if mode == TiesToAway {
		return true
	}

	return q.Bit(0) == 1
}

// shiftRound divides the non-negative coeff by 10^shift and rounds the
// quotient with mode. inexact reports a discarded non-zero remainder.
func shiftRound(neg bool, coeff *big.Int, shift int, mode RoundingMode) (q *big.Int, inexact bool) {
	if shift <= 0 {
		return new(big.Int).Set(coeff), false
	}

	if coeff.Sign() == 0 {
		return new(big.Int), false
	}

	// Everything is discarded and the remainder is below one half.
	if shift > numDigits(coeff) {
		q = new(big.Int)
		if roundUp(neg, q, coeff, new(big.Int).Lsh(coeff, 2), mode) {
			q.SetInt64(1)
		}

		return q, true
	}

	divisor := pow10(shift)
	q, r := new(big.Int).QuoRem(coeff, divisor, new(big.Int))

	if r.Sign() == 0 {
		return q, false
	}

	if roundUp(neg, q, r, divisor, mode) {
		q.Add(q, bigOne)
	}

	return q, true
}

// fit rounds (-1)^neg * coeff * 10^exp into the interchange format.
func fit(neg bool, coeff *big.Int, exp int, mode RoundingMode) (Decimal, Flags) {
	if coeff.Sign() == 0 {
		d, _ := FromCoefficient(neg, coeff, clamp(exp, MinExponent, MaxExponent))

		return d, NoFlag
	}

	var flags Flags

	digits := numDigits(coeff)
	tiny := exp+digits-1 < MinExponent+MaxDigits-1

	shift := digits - MaxDigits
	if s := MinExponent - exp; s > shift {
		shift = s
	}

	if shift > 0 {
		var inexact bool

		coeff, inexact = shiftRound(neg, coeff, shift, mode)
		exp += shift

		if numDigits(coeff) > MaxDigits {
			coeff.Quo(coeff, bigTen)
			exp++
		}

		if inexact {
			flags |= Inexact

			if tiny {
				flags |= Underflow
			}
		}
	}

	d, ok := FromCoefficient(neg, coeff, exp)
	if !ok {
		return overflowed(neg, mode), flags | Overflow | Inexact
	}

	return d, flags
}

// load returns the apd form of a finite d.
func load(d Decimal) *apd.Decimal {
	neg, coeff, exp, _ := d.Coefficient()

	x := apd.New(0, int32(exp))
	x.Coeff.SetMathBigInt(coeff)
	x.Negative = neg

	return x
}

// store rounds the result of an exact apd operation.
func store(x *apd.Decimal, res apd.Condition, err error, mode RoundingMode) (Decimal, Flags) {
	if err != nil || res&(apd.InvalidOperation|apd.SystemOverflow|apd.SystemUnderflow) != 0 {
		return PositiveNaN, Invalid
	}

	coeff := x.Coeff.MathBigInt()
	coeff.Abs(coeff)

	return fit(x.Negative, coeff, int(x.Exponent), mode)
}

func signaling(d Decimal) bool {
	return d.High&0x7E00_0000_0000_0000 == 0x7E00_0000_0000_0000
}

// propagate returns the quiet NaN produced by an operation with a NaN
// operand.
func propagate(x, y Decimal) (Decimal, Flags) {
	var flags Flags
	if signaling(x) || signaling(y) {
		flags = Invalid
	}

	if x.Form() == NaN {
		return nan(x.signed()), flags
	}

	return nan(y.signed()), flags
}

func (apdEngine) FromString(s string, mode RoundingMode) (Decimal, Flags) {
	neg := false

	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	exp := 0

	if i := strings.IndexAny(s, "eE"); i >= 0 {
		e, err := strconv.ParseInt(s[i+1:], 10, 32)
		if err != nil {
			// Out of range exponents saturate; the result is then an
			// overflow or a total underflow.
			e = 1 << 30
			if strings.HasPrefix(s[i+1:], "-") {
				e = -e
			}
		}

		exp = int(e)
		s = s[:i]
	}

	if i := strings.IndexByte(s, '.'); i >= 0 {
		exp -= len(s) - i - 1
		s = s[:i] + s[i+1:]
	}

	coeff, ok := new(big.Int).SetString(s, 10)
	if !ok || coeff.Sign() < 0 {
		return PositiveNaN, NoFlag
	}

	return fit(neg, coeff, exp, mode)
}

func (apdEngine) ToString(d Decimal) string {
	switch d.Form() {
	case NaN:
		if d.signed() {
			return "-NaN"
		}

		return "+NaN"
	case Infinite:
		if d.signed() {
			return "-Inf"
		}

		return "+Inf"
	}

	neg, coeff, exp, _ := d.Coefficient()

	sb := &strings.Builder{}

	if neg {
		sb.WriteByte('-')
	} else {
		sb.WriteByte('+')
	}

	sb.WriteString(coeff.String())
	sb.WriteByte('E')

	if exp >= 0 {
		sb.WriteByte('+')
	}

	sb.WriteString(strconv.Itoa(exp))

	return sb.String()
}

func (apdEngine) FromInt32(i int32) Decimal {
	return apdEngine{}.FromInt64(int64(i))
}

func (apdEngine) FromInt64(i int64) Decimal {
	coeff := big.NewInt(i)
	neg := coeff.Sign() < 0

	d, _ := FromCoefficient(neg, coeff.Abs(coeff), 0)

	return d
}

func (apdEngine) FromFloat64(f float64, mode RoundingMode) (Decimal, Flags) {
	neg := math.Signbit(f)

	switch {
	case math.IsNaN(f):
		return nan(neg), NoFlag
	case math.IsInf(f, 0):
		return infinity(neg), NoFlag
	case f == 0:
		d, _ := FromCoefficient(neg, new(big.Int), 0)

		return d, NoFlag
	}

	// f = mant * 2^exp exactly.
	bits := math.Float64bits(f)
	mant := bits & (1<<52 - 1)
	exp := int(bits>>52) & 0x7FF

	if exp == 0 {
		exp = 1
	} else {
		mant |= 1 << 52
	}

	exp -= 1075

	coeff := new(big.Int).SetUint64(mant)
	if exp >= 0 {
		return fit(neg, coeff.Lsh(coeff, uint(exp)), 0, mode)
	}

	// mant * 2^exp = mant * 5^-exp * 10^exp
	five := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-exp)), nil)

	return fit(neg, coeff.Mul(coeff, five), exp, mode)
}

func floatMode(mode RoundingMode) big.RoundingMode {
	switch mode.Normalize() {
	case TowardNegative:
		return big.ToNegativeInf
	case TowardPositive:
		return big.ToPositiveInf
	case TowardZero:
		return big.ToZero
	case TiesToAway:
		return big.ToNearestAway
	}

	return big.ToNearestEven
}

func (apdEngine) ToFloat64(d Decimal, mode RoundingMode) (float64, Flags) {
	sign := 1
	if d.signed() {
		sign = -1
	}

	switch d.Form() {
	case NaN:
		var flags Flags
		if signaling(d) {
			flags = Invalid
		}

		return math.Copysign(math.NaN(), float64(sign)), flags
	case Infinite:
		return math.Inf(sign), NoFlag
	}

	neg, coeff, exp, _ := d.Coefficient()
	if coeff.Sign() == 0 {
		return math.Copysign(0, float64(sign)), NoFlag
	}

	if neg {
		coeff.Neg(coeff)
	}

	z := new(big.Float).SetPrec(53).SetMode(floatMode(mode))

	if exp >= 0 {
		z.SetInt(coeff.Mul(coeff, pow10(exp)))
	} else {
		z.Quo(new(big.Float).SetInt(coeff), new(big.Float).SetInt(pow10(-exp)))
	}

	f, acc := z.Float64()

	var flags Flags
	if z.Acc() != big.Exact || acc != big.Exact {
		flags |= Inexact
	}

	switch {
	case math.IsInf(f, 0):
		flags |= Overflow | Inexact

		switch mode.Normalize() {
		case TowardZero:
			f = math.Copysign(math.MaxFloat64, f)
		case TowardNegative:
			if f > 0 {
				f = math.MaxFloat64
			}
		case TowardPositive:
			if f < 0 {
				f = -math.MaxFloat64
			}
		}
	case math.Abs(f) < 0x1p-1022 && flags&Inexact != 0:
		flags |= Underflow
	}

	return f, flags
}

func toInt(d Decimal, mode RoundingMode, exact bool, bits int) (int64, Flags) {
	lo, hi := int64(math.MinInt64), int64(math.MaxInt64)
	if bits == 32 {
		lo, hi = math.MinInt32, math.MaxInt32
	}

	neg, coeff, exp, ok := d.Coefficient()
	if !ok {
		return lo, Invalid
	}

	if coeff.Sign() == 0 {
		return 0, NoFlag
	}

	// At least 10^19.
	if exp+numDigits(coeff)-1 >= 19 {
		return lo, Invalid
	}

	var inexact bool

	if exp >= 0 {
		coeff.Mul(coeff, pow10(exp))
	} else {
		coeff, inexact = shiftRound(neg, coeff, -exp, mode)
	}

	if neg {
		coeff.Neg(coeff)
	}

	if !coeff.IsInt64() || coeff.Int64() < lo || coeff.Int64() > hi {
		return lo, Invalid
	}

	if exact && inexact {
		return coeff.Int64(), Inexact
	}

	return coeff.Int64(), NoFlag
}

func (apdEngine) ToInt32(d Decimal, mode RoundingMode, exact bool) (int32, Flags) {
	i, flags := toInt(d, mode, exact, 32)

	return int32(i), flags
}

func (apdEngine) ToInt64(d Decimal, mode RoundingMode, exact bool) (int64, Flags) {
	return toInt(d, mode, exact, 64)
}

func (e apdEngine) Add(x, y Decimal, mode RoundingMode) (Decimal, Flags) {
	return e.add(x, y, false, mode)
}

func (e apdEngine) Sub(x, y Decimal, mode RoundingMode) (Decimal, Flags) {
	return e.add(x, y, true, mode)
}

func (apdEngine) add(x, y Decimal, negate bool, mode RoundingMode) (Decimal, Flags) {
	if x.Form() == NaN || y.Form() == NaN {
		return propagate(x, y)
	}

	xneg, yneg := x.signed(), y.signed() != negate

	switch xi, yi := x.Form() == Infinite, y.Form() == Infinite; {
	case xi && yi:
		if xneg != yneg {
			return PositiveNaN, Invalid
		}

		return infinity(xneg), NoFlag
	case xi:
		return infinity(xneg), NoFlag
	case yi:
		return infinity(yneg), NoFlag
	}

	a, b := load(x), load(y)
	b.Negative = yneg

	z := new(apd.Decimal)
	res, err := unrounded.Add(z, a, b)

	if err == nil && z.IsZero() {
		// An exact zero sum is -0 only for two negative operands or when
		// rounding toward negative.
		z.Negative = (xneg && yneg) || (xneg != yneg && mode.Normalize() == TowardNegative)
	}

	return store(z, res, err, mode)
}

func (apdEngine) Mul(x, y Decimal, mode RoundingMode) (Decimal, Flags) {
	if x.Form() == NaN || y.Form() == NaN {
		return propagate(x, y)
	}

	neg := x.signed() != y.signed()

	if x.Form() == Infinite || y.Form() == Infinite {
		if isZero(x) || isZero(y) {
			return PositiveNaN, Invalid
		}

		return infinity(neg), NoFlag
	}

	z := new(apd.Decimal)
	res, err := unrounded.Mul(z, load(x), load(y))
	z.Negative = neg

	return store(z, res, err, mode)
}

func (e apdEngine) Div(x, y Decimal, mode RoundingMode) (Decimal, Flags) {
	if x.Form() == NaN || y.Form() == NaN {
		return propagate(x, y)
	}

	neg := x.signed() != y.signed()

	switch xi, yi := x.Form() == Infinite, y.Form() == Infinite; {
	case xi && yi:
		return PositiveNaN, Invalid
	case xi:
		return infinity(neg), NoFlag
	case yi:
		d, _ := FromCoefficient(neg, new(big.Int), MinExponent)

		return d, NoFlag
	}

	_, xc, xe, _ := x.Coefficient()
	_, yc, ye, _ := y.Coefficient()

	if yc.Sign() == 0 {
		if xc.Sign() == 0 {
			return PositiveNaN, Invalid
		}

		return infinity(neg), DivideByZero
	}

	ideal := xe - ye

	if xc.Sign() == 0 {
		return fit(neg, xc, ideal, mode)
	}

	// Scale the dividend so the quotient has at least MaxDigits+1 digits.
	k := MaxDigits + 1 + numDigits(yc) - numDigits(xc)
	if k < 0 {
		k = 0
	}

	q, r := new(big.Int).QuoRem(new(big.Int).Mul(xc, pow10(k)), yc, new(big.Int))
	exp := ideal - k

	if r.Sign() == 0 {
		// Exact quotients take the exponent closest to the ideal one.
		qq, rr := new(big.Int), new(big.Int)
		for exp < ideal {
			qq.QuoRem(q, bigTen, rr)
			if rr.Sign() != 0 {
				break
			}

			q, qq = qq, q
			exp++
		}
	} else {
		// Append a sticky digit so that rounding sees the remainder.
		q.Mul(q, bigTen).Add(q, bigOne)
		exp--
	}

	return fit(neg, q, exp, mode)
}

func (apdEngine) Quantize(x, y Decimal, mode RoundingMode) (Decimal, Flags) {
	if x.Form() == NaN || y.Form() == NaN {
		return propagate(x, y)
	}

	switch xi, yi := x.Form() == Infinite, y.Form() == Infinite; {
	case xi && yi:
		return x, NoFlag
	case xi || yi:
		return PositiveNaN, Invalid
	}

	neg, coeff, xe, _ := x.Coefficient()
	_, _, ye, _ := y.Coefficient()

	var flags Flags

	if ye < xe {
		coeff.Mul(coeff, pow10(xe-ye))
	} else {
		var inexact bool
		if coeff, inexact = shiftRound(neg, coeff, ye-xe, mode); inexact {
			flags |= Inexact
		}
	}

	if numDigits(coeff) > MaxDigits {
		return PositiveNaN, Invalid
	}

	d, ok := FromCoefficient(neg, coeff, ye)
	if !ok {
		return PositiveNaN, Invalid
	}

	return d, flags
}

func (apdEngine) Scalbn(x Decimal, n int, mode RoundingMode) (Decimal, Flags) {
	if x.Form() == NaN {
		return propagate(x, x)
	}

	if x.Form() == Infinite {
		return x, NoFlag
	}

	neg, coeff, exp, _ := x.Coefficient()

	return fit(neg, coeff, exp+clamp(n, -1<<20, 1<<20), mode)
}

// order compares x and y. ok is false when either is NaN.
func order(x, y Decimal) (c int, ok bool) {
	if x.Form() == NaN || y.Form() == NaN {
		return 0, false
	}

	rank := func(d Decimal) int {
		switch {
		case d.Form() != Infinite:
			return 0
		case d.signed():
			return -1
		}

		return 1
	}

	rx, ry := rank(x), rank(y)

	switch {
	case rx < ry:
		return -1, true
	case rx > ry:
		return 1, true
	case rx != 0:
		return 0, true
	}

	return load(x).Cmp(load(y)), true
}

func (apdEngine) Equal(x, y Decimal) bool {
	c, ok := order(x, y)

	return ok && c == 0
}

func (apdEngine) NotEqual(x, y Decimal) bool {
	c, ok := order(x, y)

	return !ok || c != 0
}

func (apdEngine) Greater(x, y Decimal) bool {
	c, ok := order(x, y)

	return ok && c > 0
}

func (apdEngine) GreaterEqual(x, y Decimal) bool {
	c, ok := order(x, y)

	return ok && c >= 0
}

func (apdEngine) Less(x, y Decimal) bool {
	c, ok := order(x, y)

	return ok && c < 0
}

func (apdEngine) LessEqual(x, y Decimal) bool {
	c, ok := order(x, y)

	return ok && c <= 0
}

func (apdEngine) IsZero(d Decimal) bool {
	return isZero(d)
}

func isZero(d Decimal) bool {
	_, coeff, _, ok := d.Coefficient()

	return ok && coeff.Sign() == 0
}

func (apdEngine) IsNaN(d Decimal) bool {
	return d.Form() == NaN
}

func (apdEngine) IsInf(d Decimal) bool {
	return d.Form() == Infinite
}

func (apdEngine) IsSigned(d Decimal) bool {
	return d.signed()
}
