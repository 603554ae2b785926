package decimal128

import (
	"strconv"
	"strings"
)

// Parse converts s to a decimal, rounding to 34 digits with mode.
//
// Accepted text is an optional sign followed by digits with an optional
// decimal point and an optional exponent ("E" or "e", optional sign,
// digits), or one of "Inf", "Infinity" and "NaN" in any case with an
// optional sign. Parsing never fails: any other text yields NaN.
func Parse(s string, mode RoundingMode) (Decimal, Flags) {
	d, flags, _ := parse(s, mode)

	return d, flags
}

// MustParse is Parse with TiesToEven. It panics if s is not valid decimal
// text.
func MustParse(s string) Decimal {
	d, _, ok := parse(s, TiesToEven)
	if !ok {
		panic(Error.New("invalid decimal: %q", s))
	}

	return d
}

func parse(s string, mode RoundingMode) (d Decimal, flags Flags, ok bool) {
	body, neg := s, false

	if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		neg = body[0] == '-'
		body = body[1:]
	}

	switch strings.ToLower(body) {
	case "inf", "infinity":
		return infinity(neg), NoFlag, true
	case "nan":
		return nan(neg), NoFlag, true
	}

	if !numeric(body) {
		return PositiveNaN, NoFlag, false
	}

	d, flags = engine.FromString(s, mode)

	return d, flags, true
}

// numeric reports whether s is digits with an optional point and an
// optional exponent. At least one digit must precede the exponent.
func numeric(s string) bool {
	digits, point := 0, false

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.' && !point:
			point = true
		case c == 'e' || c == 'E':
			return digits > 0 && exponent(s[i+1:])
		default:
			return false
		}
	}

	return digits > 0
}

func exponent(s string) bool {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}

	if len(s) == 0 {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// String formats d. Values whose leading digit is at 10^12 or above or at
// 10^-4 or below, and values with a positive exponent, are written in
// scientific notation ("1.234567890123E+12", "5E-4", "1.00E+3"). Other
// values are written positionally keeping every coefficient digit
// ("50.0", "0.005"). Special values are "NaN", "Inf" and "-Inf".
func (d Decimal) String() string {
	s := engine.ToString(d)

	e := strings.IndexByte(s, 'E')
	if e < 0 {
		switch {
		case !strings.Contains(s, "Inf"):
			return "NaN"
		case strings.HasPrefix(s, "-"):
			return "-Inf"
		}

		return "Inf"
	}

	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimLeft(s[:e], "+-")

	exp, err := strconv.Atoi(s[e+1:])
	if err != nil {
		return "NaN"
	}

	precision := len(digits)
	sciExp := precision - 1 + exp

	sb := &strings.Builder{}

	if neg {
		sb.WriteByte('-')
	}

	switch {
	case sciExp >= 12 || sciExp <= -4 || exp > 0:
		sb.WriteString(digits[:1])

		if precision > 1 {
			sb.WriteByte('.')
			sb.WriteString(digits[1:])
		}

		sb.WriteByte('E')

		if sciExp > 0 {
			sb.WriteByte('+')
		}

		sb.WriteString(strconv.Itoa(sciExp))
	case exp == 0:
		sb.WriteString(digits)
	default:
		radix := precision + exp

		if radix > 0 {
			sb.WriteString(digits[:radix])
			sb.WriteByte('.')
			sb.WriteString(digits[radix:])

			break
		}

		sb.WriteString("0.")
		sb.WriteString(strings.Repeat("0", -radix))
		sb.WriteString(digits)
	}

	return sb.String()
}
