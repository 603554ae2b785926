package decimal128

// Engine is the decimal128 arithmetic kernel. It supplies the IEEE 754-2008
// primitives that the converters, the string codec and the comparators in
// this module are built on.
//
// Implementations must be safe for concurrent use and must only return
// valid decimal128 encodings. Rounding modes passed in may be outside of the
// defined set; implementations treat those as TiesToEven.
type Engine interface {
	// FromString converts the text of a finite decimal number (optional
	// sign, digits with an optional point, optional exponent) into a
	// Decimal, rounding to 34 digits. The text is validated by the caller.
	FromString(s string, mode RoundingMode) (Decimal, Flags)

	// ToString returns the canonical engine string of d: a sign, the
	// coefficient digits without leading zeros, 'E', a sign and the
	// exponent digits (e.g. "+10522E-3"). Special values are returned
	// without an exponent: "+NaN", "-NaN", "+Inf" or "-Inf".
	ToString(d Decimal) string

	FromInt32(i int32) Decimal
	FromInt64(i int64) Decimal

	// FromFloat64 converts a binary64 value, rounding its exact binary
	// value to 34 digits.
	FromFloat64(f float64, mode RoundingMode) (Decimal, Flags)
	ToFloat64(d Decimal, mode RoundingMode) (float64, Flags)

	// ToInt32 and ToInt64 round d to an integer. Values that do not fit
	// (including NaN and infinities) signal Invalid and return the minimum
	// integer. Inexact is only signaled when exact is true.
	ToInt32(d Decimal, mode RoundingMode, exact bool) (int32, Flags)
	ToInt64(d Decimal, mode RoundingMode, exact bool) (int64, Flags)

	Add(x, y Decimal, mode RoundingMode) (Decimal, Flags)
	Sub(x, y Decimal, mode RoundingMode) (Decimal, Flags)
	Mul(x, y Decimal, mode RoundingMode) (Decimal, Flags)
	Div(x, y Decimal, mode RoundingMode) (Decimal, Flags)

	// Quantize returns x rounded to the exponent of y.
	Quantize(x, y Decimal, mode RoundingMode) (Decimal, Flags)

	// Scalbn returns x * 10^n.
	Scalbn(x Decimal, n int, mode RoundingMode) (Decimal, Flags)

	// Quiet comparisons never signal. Any comparison involving NaN is
	// unordered: all predicates are false except NotEqual.
	Equal(x, y Decimal) bool
	NotEqual(x, y Decimal) bool
	Greater(x, y Decimal) bool
	GreaterEqual(x, y Decimal) bool
	Less(x, y Decimal) bool
	LessEqual(x, y Decimal) bool

	IsZero(d Decimal) bool
	IsNaN(d Decimal) bool
	IsInf(d Decimal) bool
	IsSigned(d Decimal) bool
}

var engine Engine = apdEngine{}

// DefaultEngine returns the engine used when none has been set. It is backed
// by github.com/cockroachdb/apd.
func DefaultEngine() Engine {
	return apdEngine{}
}

// SetEngine replaces the kernel used by every Decimal operation and returns
// the previous one. Passing nil restores the default engine.
//
// SetEngine is not synchronized. Call it during initialization before
// Decimal values are shared between goroutines.
func SetEngine(e Engine) (prev Engine) {
	prev = engine

	if e == nil {
		e = DefaultEngine()
	}

	engine = e

	return prev
}
