package compare

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/decimal128"
)

func TestInts(t *testing.T) {
	require.Equal(t, 0, Ints(7, 7))
	require.Equal(t, -1, Ints(math.MinInt32, math.MaxInt32))
	require.Equal(t, 1, Ints(1, -1))

	require.Equal(t, 0, Longs(math.MinInt64, math.MinInt64))
	require.Equal(t, -1, Longs(math.MinInt64, math.MaxInt64))
	require.Equal(t, 1, Longs(1, 0))
}

func TestDoubles(t *testing.T) {
	nan := math.NaN()

	type TC struct {
		lhs, rhs float64
		expected int
	}

	tcs := []TC{
		{1, 1, 0},
		{-1, 1, -1},
		{1, -1, 1},
		{0, math.Copysign(0, -1), 0},
		{nan, nan, 0},
		{nan, math.Inf(-1), -1},
		{math.Inf(-1), nan, 1},
		{nan, 0, -1},
		{math.Inf(1), math.MaxFloat64, 1},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprintf("%v,%v", tc.lhs, tc.rhs), func(t *testing.T) {
			require.Equal(t, tc.expected, Doubles(tc.lhs, tc.rhs))
			require.Equal(t, -tc.expected, Doubles(tc.rhs, tc.lhs))
		})
	}
}

func TestLongToDouble(t *testing.T) {
	type TC struct {
		lhs      int64
		rhs      float64
		expected int
	}

	tcs := []TC{
		{0, math.NaN(), 1},
		{math.MinInt64, math.NaN(), 1},
		{1, 1, 0},
		{1, 1.5, -1},
		{2, 1.5, 1},
		{1 << 53, 1 << 53, 0},
		{1<<53 + 1, 1 << 53, 1},
		{-(1<<53 + 1), -(1 << 53), -1},
		{math.MaxInt64, 1 << 63, -1},
		{math.MinInt64, -(1 << 63), 0},
		{math.MinInt64, -(1 << 63) * 2, 1},
		{1 << 60, math.Inf(1), -1},
		{1 << 60, math.Inf(-1), 1},
		{0, math.Inf(1), -1},
		{0, math.Inf(-1), 1},
		{1<<62 + 1, 1 << 62, 1},
		{1 << 62, 1<<62 + 1024, -1},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprintf("%v,%v", tc.lhs, tc.rhs), func(t *testing.T) {
			require.Equal(t, tc.expected, LongToDouble(tc.lhs, tc.rhs))
			require.Equal(t, -tc.expected, DoubleToLong(tc.rhs, tc.lhs))
		})
	}
}

var decimals = []decimal128.Decimal{
	decimal128.PositiveNaN,
	decimal128.NegativeNaN,
	decimal128.NegativeInfinity,
	decimal128.NegativeMin,
	decimal128.MustParse("-1"),
	decimal128.NegativeMax,
	decimal128.MustParse("-0"),
	decimal128.MustParse("0"),
	decimal128.MustParse("0.00"),
	decimal128.PositiveMin,
	decimal128.MustParse("1"),
	decimal128.MustParse("1.0"),
	decimal128.MustParse("1.000000000000000000000000000000001"),
	decimal128.PositiveMax,
	decimal128.PositiveInfinity,
}

func TestDecimals(t *testing.T) {
	for _, a := range decimals {
		require.Equal(t, 0, Decimals(a, a), a.String())

		for _, b := range decimals {
			require.Equal(t, Decimals(a, b), -Decimals(b, a), "%s %s", a, b)
		}
	}

	n := decimal128.MustParse("NaN")

	for _, f := range []string{"-1E+6144", "-0", "0", "12.5", "9E+6144"} {
		d := decimal128.MustParse(f)

		require.Equal(t, -1, Decimals(n, decimal128.NegativeInfinity))
		require.Equal(t, -1, Decimals(decimal128.NegativeInfinity, d))
		require.Equal(t, -1, Decimals(d, decimal128.PositiveInfinity))
		require.Equal(t, -1, Decimals(n, d))
	}

	require.Equal(t, 0, Decimals(decimal128.PositiveNaN, decimal128.NegativeNaN))
	require.Equal(t, 0, Decimals(decimal128.MustParse("1.00"), decimal128.MustParse("1")))
	require.Equal(t, 0, Decimals(decimal128.MustParse("-0"), decimal128.MustParse("0E+10")))
}

func TestMixed(t *testing.T) {
	d := decimal128.MustParse

	require.Equal(t, 0, DecimalToInt(d("2.000"), 2))
	require.Equal(t, 1, DecimalToInt(d("2.5"), 2))
	require.Equal(t, -1, IntToDecimal(2, d("2.5")))
	require.Equal(t, 1, IntToDecimal(math.MinInt32, d("NaN")))

	require.Equal(t, 0, DecimalToLong(d("9223372036854775807"), math.MaxInt64))
	require.Equal(t, 1, DecimalToLong(d("9223372036854775808"), math.MaxInt64))
	require.Equal(t, -1, LongToDecimal(math.MaxInt64, d("9223372036854775808")))
	require.Equal(t, 1, LongToDecimal(0, d("-Inf")))

	require.Equal(t, 0, DecimalToDouble(d("0.1"), 0.1))
	require.Equal(t, 0, DoubleToDecimal(0.1, d("0.1")))
	require.Equal(t, 1, DecimalToDouble(d("0.2"), 0.1))
	require.Equal(t, -1, DoubleToDecimal(math.NaN(), d("-Inf")))
	require.Equal(t, 1, DoubleToDecimal(math.Inf(1), d("9E+6144")))

	// Doubles that differ past 15 significant digits promote to the same
	// decimal.
	require.Equal(t, 0, DecimalToDouble(d("0.1"), 0.10000000000000002))
}
