package decimal128

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// countingEngine counts the additions it delegates.
type countingEngine struct {
	Engine

	adds int64
}

func (e *countingEngine) Add(x, y Decimal, mode RoundingMode) (Decimal, Flags) {
	atomic.AddInt64(&e.adds, 1)

	return e.Engine.Add(x, y, mode)
}

func TestSetEngine(t *testing.T) {
	ce := &countingEngine{Engine: DefaultEngine()}

	prev := SetEngine(ce)
	defer SetEngine(prev)

	sum, flags := MustParse("1.5").Add(MustParse("2.5"), TiesToEven)
	require.Equal(t, "4.0", sum.String())
	require.Equal(t, NoFlag, flags)
	require.Equal(t, int64(1), atomic.LoadInt64(&ce.adds))

	// Restoring the default.
	require.Equal(t, ce, SetEngine(nil))
	require.Equal(t, DefaultEngine(), SetEngine(prev))
}

func TestEngineToString(t *testing.T) {
	e := DefaultEngine()

	require.Equal(t, "+10522E-3", e.ToString(MustParse("10.522")))
	require.Equal(t, "-5E+0", e.ToString(MustParse("-5")))
	require.Equal(t, "+1E+3", e.ToString(MustParse("1E3")))
	require.Equal(t, "+NaN", e.ToString(PositiveNaN))
	require.Equal(t, "-NaN", e.ToString(NegativeNaN))
	require.Equal(t, "+Inf", e.ToString(PositiveInfinity))
	require.Equal(t, "-Inf", e.ToString(NegativeInfinity))
}

func TestScalbn(t *testing.T) {
	e := DefaultEngine()

	d, flags := e.Scalbn(quantizerReference, 3, TiesToEven)
	require.Equal(t, "1E-12", d.String())
	require.Equal(t, NoFlag, flags)

	d, flags = e.Scalbn(MustParse("1"), 7000, TiesToEven)
	require.Equal(t, PositiveInfinity, d)
	require.Equal(t, Overflow|Inexact, flags)

	d, _ = e.Scalbn(NegativeInfinity, 5, TiesToEven)
	require.Equal(t, NegativeInfinity, d)
}

func TestSignalingNaN(t *testing.T) {
	snan := Decimal{High: 0x7E00000000000000}
	require.True(t, snan.IsNaN())

	d, flags := snan.Add(FromInt32(1), TiesToEven)
	require.Equal(t, PositiveNaN, d)
	require.Equal(t, Invalid, flags)

	_, flags = snan.ToDouble(TiesToEven)
	require.Equal(t, Invalid, flags)
}
