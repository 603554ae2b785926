package decimal128

import (
	"fmt"
	"strings"
)

// RoundingMode selects how a result that needs more than 34 significant
// digits (or a narrower integer or binary type) is rounded.
//
// The zero value is TiesToEven. Values outside of the defined set behave as
// TiesToEven.
type RoundingMode int

// Rounding Modes
const (
	TiesToEven     RoundingMode = 0
	TowardNegative RoundingMode = 1
	TowardPositive RoundingMode = 2
	TowardZero     RoundingMode = 3
	TiesToAway     RoundingMode = 4
)

var roundingModeNames = [...]string{
	TiesToEven:     "TiesToEven",
	TowardNegative: "TowardNegative",
	TowardPositive: "TowardPositive",
	TowardZero:     "TowardZero",
	TiesToAway:     "TiesToAway",
}

// Normalize returns m if it is a defined rounding mode and TiesToEven
// otherwise.
func (m RoundingMode) Normalize() RoundingMode {
	if m < TiesToEven || m > TiesToAway {
		return TiesToEven
	}

	return m
}

// String returns the name of the rounding mode. Undefined modes are reported
// by the name of the mode they fall back to.
func (m RoundingMode) String() string {
	return roundingModeNames[m.Normalize()]
}

// ParseRoundingMode returns the rounding mode with the given name. Names are
// matched case insensitively and common aliases are accepted (e.g. "floor"
// for TowardNegative or "half-even" for TiesToEven).
func ParseRoundingMode(name string) (m RoundingMode, err error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(name))

	switch key {
	case "tiestoeven", "halfeven", "even", "":
		return TiesToEven, nil
	case "towardnegative", "floor", "down":
		return TowardNegative, nil
	case "towardpositive", "ceiling", "ceil", "up":
		return TowardPositive, nil
	case "towardzero", "truncate", "trunc", "zero":
		return TowardZero, nil
	case "tiestoaway", "halfup", "away":
		return TiesToAway, nil
	}

	return TiesToEven, Error.New("unknown rounding mode: %q", name)
}

// Flags is a set of IEEE 754-2008 exception flags raised by an operation. The
// bit values match those of the Intel decimal floating point library.
type Flags uint32

// Signaling Flags
const (
	NoFlag       Flags = 0x00
	Invalid      Flags = 0x01
	DivideByZero Flags = 0x04
	Overflow     Flags = 0x08
	Underflow    Flags = 0x10
	Inexact      Flags = 0x20
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{Invalid, "Invalid"},
	{DivideByZero, "DivideByZero"},
	{Overflow, "Overflow"},
	{Underflow, "Underflow"},
	{Inexact, "Inexact"},
}

// Has returns true if every flag in other is also set in f.
func (f Flags) Has(other Flags) bool {
	return f&other == other
}

// String returns the flag names joined by "|" or "NoFlag" when f is empty.
func (f Flags) String() string {
	if f == NoFlag {
		return "NoFlag"
	}

	sb := &strings.Builder{}

	for _, fn := range flagNames {
		if f&fn.flag == 0 {
			continue
		}

		if sb.Len() > 0 {
			sb.WriteString("|")
		}

		sb.WriteString(fn.name)
	}

	if sb.Len() == 0 {
		return fmt.Sprintf("Flags(%#x)", uint32(f))
	}

	return sb.String()
}
