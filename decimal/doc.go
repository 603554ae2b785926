// Package decimal provides the BSV field encoding of decimal128 values.
//
// The equation for a finite decimal number is:
//
//	number = value * 10 ^ scale
//
// Where value is an unscaled integer of up to 34 digits and scale is the base
// 10 exponent of the decimal128 value. For example:
//
//	1.23 = 123 * 10^-2
//
// The sign of zero and the scale are both kept, so 1.20 and 1.2 (or 0 and
// -0) encode differently.
//
// # Encoding
//
// The decimal is laid out first by the unscaled integer value (with sign bit),
// then the scale (with sign bit), and finally the last 2 bits are the scale
// size. The whole is written as a single big-endian integer in the smallest
// control block that holds it.
//
// Decoding reads in the full data, discovers the scale size from the last two
// bits, extracts the scale and then the remaining bits are the value.
//
// All integers in the format are encoded with a trailing sign bit (aka
// zigzag).
//
// The scale size is encoded as two bits:
//
//	| 0 | 1 | Available Scale |
//	|-------|-----------------|
//	| 0 . 0 | No Scale        | Scale of 0.
//	| 0 . 1 | ±2^5 Scale      | 6 bits of scale.
//	| 1 . 0 | ±2^13 Scale     | 14 bits of scale.
//	| 1 . 1 | ±2^21 Scale     | 22 bits of scale.
//	|-------|-----------------|
//	| 0 | 1 |
//
// Every decimal128 exponent fits in the ±2^13 scale. The encoder always picks
// the smallest scale size.
//
// # Special Values
//
// Infinities and NaN are written as an Empty control block followed by a Data
// block holding a code:
//
//	| Code | Value |
//	|------|-------|
//	| 0    | +Inf  |
//	| 1    | -Inf  |
//	| 2    | NaN   |
//	| 3    | -NaN  |
//	|------|-------|
//
// Nullable fields write a Null control block for a missing value.
//
// # Examples
//
// Zero (1 byte)
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//	|---------------|---------------|
//	| 1 | 0 . 0 . 0 . 0 | 0 | 0 . 0 | Data Control Block with value of 0.
//	|---------------|---------------|
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// 0.0001 (2 bytes)
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//	|---------------|---------------|
//	| 0 . 0 . 1 | 0 . 0 . 0 . 1 | 0 | Data + 1 Control Block with value of +1.
//	|-------------------------------|
//	| 0 . 0 . 1 . 0 . 0 . 1 | 0 . 1 | ±2^5 Scale with scale of -4.
//	|---------------|---------------|
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// 1E+6111 (3 bytes)
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//	|---------------|---------------|
//	| 0 . 0 . 0 . 1 | 0 . 0 . 1 . 0 | Data + 2 Control Block with value of +1.
//	| 1 . 0 . 1 . 1 . 1 . 1 . 1 . 0 |
//	| 1 . 1 . 1 . 1 . 1 . 0 | 1 . 0 | ±2^13 Scale with scale of +6111.
//	|---------------|---------------|
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// +Inf (2 bytes)
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//	|---------------|---------------|
//	| 0 . 0 . 0 . 0 . 0 . 0 . 0 . 1 | Empty Control Block.
//	|-------------------------------|
//	| 1 | 0 . 0 . 0 . 0 . 0 . 0 . 0 | Data Control Block with code 0.
//	|---------------|---------------|
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
package decimal
