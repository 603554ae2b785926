// Package control provides the BSV (block separated values) control blocks
// that frame every encoded field.
//
// Control blocks use a prefix coding scheme on their first byte to indicate
// the type of the block (which then further indicates how many bytes the
// block contains). Data and size information is packed into the bits left
// over after the prefix.
//
// # Control Block
//
// This diagram indicates the bits that are fixed (filled in) vs bits that are
// available for encoding data (blanks). Only the first byte is shown.
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type           |                                   |
//	|---------------|---------------||----------------|-----------------------------------|
//	| 1 |                           || Data           | 7 bits of data                    |
//	| 0 . 1 |                       || Data Size      | 1 to 64 bytes of data follow      |
//	| 0 . 0 . 1 |                   || Data + 1       | 5 bits of data and 1 more byte    |
//	| 0 . 0 . 0 . 1 |               || Data + 2       | 4 bits of data and 2 more bytes   |
//	| 0 . 0 . 0 . 0 . 1 |           || Data Size Size | 1 to 8 bytes of size, then data   |
//	| 0 . 0 . 0 . 0 . 0 . 0 . 0 . 1 || Empty          | Empty value                       |
//	| 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 || Null           | Null value (for nullable fields)  |
//	|---------------|---------------||----------------|-----------------------------------|
//
// Sizes are indexed starting at 1 to maximize their range. The remaining
// first byte patterns are reserved and rejected by the decoder.
//
// The encoder always picks the smallest block for the data it is given:
//
//	[]byte{0x05}             -> 1000_0101
//	[]byte{0x80}             -> 0100_0000 1000_0000
//	[]byte{0x10, 0xFF}       -> 0011_0000 1111_1111
//	make([]byte, 65)         -> 0000_1000 0100_0000 [65 bytes]
//
// Empty blocks indicate that the field is set to the empty value. Schema
// processors may give them additional meaning; the decimal package uses an
// Empty block to introduce a special value (an infinity or NaN).
package control
