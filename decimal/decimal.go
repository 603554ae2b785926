package decimal

import (
	"io"
	"math/big"

	"github.com/zeebo/errs"

	"github.com/calebcase/decimal128"
	"github.com/calebcase/decimal128/control"
	"github.com/calebcase/decimal128/integer"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("decimal")

// Scale sizes.
const (
	ScaleNone uint8 = 0b00
	Scale6    uint8 = 0b01
	Scale14   uint8 = 0b10
	Scale22   uint8 = 0b11
)

// scaleBits is the width of the zigzag encoded scale for each scale size.
var scaleBits = [...]uint{
	ScaleNone: 0,
	Scale6:    6,
	Scale14:   14,
	Scale22:   22,
}

// MaxSize is the largest Data block a decimal field uses: a 114 bit zigzag
// coefficient, a 22 bit scale and the two scale size bits.
const MaxSize = 18

// Special value codes written in the Data block that follows an Empty block.
const (
	codePositiveInfinity byte = 0
	codeNegativeInfinity byte = 1
	codePositiveNaN      byte = 2
	codeNegativeNaN      byte = 3
)

// Block is a decimal number split into its unscaled value and its scale
// (base 10 exponent).
type Block struct {
	Value     *integer.Block
	Scale     *integer.Block
	ScaleSize uint8
}

// FromDecimal returns the block for a finite decimal. ok is false for
// infinities and NaN. The sign of zero is kept.
func FromDecimal(d decimal128.Decimal) (b *Block, ok bool) {
	neg, coeff, exp, ok := d.Coefficient()
	if !ok {
		return nil, false
	}

	value := coeff.Bytes()
	if len(value) == 0 {
		value = []byte{0}
	}

	b = &Block{
		Value: &integer.Block{
			Value:    value,
			Negative: neg,
		},
	}

	if exp != 0 {
		b.Scale = integer.FromBigInt(big.NewInt(int64(exp)))
	}

	b.ScaleSize = b.fitScale()

	return b, true
}

// fitScale returns the smallest scale size that holds the scale.
func (b *Block) fitScale() uint8 {
	if b.Scale == nil {
		return ScaleNone
	}

	z := b.Scale.ZigZag()
	if z.Sign() == 0 {
		return ScaleNone
	}

	for size := Scale6; size < Scale22; size++ {
		if uint(z.BitLen()) <= scaleBits[size] {
			return size
		}
	}

	return Scale22
}

// Decimal returns the decimal128 value of the block.
func (b *Block) Decimal() (d decimal128.Decimal, err error) {
	if b.Value == nil {
		return d, Error.New("missing value")
	}

	exp := int64(0)

	if b.Scale != nil {
		scale := b.Scale.BigInt()
		if !scale.IsInt64() {
			return d, Error.New("scale out of range: %s", scale)
		}

		exp = scale.Int64()
	}

	if exp < decimal128.MinExponent-decimal128.MaxDigits || exp > decimal128.MaxExponent+decimal128.MaxDigits {
		return d, Error.New("scale out of range: %d", exp)
	}

	coeff := new(big.Int).SetBytes(b.Value.Value)

	d, ok := decimal128.FromCoefficient(b.Value.Negative, coeff, int(exp))
	if !ok {
		return d, Error.New("not representable as decimal128: %se%d", coeff, exp)
	}

	return d, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The zigzag encoded value is followed by the zigzag encoded scale in the
// number of bits given by the scale size, which takes the final two bits.
func (b Block) MarshalBinary() (data []byte, err error) {
	if b.Value == nil {
		return nil, Error.New("missing value")
	}

	if b.ScaleSize > Scale22 {
		return nil, Error.New("invalid scale size: %d", b.ScaleSize)
	}

	bits := scaleBits[b.ScaleSize]

	n := b.Value.ZigZag()
	n.Lsh(n, bits)

	if b.Scale != nil && bits > 0 {
		z := b.Scale.ZigZag()
		if uint(z.BitLen()) > bits {
			return nil, Error.New("scale does not fit in %d bits", bits)
		}

		n.Or(n, z)
	} else if b.Scale != nil && b.Scale.ZigZag().Sign() != 0 {
		return nil, Error.New("scale without scale size")
	}

	n.Lsh(n, 2)
	n.Or(n, big.NewInt(int64(b.ScaleSize)))

	data = n.Bytes()
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("empty data")
	}

	n := new(big.Int).SetBytes(data)

	b.ScaleSize = uint8(n.Bit(1)<<1 | n.Bit(0))
	n.Rsh(n, 2)

	bits := scaleBits[b.ScaleSize]

	b.Scale = nil
	if bits > 0 {
		mask := new(big.Int).Lsh(big.NewInt(1), bits)
		mask.Sub(mask, big.NewInt(1))

		b.Scale = (&integer.Block{}).SetZigZag(new(big.Int).And(n, mask))
		n.Rsh(n, bits)
	}

	b.Value = (&integer.Block{}).SetZigZag(n)

	return nil
}

// Schema for a decimal field.
type Schema struct {
	Nullable bool
}

// Decoder reads decimal fields.
type Decoder struct {
	schema Schema
	cd     control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd control.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     cd,
	}
}

// next advances the control decoder, returning io.EOF at the end of input.
func (d *Decoder) next() error {
	if d.cd.Next() {
		return nil
	}

	if d.cd.Err() != nil {
		return Error.Wrap(d.cd.Err())
	}

	return io.EOF
}

// Decode reads the next field. valid is false for a Null field. At the end
// of the input it returns io.EOF.
func (d *Decoder) Decode() (v decimal128.Decimal, valid bool, err error) {
	err = d.next()
	if err != nil {
		return v, false, err
	}

	return d.decode()
}

func (d *Decoder) decode() (v decimal128.Decimal, valid bool, err error) {
	defer Error.WrapP(&err)

	switch d.cd.Type() {
	case control.Null:
		if !d.schema.Nullable {
			return v, false, Error.New("unexpected null")
		}

		return v, false, nil
	case control.Empty:
		v, err = d.special()

		return v, err == nil, err
	}

	data, err := d.data(MaxSize)
	if err != nil {
		return v, false, err
	}

	b := &Block{}

	err = b.UnmarshalBinary(data)
	if err != nil {
		return v, false, err
	}

	v, err = b.Decimal()
	if err != nil {
		return v, false, err
	}

	return v, true, nil
}

// data reads the current block after checking its size against limit.
func (d *Decoder) data(limit uint64) ([]byte, error) {
	size, err := d.cd.Size()
	if err != nil {
		return nil, err
	}

	if size > limit {
		return nil, Error.New("data size %d exceeds %d", size, limit)
	}

	return d.cd.Data()
}

// special reads the code of an infinity or NaN after an Empty block.
func (d *Decoder) special() (v decimal128.Decimal, err error) {
	err = d.next()
	if err == io.EOF {
		return v, Error.New("missing special value code")
	}

	if err != nil {
		return v, err
	}

	data, err := d.data(1)
	if err != nil {
		return v, err
	}

	if len(data) != 1 {
		return v, Error.New("invalid special value code: %x", data)
	}

	switch data[0] {
	case codePositiveInfinity:
		return decimal128.PositiveInfinity, nil
	case codeNegativeInfinity:
		return decimal128.NegativeInfinity, nil
	case codePositiveNaN:
		return decimal128.PositiveNaN, nil
	case codeNegativeNaN:
		return decimal128.NegativeNaN, nil
	}

	return v, Error.New("invalid special value code: %d", data[0])
}

// Encoder writes decimal fields.
type Encoder struct {
	schema Schema
	ce     control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce control.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     ce,
	}
}

// Encode writes v. Finite values use the smallest scale size for their
// exponent. NaN payloads and the signaling bit are not kept.
func (e *Encoder) Encode(v decimal128.Decimal) (err error) {
	defer Error.WrapP(&err)

	b, ok := FromDecimal(v)
	if !ok {
		code := codePositiveInfinity

		switch {
		case v.IsNaN() && v.IsNegative():
			code = codeNegativeNaN
		case v.IsNaN():
			code = codePositiveNaN
		case v.IsNegative():
			code = codeNegativeInfinity
		}

		err = e.ce.Empty()
		if err != nil {
			return err
		}

		return e.ce.Data([]byte{code})
	}

	data, err := b.MarshalBinary()
	if err != nil {
		return err
	}

	return e.ce.Data(data)
}

// EncodeNull writes a Null field.
func (e *Encoder) EncodeNull() (err error) {
	defer Error.WrapP(&err)

	if !e.schema.Nullable {
		return Error.New("unexpected null")
	}

	return e.ce.Null()
}
