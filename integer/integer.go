package integer

import (
	"io"
	"math/big"

	"github.com/zeebo/errs"

	"github.com/calebcase/decimal128/control"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("integer")

// Block is an integer split into its magnitude (big-endian) and sign.
// Negative zero is representable.
type Block struct {
	Value    []byte
	Negative bool
}

// FromBigInt returns the block for i.
func FromBigInt(i *big.Int) *Block {
	value := i.Bytes()
	if len(value) == 0 {
		value = []byte{0}
	}

	return &Block{
		Value:    value,
		Negative: i.Sign() < 0,
	}
}

// BigInt returns the value of the block. Negative zero is returned as zero.
func (b Block) BigInt() *big.Int {
	i := new(big.Int).SetBytes(b.Value)
	if b.Negative {
		i.Neg(i)
	}

	return i
}

// ZigZag returns the magnitude shifted left by one with the sign in the
// lowest bit.
func (b Block) ZigZag() *big.Int {
	i := new(big.Int).SetBytes(b.Value)

	i.Lsh(i, 1)
	if b.Negative {
		i.SetBit(i, 0, 1)
	}

	return i
}

// SetZigZag sets the block from a zigzag encoded integer.
func (b *Block) SetZigZag(z *big.Int) *Block {
	b.Negative = z.Bit(0) == 1

	value := new(big.Int).Rsh(z, 1).Bytes()

	// big.Int encodes zero as an empty byte array, but we desire zero to
	// be an actual zero byte.
	if len(value) == 0 {
		value = []byte{0}
	}

	b.Value = value

	return b
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Block) MarshalBinary() (data []byte, err error) {
	data = b.ZigZag().Bytes()
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	b.SetZigZag(new(big.Int).SetBytes(data))

	return nil
}

// Schema for an integer field.
type Schema struct {
	Signed   bool
	Nullable bool
}

// Decoder reads integer fields.
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

// Decode reads the next field into b. A Null field leaves b.Value nil. At
// the end of the input it returns io.EOF.
func (d *Decoder) Decode(b *Block) (err error) {
	if !d.cd.Next() {
		if d.cd.Err() != nil {
			return Error.Wrap(d.cd.Err())
		}

		return io.EOF
	}

	return d.decode(b)
}

func (d *Decoder) decode(b *Block) (err error) {
	defer Error.WrapP(&err)

	if d.cd.Type() == control.Null {
		if !d.schema.Nullable {
			return Error.New("unexpected null")
		}

		b.Value, b.Negative = nil, false

		return nil
	}

	data, err := d.cd.Data()
	if err != nil {
		return err
	}

	if d.schema.Signed {
		return b.UnmarshalBinary(data)
	}

	b.Value = append([]byte(nil), data...)
	b.Negative = false

	return nil
}

// Encoder writes integer fields.
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

// Encode writes b. A nil b (or a nil Value) is written as Null.
func (e *Encoder) Encode(b *Block) (err error) {
	defer Error.WrapP(&err)

	if b == nil || b.Value == nil {
		if !e.schema.Nullable {
			return Error.New("unexpected null")
		}

		return e.ce.Null()
	}

	if !e.schema.Signed && b.Negative {
		return Error.New("negative value for unsigned schema")
	}

	if e.schema.Signed {
		data, err := b.MarshalBinary()
		if err != nil {
			return err
		}

		return e.ce.Data(data)
	}

	data := new(big.Int).SetBytes(b.Value).Bytes()
	if len(data) == 0 {
		data = []byte{0}
	}

	return e.ce.Data(data)
}
