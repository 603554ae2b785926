package integer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/decimal128/control"
	"github.com/calebcase/oops"
)

// large is 2^503 - 1.
var large = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 503), big.NewInt(1))

func TestMarshalUnmarshal(t *testing.T) {
	type TC struct {
		name string
		blk  *Block
		data []byte
	}

	tcs := []TC{
		{
			name: "+0",
			blk:  &Block{Value: []byte{0b0000_0000}},
			data: []byte{0b0000_0000},
		},
		{
			name: "-0",
			blk:  &Block{Value: []byte{0b0000_0000}, Negative: true},
			data: []byte{0b0000_0001},
		},
		{
			name: "+1",
			blk:  &Block{Value: []byte{0b0000_0001}},
			data: []byte{0b0000_0010},
		},
		{
			name: "-1",
			blk:  &Block{Value: []byte{0b0000_0001}, Negative: true},
			data: []byte{0b0000_0011},
		},
		{
			name: "-127",
			blk:  &Block{Value: []byte{0b0111_1111}, Negative: true},
			data: []byte{0b1111_1111},
		},
		{
			name: "+32767",
			blk:  &Block{Value: []byte{0b0111_1111, 0b1111_1111}},
			data: []byte{0b1111_1111, 0b1111_1110},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			t.Run("marshal", func(t *testing.T) {
				data, err := tc.blk.MarshalBinary()
				require.NoError(t, err)
				require.Equal(t, tc.data, data)
			})

			t.Run("unmarshal", func(t *testing.T) {
				blk := &Block{}
				err := blk.UnmarshalBinary(tc.data)
				require.NoError(t, err)
				require.Equal(t, tc.blk, blk)

				// The name must match the value.
				i := new(big.Int)
				err = i.UnmarshalText([]byte(tc.name))
				require.NoError(t, err)
				require.Equal(t, 0, i.Cmp(blk.BigInt()))
			})
		})
	}
}

func TestBigInt(t *testing.T) {
	for _, v := range []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(-1),
		big.NewInt(-6176),
		big.NewInt(6111),
		new(big.Int).Neg(large),
	} {
		t.Run(v.String(), func(t *testing.T) {
			blk := FromBigInt(v)
			require.Equal(t, v.Sign() < 0, blk.Negative)
			require.Equal(t, 0, v.Cmp(blk.BigInt()))

			z := blk.ZigZag()
			require.Equal(t, 0, v.Cmp((&Block{}).SetZigZag(z).BigInt()))
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	type TC struct {
		name   string
		schema Schema
		blk    *Block
		data   []byte
		value  *big.Int
	}

	tcs := []TC{
		{
			name:   "0",
			schema: Schema{},
			blk:    &Block{Value: []byte{0b0000_0000}},
			data:   []byte{0b1000_0000},
			value:  big.NewInt(0),
		},
		{
			name:   "1",
			schema: Schema{},
			blk:    &Block{Value: []byte{0b0000_0001}},
			data:   []byte{0b1000_0001},
			value:  big.NewInt(1),
		},
		{
			name:   "+1",
			schema: Schema{Signed: true},
			blk:    &Block{Value: []byte{0b0000_0001}},
			data:   []byte{0b1000_0010},
			value:  big.NewInt(1),
		},
		{
			name:   "-1",
			schema: Schema{Signed: true},
			blk:    &Block{Value: []byte{0b0000_0001}, Negative: true},
			data:   []byte{0b1000_0011},
			value:  big.NewInt(-1),
		},
		{
			name:   "-63",
			schema: Schema{Signed: true},
			blk:    &Block{Value: []byte{0b0011_1111}, Negative: true},
			data:   []byte{0b1111_1111},
			value:  big.NewInt(-63),
		},
		{
			name:   "+4095",
			schema: Schema{Signed: true},
			blk:    &Block{Value: []byte{0b0000_1111, 0b1111_1111}},
			data:   []byte{0b0011_1111, 0b1111_1110},
			value:  big.NewInt(4095),
		},
		{
			name:   "-524287",
			schema: Schema{Signed: true},
			blk:    &Block{Value: []byte{0b0000_0111, 0b1111_1111, 0b1111_1111}, Negative: true},
			data:   []byte{0b0001_1111, 0b1111_1111, 0b1111_1111},
			value:  big.NewInt(-524287),
		},
		{
			name:   "-(2^503-1)",
			schema: Schema{Signed: true},
			blk:    FromBigInt(new(big.Int).Neg(large)),
			data:   append([]byte{0b0111_1110}, bytes.Repeat([]byte{0b1111_1111}, 63)...),
			value:  new(big.Int).Neg(large),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			buf := bytes.NewBuffer(nil)

			t.Run("encode", func(t *testing.T) {
				enc := NewEncoder(tc.schema, control.NewEncoder(buf))
				err := enc.Encode(tc.blk)
				require.NoError(t, err)
				require.Equal(t, tc.data, buf.Bytes())
			})

			t.Run("decode", func(t *testing.T) {
				dec := NewDecoder(tc.schema, control.NewDecoder(buf))
				blk := &Block{}
				err := dec.Decode(blk)
				require.NoError(t, err)
				require.Equal(t, tc.blk, blk)
				require.Equal(t, 0, tc.value.Cmp(blk.BigInt()))

				err = dec.Decode(blk)
				require.True(t, errors.Is(err, io.EOF))
			})
		})
	}
}

func TestNull(t *testing.T) {
	t.Run("nullable", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		schema := Schema{Signed: true, Nullable: true}

		enc := NewEncoder(schema, control.NewEncoder(buf))
		require.NoError(t, enc.Encode(nil))
		require.Equal(t, []byte{0b0000_0000}, buf.Bytes())

		dec := NewDecoder(schema, control.NewDecoder(buf))
		blk := &Block{Value: []byte{1}}
		require.NoError(t, dec.Decode(blk))
		require.Nil(t, blk.Value)
	})

	t.Run("not nullable", func(t *testing.T) {
		mark := oops.New("unexpected")
		buf := bytes.NewBuffer(nil)

		enc := NewEncoder(Schema{}, control.NewEncoder(buf))
		require.Error(t, enc.Encode(nil), mark)

		dec := NewDecoder(Schema{}, control.NewDecoder(bytes.NewReader([]byte{0b0000_0000})))
		require.Error(t, dec.Decode(&Block{}), mark)
	})

	t.Run("negative unsigned", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)

		enc := NewEncoder(Schema{}, control.NewEncoder(buf))
		require.Error(t, enc.Encode(&Block{Value: []byte{1}, Negative: true}))
	})
}

func BenchmarkEncode(b *testing.B) {
	buf := bytes.NewBuffer(nil)
	enc := NewEncoder(Schema{Signed: true}, control.NewEncoder(buf))

	blk := &Block{
		Value:    []byte{0b0000_0111},
		Negative: true,
	}

	for n := 0; n < b.N; n++ {
		err := enc.Encode(blk)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	data := []byte{
		0b1001_1111,
	}

	blk := Block{}

	for n := 0; n < b.N; n++ {
		dec := NewDecoder(Schema{Signed: true}, control.NewDecoder(bytes.NewReader(data)))

		err := dec.Decode(&blk)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}
