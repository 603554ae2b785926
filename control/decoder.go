package control

import (
	"errors"
	"io"
	"math/big"

	"github.com/calebcase/oops"
)

// Decoder reads control blocks. Next advances to the following block; the
// current block's data is read with Data.
type Decoder interface {
	Next() (ok bool)
	Err() (err error)

	Type() Type
	Consumed() uint64

	Size() (_ uint64, err error)
	Data() (data []byte, err error)
}

// DefaultMaxSize is the largest data block NewDecoder accepts.
const DefaultMaxSize = 1 << 24

type decoder struct {
	r   io.Reader
	max uint64

	consumed uint64

	value    [1]byte
	t        Type
	finished bool

	size uint64
	data []byte

	err error

	// fatal is set once the input can no longer be read in step with the
	// blocks.
	fatal error
}

// NewDecoder returns a decoder reading from r that accepts data blocks of up
// to DefaultMaxSize bytes.
func NewDecoder(r io.Reader) Decoder {
	return NewDecoderSize(r, DefaultMaxSize)
}

// NewDecoderSize returns a decoder reading from r. Size and Data fail for
// blocks declaring more than maxSize bytes.
func NewDecoderSize(r io.Reader, maxSize uint64) Decoder {
	return &decoder{
		r:   r,
		max: maxSize,
	}
}

// read fills p from the input.
func (d *decoder) read(p []byte) (err error) {
	n, err := io.ReadFull(d.r, p)
	d.consumed += uint64(n)

	if err != nil {
		d.fatal = Error.Wrap(err)

		return d.fatal
	}

	return nil
}

// Next moves to the next block. It returns false at the end of the input or
// on error (see Err). Unread data of the current block is skipped.
func (d *decoder) Next() (ok bool) {
	if d.fatal != nil {
		d.err = d.fatal

		return false
	}

	if !d.finished && d.t != Unknown {
		_, d.err = d.Data()
		if d.err != nil {
			return false
		}
	}

	d.value[0] = 0
	d.t = Unknown
	d.size = 0
	d.data = d.data[:0]
	d.finished = false
	d.err = nil

	_, err := io.ReadFull(d.r, d.value[:])
	if err != nil {
		if !errors.Is(err, io.EOF) {
			d.err = Error.Wrap(err)
		}

		return false
	}

	d.consumed++

	t, ok := Types.Match(d.value[0])
	if !ok {
		d.err = Error.New("unexpected byte: %08b", d.value[0])

		return false
	}

	switch t {
	case Data, Empty, Null:
		d.finished = true
	}

	d.t = t

	return true
}

func (d *decoder) Err() error {
	return d.err
}

func (d *decoder) Type() Type {
	return d.t
}

func (d *decoder) Consumed() uint64 {
	return d.consumed
}

// Size returns the number of data bytes in the current block. If the block
// does not contain data it returns ErrInvalidOperation. Sizes above the
// decoder's limit are an error.
func (d *decoder) Size() (_ uint64, err error) {
	defer func() {
		if err != nil {
			d.size = 0
			d.err = err
		}
	}()

	if d.size != 0 {
		return d.size, nil
	}

	switch d.t {
	case Data:
		d.size = 1
	case DataSize:
		d.size = uint64(d.value[0]&d.t.Mask) + 1
	case Data1:
		d.size = 2
	case Data2:
		d.size = 3
	case DataSizeSize:
		sizeBytes := make([]byte, int(d.value[0]&d.t.Mask)+1)

		err = d.read(sizeBytes)
		if err != nil {
			return 0, err
		}

		size := new(big.Int).SetBytes(sizeBytes)
		size.Add(size, big.NewInt(1))
		if !size.IsUint64() {
			return 0, Error.New("unimplemented: size >= 2^64")
		}

		d.size = size.Uint64()
	default:
		return 0, oops.Trace(ErrInvalidOperation)
	}

	if d.size > d.max {
		d.fatal = Error.New("size %d exceeds limit %d", d.size, d.max)

		return 0, d.fatal
	}

	return d.size, nil
}

// Data reads the data bytes of the current block. If the block does not
// contain data it returns nil and ErrInvalidOperation.
func (d *decoder) Data() (data []byte, err error) {
	defer func() {
		if err != nil {
			d.data = d.data[:0]
			d.err = err
		}
	}()

	if !IsData(d.t) {
		return nil, oops.Trace(ErrInvalidOperation)
	}

	if len(d.data) != 0 {
		return d.data, nil
	}

	size, err := d.Size()
	if err != nil {
		return nil, err
	}

	d.data = make([]byte, size)

	switch d.t {
	case Data:
		d.data[0] = d.value[0] & d.t.Mask
	case Data1, Data2:
		d.data[0] = d.value[0] & d.t.Mask

		err = d.read(d.data[1:])
	default:
		err = d.read(d.data)
	}

	if err != nil {
		return nil, err
	}

	d.finished = true

	return d.data, nil
}
