package control

import (
	"io"
	"math/big"
)

// Encoder writes control blocks.
type Encoder interface {
	Data(data []byte) (err error)
	Empty() (err error)
	Null() (err error)
}

type encoder struct {
	w io.Writer
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) Encoder {
	return &encoder{
		w: w,
	}
}

// maxSizeSize is the largest number of bytes a Data Size Size block can use
// for the data size.
var maxSizeSize = int(DataSizeSize.Mask) + 1

// frame returns the control bytes preceding data and the part of data that
// follows them. Leading data bits are folded into the control byte when they
// fit.
func frame(data []byte) (head, body []byte, err error) {
	size := len(data)

	switch {
	case size == 0:
		return nil, nil, Error.New("invalid: size=0")
	case size == 1 && Data.Fits(data[0]):
		return []byte{Data.Prefix | data[0]}, nil, nil
	case size == 2 && Data1.Fits(data[0]):
		return []byte{Data1.Prefix | data[0]}, data[1:], nil
	case size == 3 && Data2.Fits(data[0]):
		return []byte{Data2.Prefix | data[0]}, data[1:], nil
	case size <= int(DataSize.Mask)+1:
		return []byte{DataSize.Prefix | byte(size-1)}, data, nil
	}

	sb := new(big.Int).SetUint64(uint64(size - 1)).Bytes()
	if len(sb) > maxSizeSize {
		return nil, nil, Error.New("unimplemented: size=%d", size)
	}

	head = append([]byte{DataSizeSize.Prefix | byte(len(sb)-1)}, sb...)

	return head, data, nil
}

// Data writes data in the smallest block that can hold it.
func (e *encoder) Data(data []byte) (err error) {
	head, body, err := frame(data)
	if err != nil {
		return err
	}

	_, err = e.w.Write(append(head, body...))
	if err != nil {
		return Error.Wrap(err)
	}

	return nil
}

func (e *encoder) Empty() (err error) {
	_, err = e.w.Write([]byte{Empty.Prefix})
	if err != nil {
		return Error.Wrap(err)
	}

	return nil
}

func (e *encoder) Null() (err error) {
	_, err = e.w.Write([]byte{Null.Prefix})
	if err != nil {
		return Error.Wrap(err)
	}

	return nil
}
