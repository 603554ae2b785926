package control_test

import (
	"fmt"
	"strings"

	"github.com/calebcase/oops"
)

func shortName(i int, data []byte) string {
	sb := &strings.Builder{}

	sb.WriteString(fmt.Sprintf("%02d/", i))

	if len(data) == 0 {
		sb.WriteString("(len=0)")

		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("%02x", data[0]))
	prev := data[0]
	var dots bool

	for i, b := range data[1:] {
		if len(data) > 16 && prev == b {
			if !dots {
				sb.WriteString("..")
				dots = true
			}

			continue
		}

		if (i+1)%2 == 0 {
			sb.WriteString("_")
		}

		sb.WriteString(fmt.Sprintf("%02x", b))
		prev = b
		dots = false
	}

	sb.WriteString(fmt.Sprintf("(len=%d)", len(data)))

	return sb.String()
}

type dataCase struct {
	Input  []byte
	Output []byte
	Mark   error
}

// dataCases covers every data block type and the boundaries between them.
func dataCases() []dataCase {
	return []dataCase{
		{
			Input:  []byte{0b_0000_0000},
			Output: []byte{0b_1000_0000},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  []byte{0b_0111_1111},
			Output: []byte{0b_1111_1111},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  []byte{0b_1000_0000},
			Output: []byte{0b_0100_0000, 0b_1000_0000},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  []byte{0b_0000_0000, 0b_0000_0000},
			Output: []byte{0b_0010_0000, 0b_0000_0000},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  []byte{0b_0001_1111, 0b_1111_1111},
			Output: []byte{0b_0011_1111, 0b_1111_1111},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  []byte{0b_0010_0000, 0b_0000_0000},
			Output: []byte{0b_0100_0001, 0b_0010_0000, 0b_0000_0000},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  []byte{0b_0000_1000, 0b_0000_0000, 0b_0000_0000},
			Output: []byte{0b_0001_1000, 0b_0000_0000, 0b_0000_0000},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  []byte{0b_0001_0000, 0b_0000_0000, 0b_0000_0000},
			Output: []byte{0b_0100_0010, 0b_0001_0000, 0b_0000_0000, 0b_0000_0000},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  make([]byte, 4),
			Output: append([]byte{0b_0100_0011}, make([]byte, 4)...),
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  make([]byte, 16),
			Output: append([]byte{0b_0100_1111}, make([]byte, 16)...),
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  make([]byte, 64),
			Output: append([]byte{0b_0111_1111}, make([]byte, 64)...),
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  make([]byte, 65),
			Output: append([]byte{0b_0000_1000, 0b_0100_0000}, make([]byte, 65)...),
			Mark:   oops.New("unexpected"),
		},
		{
			Input: make([]byte, 1024),
			Output: append(
				[]byte{0b_0000_1001, 0b_0000_0011, 0b_1111_1111},
				make([]byte, 1024)...,
			),
			Mark: oops.New("unexpected"),
		},
	}
}
