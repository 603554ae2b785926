package control_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/decimal128/control"
)

func TestEncoder(t *testing.T) {
	t.Run("data", func(t *testing.T) {
		for i, tc := range dataCases() {
			t.Run(shortName(i, tc.Output), func(t *testing.T) {
				output := &bytes.Buffer{}
				e := control.NewEncoder(output)

				err := e.Data(tc.Input)
				require.NoError(t, err, tc.Mark)
				require.Equal(t, len(tc.Output), len(output.Bytes()), tc.Mark)
				require.Equal(t, tc.Output, output.Bytes(), tc.Mark)
			})
		}
	})

	t.Run("zero size", func(t *testing.T) {
		output := &bytes.Buffer{}
		e := control.NewEncoder(output)

		err := e.Data(nil)
		require.Error(t, err)
		require.Equal(t, 0, output.Len())
	})

	t.Run("empty", func(t *testing.T) {
		output := &bytes.Buffer{}
		e := control.NewEncoder(output)

		err := e.Empty()
		require.NoError(t, err)
		require.Equal(t, []byte{0b_0000_0001}, output.Bytes())
	})

	t.Run("null", func(t *testing.T) {
		output := &bytes.Buffer{}
		e := control.NewEncoder(output)

		err := e.Null()
		require.NoError(t, err)
		require.Equal(t, []byte{0b_0000_0000}, output.Bytes())
	})
}
