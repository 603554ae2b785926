package control_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/decimal128/control"
)

func TestRoundtrip(t *testing.T) {
	t.Run("data", func(t *testing.T) {
		for i, tc := range dataCases() {
			t.Run(shortName(i, tc.Output), func(t *testing.T) {
				output := &bytes.Buffer{}
				e := control.NewEncoder(output)

				err := e.Data(tc.Input)
				require.NoError(t, err, tc.Mark)

				d := control.NewDecoder(output)

				ok := d.Next()
				require.True(t, ok, tc.Mark)

				input, err := d.Data()
				require.NoError(t, err, tc.Mark)
				require.Equal(t, tc.Input, input, tc.Mark)

				ok = d.Next()
				require.False(t, ok, tc.Mark)
				require.NoError(t, d.Err(), tc.Mark)
				require.Equal(t, len(tc.Output), int(d.Consumed()), tc.Mark)
			})
		}
	})

	t.Run("sequence", func(t *testing.T) {
		output := &bytes.Buffer{}
		e := control.NewEncoder(output)

		require.NoError(t, e.Null())
		require.NoError(t, e.Data([]byte{0x01, 0x02, 0x03, 0x04}))
		require.NoError(t, e.Empty())
		require.NoError(t, e.Data([]byte{0x05}))

		d := control.NewDecoder(output)

		types := []control.Type{}
		for d.Next() {
			types = append(types, d.Type())
		}

		require.NoError(t, d.Err())
		require.Equal(t, []control.Type{
			control.Null,
			control.DataSize,
			control.Empty,
			control.Data,
		}, types)
	})
}
