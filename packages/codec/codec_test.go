package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestScalarRoundtrips(t *testing.T) {
	t.Run("bool", func(t *testing.T) {
		require.Equal(t, []byte{1}, Bool.Encode(true))
		require.Equal(t, []byte{0}, Bool.Encode(false))
		for _, v := range []bool{true, false} {
			dec, err := Bool.Decode(Bool.Encode(v))
			require.NoError(t, err)
			require.Equal(t, v, dec)
		}
		_, err := Bool.Decode([]byte{2})
		require.Error(t, err)
		_, err = Bool.Decode([]byte{0, 0})
		require.Error(t, err)
	})

	t.Run("uints", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			v8 := rapid.Uint8().Draw(t, "v8")
			require.Equal(t, v8, Uint8.MustDecode(Uint8.Encode(v8)))

			v16 := rapid.Uint16().Draw(t, "v16")
			require.Equal(t, v16, Uint16.MustDecode(Uint16.Encode(v16)))

			v32 := rapid.Uint32().Draw(t, "v32")
			require.Equal(t, v32, Uint32.MustDecode(Uint32.Encode(v32)))

			v64 := rapid.Uint64().Draw(t, "v64")
			require.Equal(t, v64, Uint64.MustDecode(Uint64.Encode(v64)))
		})
	})

	t.Run("little endian layout", func(t *testing.T) {
		require.Equal(t, []byte{0x39, 0x30, 0, 0}, Uint32.Encode(12345))
	})

	t.Run("length checks", func(t *testing.T) {
		_, err := Uint64.Decode([]byte{1, 2, 3})
		require.Error(t, err)
		_, err = Uint16.Decode(nil)
		require.Error(t, err)
	})
}

func TestStringAndBytes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		require.Equal(t, s, String.MustDecode(String.Encode(s)))

		b := rapid.SliceOfBytesMatching(".+").Draw(t, "b")
		require.Equal(t, b, Bytes.MustDecode(Bytes.Encode(b)))
	})
}
