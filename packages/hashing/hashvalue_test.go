package hashing

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestHashDataEmpty(t *testing.T) {
	// well-known blake2b-256 digest of the empty input
	const emptyHex = "0x0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8"
	require.Equal(t, emptyHex, HashData().Hex())
}

func TestHashDataConcatenation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.SliceOfBytesMatching(".*").Draw(t, "a")
		b := rapid.SliceOfBytesMatching(".*").Draw(t, "b")
		require.Equal(t, HashData(append(a[:len(a):len(a)], b...)), HashData(a, b))
	})
}

func TestHashValueFromBytes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOfBytesMatching(".*").Draw(t, "data")
		h := HashData(data)
		back, err := HashValueFromBytes(h.Bytes())
		require.NoError(t, err)
		require.Equal(t, h, back)
	})

	_, err := HashValueFromBytes([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestHashValueFromHex(t *testing.T) {
	h := HashData([]byte("sawfly"))
	back, err := HashValueFromHex(h.Hex())
	require.NoError(t, err)
	require.True(t, h.Equals(back))

	_, err = HashValueFromHex("not hex")
	require.Error(t, err)
}
