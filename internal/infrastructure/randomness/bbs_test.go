//go:build unit
// +build unit

package randomness

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStream(t *testing.T, seed int64, width int) *BlumBlumShub {
	t.Helper()
	stream, err := NewBlumBlumShub(big.NewInt(seed), StreamPrimeP, StreamPrimeQ, width)
	require.NoError(t, err)
	return stream
}

func TestBlumBlumShub(t *testing.T) {
	t.Run("RejectsPrimesNot3Mod4", func(t *testing.T) {
		// 5 = 1 mod 4
		_, err := NewBlumBlumShub(big.NewInt(42), big.NewInt(5), big.NewInt(7), 16)
		assert.Error(t, err)
	})

	t.Run("ZeroSeedFallsBackToOne", func(t *testing.T) {
		m := new(big.Int).Mul(StreamPrimeP, StreamPrimeQ)
		a, err := NewBlumBlumShub(m, StreamPrimeP, StreamPrimeQ, 16)
		require.NoError(t, err)
		b, err := NewBlumBlumShub(big.NewInt(1), StreamPrimeP, StreamPrimeQ, 16)
		require.NoError(t, err)

		// seed mod m == 0 starts from state 1, same as seed 1
		assert.Equal(t, a.NextBits(16), b.NextBits(16))
	})

	t.Run("Deterministic", func(t *testing.T) {
		a := newTestStream(t, 123456789, 32)
		b := newTestStream(t, 123456789, 32)
		for i := 0; i < 4; i++ {
			assert.Equal(t, a.Next(), b.Next())
		}
	})

	t.Run("DistinctSeedsDiverge", func(t *testing.T) {
		a := newTestStream(t, 123456789, 64)
		b := newTestStream(t, 987654321, 64)
		assert.NotEqual(t, a.Next(), b.Next())
	})

	t.Run("ShapedOutput", func(t *testing.T) {
		stream := newTestStream(t, 555, 64)
		four := big.NewInt(4)
		three := big.NewInt(3)
		for i := 0; i < 16; i++ {
			r := stream.NextBits(64)
			assert.Equal(t, 64, r.BitLen(), "top bit must be set")
			assert.Equal(t, uint(1), r.Bit(0), "result must be odd")
			assert.Equal(t, three, new(big.Int).Mod(r, four), "result must be 3 mod 4")
		}
	})

	t.Run("NextBytesLengthAndDeterminism", func(t *testing.T) {
		a := newTestStream(t, 777, 8)
		b := newTestStream(t, 777, 8)
		bufA := a.NextBytes(48)
		bufB := b.NextBytes(48)
		assert.Len(t, bufA, 48)
		assert.Equal(t, bufA, bufB)
	})
}

func TestSystemOracle(t *testing.T) {
	oracle := NewSystemOracle()

	buf, err := oracle.RandomBytes(64)
	assert.NoError(t, err)
	assert.Len(t, buf, 64)

	other, err := oracle.RandomBytes(64)
	assert.NoError(t, err)
	assert.NotEqual(t, buf, other)
}

func TestNewSeededStream(t *testing.T) {
	stream, err := NewSeededStream(NewSystemOracle(), 16)
	assert.NoError(t, err)
	assert.Equal(t, 16, stream.Width())
	assert.Len(t, stream.NextBytes(32), 32)
}
