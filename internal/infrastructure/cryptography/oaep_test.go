//go:build unit
// +build unit

package cryptography

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	rsaDomain "rsa_vault_service/internal/domain/rsa"
	"rsa_vault_service/internal/infrastructure/randomness"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBlockSize = 128 // matches a 1024-bit modulus

func newPaddingStream(t *testing.T, seed int64) *randomness.BlumBlumShub {
	t.Helper()
	stream, err := randomness.NewBlumBlumShub(
		big.NewInt(seed), randomness.StreamPrimeP, randomness.StreamPrimeQ, 8)
	require.NoError(t, err)
	return stream
}

func TestI2osp(t *testing.T) {
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, i2osp(0, 4))
	assert.Equal(t, []byte{0x00, 0x00, 0x01, 0x00}, i2osp(256, 4))
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, i2osp(0xDEADBEEF, 4))

	// round trip over the encoding width
	for _, x := range []uint32{0, 1, 255, 65536, 1<<31 + 7} {
		encoded := i2osp(x, 4)
		decoded := new(big.Int).SetBytes(encoded)
		assert.Equal(t, uint64(x), decoded.Uint64())
	}
}

func TestMgf1(t *testing.T) {
	t.Run("ExactRequestedLength", func(t *testing.T) {
		seed := []byte("mask seed")
		for _, maskLen := range []int{1, 31, 32, 33, 64, 95, 200} {
			assert.Len(t, mgf1(seed, maskLen), maskLen)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		assert.Equal(t, mgf1([]byte("x"), 64), mgf1([]byte("x"), 64))
		assert.NotEqual(t, mgf1([]byte("x"), 64), mgf1([]byte("y"), 64))
	})
}

func TestOAEPRoundTrip(t *testing.T) {
	maxLen := testBlockSize - 2*hLen - 2

	t.Run("TypicalMessage", func(t *testing.T) {
		message := []byte("Message à chiffrer")
		em, err := encodeOAEP(message, nil, testBlockSize, newPaddingStream(t, 101))
		require.NoError(t, err)
		require.Len(t, em, testBlockSize)
		assert.Equal(t, byte(0x00), em[0])

		decoded, _, err := decodeOAEP(em, nil)
		require.NoError(t, err)
		assert.Equal(t, message, decoded)
	})

	t.Run("EmptyMessage", func(t *testing.T) {
		em, err := encodeOAEP([]byte{}, nil, testBlockSize, newPaddingStream(t, 102))
		require.NoError(t, err)

		decoded, _, err := decodeOAEP(em, nil)
		require.NoError(t, err)
		assert.Empty(t, decoded)
	})

	t.Run("MaximumLengthMessage", func(t *testing.T) {
		message := bytes.Repeat([]byte{0xAB}, maxLen)
		em, err := encodeOAEP(message, nil, testBlockSize, newPaddingStream(t, 103))
		require.NoError(t, err)

		decoded, _, err := decodeOAEP(em, nil)
		require.NoError(t, err)
		assert.Equal(t, message, decoded)
	})

	t.Run("OneByteOverCapacity", func(t *testing.T) {
		message := bytes.Repeat([]byte{0xAB}, maxLen+1)
		_, err := encodeOAEP(message, nil, testBlockSize, newPaddingStream(t, 104))
		assert.ErrorIs(t, err, rsaDomain.ErrInputTooLarge)
	})

	t.Run("NonEmptyLabel", func(t *testing.T) {
		label := []byte("key transport")
		em, err := encodeOAEP([]byte("payload"), label, testBlockSize, newPaddingStream(t, 105))
		require.NoError(t, err)

		decoded, _, err := decodeOAEP(em, label)
		require.NoError(t, err)
		assert.Equal(t, []byte("payload"), decoded)

		// decoding under the wrong label must fail
		_, _, err = decodeOAEP(em, []byte("other label"))
		assert.ErrorIs(t, err, rsaDomain.ErrOAEPDecoding)
	})
}

func TestOAEPDecodeFailures(t *testing.T) {
	validBlock := func(t *testing.T) []byte {
		em, err := encodeOAEP([]byte("corpus"), nil, testBlockSize, newPaddingStream(t, 200))
		require.NoError(t, err)
		return em
	}

	t.Run("CorruptedLeadingByte", func(t *testing.T) {
		em := validBlock(t)
		em[0] = 0x01
		_, cause, err := decodeOAEP(em, nil)
		assert.ErrorIs(t, err, rsaDomain.ErrOAEPDecoding)
		assert.Contains(t, cause, "leading byte")
	})

	t.Run("CorruptedMaskedDB", func(t *testing.T) {
		em := validBlock(t)
		em[1+hLen] ^= 0xFF
		_, _, err := decodeOAEP(em, nil)
		assert.ErrorIs(t, err, rsaDomain.ErrOAEPDecoding)
	})

	t.Run("ShortBlock", func(t *testing.T) {
		_, _, err := decodeOAEP(make([]byte, 2*hLen+1), nil)
		assert.ErrorIs(t, err, rsaDomain.ErrOAEPDecoding)
	})

	t.Run("FailuresAreIndistinguishableErrors", func(t *testing.T) {
		em1 := validBlock(t)
		em1[0] = 0x01
		_, _, err1 := decodeOAEP(em1, nil)

		em2 := validBlock(t)
		em2[2] ^= 0x55
		_, _, err2 := decodeOAEP(em2, nil)

		assert.True(t, errors.Is(err1, err2))
	})
}
