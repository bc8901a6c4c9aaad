//go:build unit
// +build unit

package cryptography

import (
	"encoding/base64"
	"encoding/json"
	"math/big"
	"testing"

	rsaDomain "rsa_vault_service/internal/domain/rsa"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPrivateKey builds a tiny but arithmetically consistent key
// (p=11, q=13 textbook example) for codec tests.
func testPrivateKey() *rsaDomain.PrivateKey {
	return &rsaDomain.PrivateKey{
		P:    big.NewInt(11),
		Q:    big.NewInt(13),
		N:    big.NewInt(143),
		E:    big.NewInt(7),
		D:    big.NewInt(103),
		Phi:  big.NewInt(120),
		Dp:   big.NewInt(3),
		Dq:   big.NewInt(7),
		Qinv: big.NewInt(6),
	}
}

func TestKeyCodec(t *testing.T) {
	t.Run("PrivateKeyRoundTrip", func(t *testing.T) {
		key := testPrivateKey()
		blob, err := EncodePrivateKey(key)
		require.NoError(t, err)

		decoded, err := DecodePrivateKey(blob)
		require.NoError(t, err)
		assert.Equal(t, key, decoded)
	})

	t.Run("PublicKeyRoundTrip", func(t *testing.T) {
		key := &rsaDomain.PublicKey{N: big.NewInt(143), E: big.NewInt(7)}
		blob, err := EncodePublicKey(key)
		require.NoError(t, err)

		decoded, err := DecodePublicKey(blob)
		require.NoError(t, err)
		assert.Equal(t, key, decoded)
	})

	t.Run("ValuesCarryTheBigIntMarker", func(t *testing.T) {
		blob, err := EncodePublicKey(&rsaDomain.PublicKey{N: big.NewInt(143), E: big.NewInt(7)})
		require.NoError(t, err)

		raw, err := base64.StdEncoding.DecodeString(blob)
		require.NoError(t, err)

		var fields map[string]string
		require.NoError(t, json.Unmarshal(raw, &fields))
		assert.Equal(t, "143n", fields["n"])
		assert.Equal(t, "7n", fields["e"])
	})

	t.Run("AcceptsUntaggedDecimalValues", func(t *testing.T) {
		raw, err := json.Marshal(map[string]string{"n": "143", "e": "7"})
		require.NoError(t, err)
		blob := base64.StdEncoding.EncodeToString(raw)

		decoded, err := DecodePublicKey(blob)
		require.NoError(t, err)
		assert.Equal(t, big.NewInt(143), decoded.N)
		assert.Equal(t, big.NewInt(7), decoded.E)
	})

	t.Run("RejectsInvalidBase64", func(t *testing.T) {
		_, err := DecodePublicKey("not base64!!!")
		assert.ErrorIs(t, err, rsaDomain.ErrKeyDecoding)
	})

	t.Run("RejectsInvalidJSON", func(t *testing.T) {
		blob := base64.StdEncoding.EncodeToString([]byte("{broken"))
		_, err := DecodePublicKey(blob)
		assert.ErrorIs(t, err, rsaDomain.ErrKeyDecoding)
	})

	t.Run("RejectsMissingField", func(t *testing.T) {
		raw, err := json.Marshal(map[string]string{"n": "143n"})
		require.NoError(t, err)
		blob := base64.StdEncoding.EncodeToString(raw)

		_, err = DecodePublicKey(blob)
		assert.ErrorIs(t, err, rsaDomain.ErrKeyDecoding)
	})

	t.Run("RejectsNonNumericValue", func(t *testing.T) {
		raw, err := json.Marshal(map[string]string{"n": "abcn", "e": "7n"})
		require.NoError(t, err)
		blob := base64.StdEncoding.EncodeToString(raw)

		_, err = DecodePublicKey(blob)
		assert.ErrorIs(t, err, rsaDomain.ErrKeyDecoding)
	})
}
