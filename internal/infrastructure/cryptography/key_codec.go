package cryptography

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	rsaDomain "rsa_vault_service/internal/domain/rsa"
)

// bigIntMarker tags serialized big integers: decimal digits followed by a
// literal "n". Decoders also accept plain decimal strings.
const bigIntMarker = "n"

func tagBigInt(x *big.Int) string {
	return x.Text(10) + bigIntMarker
}

func untagBigInt(s string) (*big.Int, error) {
	trimmed := strings.TrimSuffix(s, bigIntMarker)
	x, ok := new(big.Int).SetString(trimmed, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a tagged integer", rsaDomain.ErrKeyDecoding, s)
	}
	return x, nil
}

// encodeKeyFields serializes a field map as UTF-8 JSON wrapped in base64.
func encodeKeyFields(fields map[string]string) (string, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("failed to marshal key fields: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// decodeKeyFields reverses encodeKeyFields and checks the expected fields
// are all present.
func decodeKeyFields(blob string, expected []string) (map[string]*big.Int, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64: %v", rsaDomain.ErrKeyDecoding, err)
	}

	var fields map[string]string
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", rsaDomain.ErrKeyDecoding, err)
	}

	values := make(map[string]*big.Int, len(expected))
	for _, name := range expected {
		tagged, ok := fields[name]
		if !ok {
			return nil, fmt.Errorf("%w: missing field %q", rsaDomain.ErrKeyDecoding, name)
		}
		value, err := untagBigInt(tagged)
		if err != nil {
			return nil, err
		}
		values[name] = value
	}

	return values, nil
}

// EncodePublicKey serializes a public key into the portable blob format.
func EncodePublicKey(key *rsaDomain.PublicKey) (string, error) {
	return encodeKeyFields(map[string]string{
		"n": tagBigInt(key.N),
		"e": tagBigInt(key.E),
	})
}

// DecodePublicKey parses a public key blob.
func DecodePublicKey(blob string) (*rsaDomain.PublicKey, error) {
	values, err := decodeKeyFields(blob, []string{"n", "e"})
	if err != nil {
		return nil, err
	}
	return &rsaDomain.PublicKey{N: values["n"], E: values["e"]}, nil
}

// EncodePrivateKey serializes a private key into the portable blob format.
func EncodePrivateKey(key *rsaDomain.PrivateKey) (string, error) {
	return encodeKeyFields(map[string]string{
		"p":    tagBigInt(key.P),
		"q":    tagBigInt(key.Q),
		"e":    tagBigInt(key.E),
		"d":    tagBigInt(key.D),
		"n":    tagBigInt(key.N),
		"phi":  tagBigInt(key.Phi),
		"dp":   tagBigInt(key.Dp),
		"dq":   tagBigInt(key.Dq),
		"qinv": tagBigInt(key.Qinv),
	})
}

// DecodePrivateKey parses a private key blob.
func DecodePrivateKey(blob string) (*rsaDomain.PrivateKey, error) {
	values, err := decodeKeyFields(blob, []string{"p", "q", "e", "d", "n", "phi", "dp", "dq", "qinv"})
	if err != nil {
		return nil, err
	}
	return &rsaDomain.PrivateKey{
		P:    values["p"],
		Q:    values["q"],
		E:    values["e"],
		D:    values["d"],
		N:    values["n"],
		Phi:  values["phi"],
		Dp:   values["dp"],
		Dq:   values["dq"],
		Qinv: values["qinv"],
	}, nil
}
