package cryptography

import (
	"bytes"
	"crypto/subtle"
	"fmt"

	rsaDomain "rsa_vault_service/internal/domain/rsa"
	"rsa_vault_service/internal/infrastructure/hashing"
	"rsa_vault_service/internal/infrastructure/randomness"
)

const hLen = hashing.Sha256Size

// i2osp encodes x as a big-endian unsigned integer in exactly length bytes.
func i2osp(x uint32, length int) []byte {
	out := make([]byte, length)
	for i := length - 1; i >= 0 && x > 0; i-- {
		out[i] = byte(x)
		x >>= 8
	}
	return out
}

// mgf1 expands seed into maskLen bytes by concatenating
// SHA-256(seed || I2OSP(counter, 4)) blocks and truncating.
func mgf1(seed []byte, maskLen int) []byte {
	mask := make([]byte, 0, maskLen+hLen)

	for counter := uint32(0); len(mask) < maskLen; counter++ {
		block := make([]byte, 0, len(seed)+4)
		block = append(block, seed...)
		block = append(block, i2osp(counter, 4)...)

		digest := hashing.Sum256(block)
		mask = append(mask, digest[:]...)
	}

	return mask[:maskLen]
}

// xorBytes xors src into dst in place.
func xorBytes(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

// encodeOAEP builds the k-byte encoded block 0x00 || maskedSeed || maskedDB
// per PKCS #1 v2.1, drawing the hLen-byte seed from the given stream.
func encodeOAEP(message, label []byte, k int, stream *randomness.BlumBlumShub) ([]byte, error) {
	if len(message) > k-2*hLen-2 {
		return nil, fmt.Errorf("%w: %d bytes exceed OAEP capacity %d",
			rsaDomain.ErrInputTooLarge, len(message), k-2*hLen-2)
	}

	lHash := hashing.Sum256(label)

	em := make([]byte, k)
	seed := em[1 : 1+hLen]
	db := em[1+hLen:]

	// DB = lHash || PS || 0x01 || M
	copy(db, lHash[:])
	db[len(db)-len(message)-1] = 0x01
	copy(db[len(db)-len(message):], message)

	copy(seed, stream.NextBytes(hLen))

	xorBytes(db, mgf1(seed, len(db)))
	xorBytes(seed, mgf1(db, hLen))

	return em, nil
}

// decodeOAEP reverses the masking and strips the padding. Every failure
// collapses into the same opaque error; the cause string is only for
// debug-level logging by the caller.
func decodeOAEP(em, label []byte) (message []byte, cause string, err error) {
	if len(em) < 2*hLen+2 {
		return nil, "encoded block shorter than 2*hLen+2", rsaDomain.ErrOAEPDecoding
	}

	leadingOK := subtle.ConstantTimeByteEq(em[0], 0x00) == 1

	seed := make([]byte, hLen)
	copy(seed, em[1:1+hLen])
	db := make([]byte, len(em)-hLen-1)
	copy(db, em[1+hLen:])

	xorBytes(seed, mgf1(db, hLen))
	xorBytes(db, mgf1(seed, len(db)))

	lHash := hashing.Sum256(label)
	hashOK := subtle.ConstantTimeCompare(db[:hLen], lHash[:]) == 1

	// Scan past the zero padding for the 0x01 separator.
	rest := db[hLen:]
	sep := bytes.IndexByte(rest, 0x01)
	sepOK := sep >= 0 && countLeadingZeros(rest) == sep

	switch {
	case !leadingOK:
		return nil, "leading byte is not 0x00", rsaDomain.ErrOAEPDecoding
	case !hashOK:
		return nil, "label hash mismatch", rsaDomain.ErrOAEPDecoding
	case !sepOK:
		return nil, "missing 0x01 separator", rsaDomain.ErrOAEPDecoding
	}

	return rest[sep+1:], "", nil
}

func countLeadingZeros(b []byte) int {
	for i, v := range b {
		if v != 0 {
			return i
		}
	}
	return len(b)
}
