package cryptography

import (
	"crypto/subtle"
	"fmt"

	rsaDomain "rsa_vault_service/internal/domain/rsa"
	"rsa_vault_service/internal/infrastructure/hashing"
	"rsa_vault_service/internal/infrastructure/randomness"
)

const sLen = rsaDomain.SaltSize

// pssHash computes H = SHA-256(0x00*8 || mHash || salt).
func pssHash(mHash, salt []byte) [hLen]byte {
	mPrime := make([]byte, 0, 8+len(mHash)+len(salt))
	mPrime = append(mPrime, make([]byte, 8)...)
	mPrime = append(mPrime, mHash...)
	mPrime = append(mPrime, salt...)
	return hashing.Sum256(mPrime)
}

// encodePSS builds the EMSA-PSS encoded block maskedDB || H || 0xBC for a
// message hash, drawing the salt from the given stream. emBits is
// bitLen(n) - 1; the block is ceil(emBits/8) bytes.
func encodePSS(mHash []byte, emBits int, stream *randomness.BlumBlumShub) ([]byte, error) {
	emLen := (emBits + 7) / 8
	if emLen < hLen+sLen+2 {
		return nil, fmt.Errorf("modulus too small for PSS: emLen %d below %d", emLen, hLen+sLen+2)
	}

	salt := stream.NextBytes(sLen)
	h := pssHash(mHash, salt)

	em := make([]byte, emLen)
	db := em[:emLen-hLen-1]

	// DB = PS || 0x01 || salt
	db[len(db)-sLen-1] = 0x01
	copy(db[len(db)-sLen:], salt)

	xorBytes(db, mgf1(h[:], len(db)))

	// Clear the bits above emBits in the leftmost byte.
	db[0] &= 0xFF >> (8*emLen - emBits)

	copy(em[emLen-hLen-1:], h[:])
	em[emLen-1] = 0xBC

	return em, nil
}

// verifyPSS checks an EMSA-PSS encoded block against a message hash.
// Any inconsistency yields false; verification never errors.
func verifyPSS(mHash, em []byte, emBits int) bool {
	emLen := (emBits + 7) / 8
	if len(em) != emLen || emLen < hLen+sLen+2 {
		return false
	}
	if subtle.ConstantTimeByteEq(em[emLen-1], 0xBC) == 0 {
		return false
	}

	db := make([]byte, emLen-hLen-1)
	copy(db, em[:emLen-hLen-1])
	h := em[emLen-hLen-1 : emLen-1]

	// The bits above emBits of the leftmost byte must already be zero.
	topMask := byte(0xFF >> (8*emLen - emBits))
	if db[0]&^topMask != 0 {
		return false
	}

	xorBytes(db, mgf1(h, len(db)))
	db[0] &= topMask

	// DB must be PS zeros, then 0x01, then the sLen-byte salt.
	psLen := len(db) - sLen - 1
	if countLeadingZeros(db) != psLen {
		return false
	}
	if subtle.ConstantTimeByteEq(db[psLen], 0x01) == 0 {
		return false
	}
	salt := db[len(db)-sLen:]

	expected := pssHash(mHash, salt)
	return subtle.ConstantTimeCompare(h, expected[:]) == 1
}
