package cryptography

import (
	"fmt"
	"math/big"

	rsaDomain "rsa_vault_service/internal/domain/rsa"
	"rsa_vault_service/internal/infrastructure/numtheory"
	"rsa_vault_service/internal/infrastructure/randomness"
)

// blindingBits is the size of the exponent-blinding factor. Deliberately
// small; see the design notes on a production rebuild.
const blindingBits = 16

// publicOp computes m^e mod n. The representative must be below the modulus.
func publicOp(m *big.Int, key *rsaDomain.PublicKey) (*big.Int, error) {
	if m.Cmp(key.N) >= 0 {
		return nil, fmt.Errorf("%w: representative not below modulus", rsaDomain.ErrInputTooLarge)
	}
	return numtheory.ModPow(m, key.E, key.N), nil
}

// privateOpNaive computes c^d mod n directly.
func privateOpNaive(c *big.Int, key *rsaDomain.PrivateKey) *big.Int {
	return numtheory.ModPow(c, key.D, key.N)
}

// privateOpBlinded exponentiates with d + r*phi for a fresh 16-bit r.
// Since d + r*phi = d modulo the order of any base coprime to n, the
// result is unchanged while the exponent's timing profile varies per call.
func privateOpBlinded(c *big.Int, key *rsaDomain.PrivateKey, stream *randomness.BlumBlumShub) *big.Int {
	r := stream.NextBits(blindingBits)

	exp := new(big.Int).Mul(r, key.Phi)
	exp.Add(exp, key.D)

	return numtheory.ModPow(c, exp, key.N)
}

// privateOpCRT splits the exponentiation over the prime factors:
// mp = c^dp mod p, mq = c^dq mod q, recombined through qinv.
func privateOpCRT(c *big.Int, key *rsaDomain.PrivateKey) *big.Int {
	mp := numtheory.ModPow(c, key.Dp, key.P)
	mq := numtheory.ModPow(c, key.Dq, key.Q)
	return crtCombine(mp, mq, key)
}

// privateOpBlindedCRT draws independent non-zero 16-bit factors for each
// prime and exponentiates with dp + rp*(p-1) and dq + rq*(q-1).
func privateOpBlindedCRT(c *big.Int, key *rsaDomain.PrivateKey, stream *randomness.BlumBlumShub) *big.Int {
	rp := stream.NextBits(blindingBits)
	rq := stream.NextBits(blindingBits)

	pMinus1 := new(big.Int).Sub(key.P, big.NewInt(1))
	qMinus1 := new(big.Int).Sub(key.Q, big.NewInt(1))

	dp := new(big.Int).Mul(rp, pMinus1)
	dp.Add(dp, key.Dp)
	dq := new(big.Int).Mul(rq, qMinus1)
	dq.Add(dq, key.Dq)

	mp := numtheory.ModPow(c, dp, key.P)
	mq := numtheory.ModPow(c, dq, key.Q)
	return crtCombine(mp, mq, key)
}

// crtCombine reconstructs m mod pq from mp and mq:
// h = (mp - mq) * qinv mod p, m = mq + h*q.
func crtCombine(mp, mq *big.Int, key *rsaDomain.PrivateKey) *big.Int {
	h := new(big.Int).Sub(mp, mq)
	h.Mul(h, key.Qinv)
	h.Mod(h, key.P)
	if h.Sign() < 0 {
		h.Add(h, key.P)
	}

	m := new(big.Int).Mul(h, key.Q)
	return m.Add(m, mq)
}

// privateOp dispatches on the requested variant.
func privateOp(c *big.Int, key *rsaDomain.PrivateKey, variant rsaDomain.DecryptionVariant, stream *randomness.BlumBlumShub) (*big.Int, error) {
	switch variant {
	case rsaDomain.VariantNaive:
		return privateOpNaive(c, key), nil
	case rsaDomain.VariantBlinded:
		return privateOpBlinded(c, key, stream), nil
	case rsaDomain.VariantCRT:
		return privateOpCRT(c, key), nil
	case rsaDomain.VariantBlindedCRT:
		return privateOpBlindedCRT(c, key, stream), nil
	default:
		return nil, fmt.Errorf("unsupported decryption variant: %s", variant)
	}
}

// intToFixedBytes converts x to a big-endian byte string of exactly length
// bytes, left-padded with zeros. Truncating instead of padding would break
// OAEP and PSS decoding, so a representative that does not fit is an error.
func intToFixedBytes(x *big.Int, length int) ([]byte, error) {
	raw := x.Bytes()
	if len(raw) > length {
		return nil, fmt.Errorf("%w: representative needs %d bytes, block is %d",
			rsaDomain.ErrInputTooLarge, len(raw), length)
	}
	out := make([]byte, length)
	copy(out[length-len(raw):], raw)
	return out, nil
}
