package rsa

import (
	"fmt"
	"math/big"
)

// PublicKey is an RSA public key (n, e). Immutable after generation.
type PublicKey struct {
	N *big.Int // modulus, product of two safe primes
	E *big.Int // public exponent, fixed at 65537
}

// Size returns the modulus length k in bytes. Ciphertexts, signatures and
// OAEP blocks are all exactly k bytes long.
func (k *PublicKey) Size() int {
	return (k.N.BitLen() + 7) / 8
}

// PrivateKey is an RSA private key together with the CRT precomputations.
// Created in one transaction by the key generator and never mutated.
type PrivateKey struct {
	P    *big.Int // first safe prime
	Q    *big.Int // second safe prime
	N    *big.Int // p * q
	E    *big.Int // public exponent
	D    *big.Int // e^-1 mod phi
	Phi  *big.Int // (p-1)(q-1)
	Dp   *big.Int // d mod (p-1)
	Dq   *big.Int // d mod (q-1)
	Qinv *big.Int // q^-1 mod p
}

// Public returns the public half of the key pair.
func (k *PrivateKey) Public() *PublicKey {
	return &PublicKey{N: k.N, E: k.E}
}

// Size returns the modulus length in bytes.
func (k *PrivateKey) Size() int {
	return (k.N.BitLen() + 7) / 8
}

// Validate checks the arithmetic invariants that tie the key fields together:
// n = p*q, phi = (p-1)(q-1), e*d = 1 mod phi, dp/dq are the CRT exponents and
// qinv inverts q modulo p.
func (k *PrivateKey) Validate() error {
	one := big.NewInt(1)

	if new(big.Int).Mul(k.P, k.Q).Cmp(k.N) != 0 {
		return fmt.Errorf("modulus is not the product of p and q")
	}

	pMinus1 := new(big.Int).Sub(k.P, one)
	qMinus1 := new(big.Int).Sub(k.Q, one)
	if new(big.Int).Mul(pMinus1, qMinus1).Cmp(k.Phi) != 0 {
		return fmt.Errorf("phi does not match (p-1)(q-1)")
	}

	ed := new(big.Int).Mul(k.E, k.D)
	if ed.Mod(ed, k.Phi).Cmp(one) != 0 {
		return fmt.Errorf("e*d is not 1 modulo phi")
	}

	if new(big.Int).Mod(k.D, pMinus1).Cmp(k.Dp) != 0 {
		return fmt.Errorf("dp does not match d mod (p-1)")
	}
	if new(big.Int).Mod(k.D, qMinus1).Cmp(k.Dq) != 0 {
		return fmt.Errorf("dq does not match d mod (q-1)")
	}

	qq := new(big.Int).Mul(k.Q, k.Qinv)
	if qq.Mod(qq, k.P).Cmp(one) != 0 {
		return fmt.Errorf("qinv does not invert q modulo p")
	}
	if k.Qinv.Sign() <= 0 || k.Qinv.Cmp(k.P) >= 0 {
		return fmt.Errorf("qinv out of range")
	}

	return nil
}
