package cryptography

import (
	"fmt"
	"math/big"

	rsaDomain "rsa_vault_service/internal/domain/rsa"
	"rsa_vault_service/internal/infrastructure/numtheory"
	"rsa_vault_service/internal/infrastructure/randomness"
)

// maxHardeningAttempts bounds the restarts of the whole generation
// procedure while the hardening step keeps rejecting d.
const maxHardeningAttempts = 32

// generateKeyPair runs the full key generation procedure: two safe primes
// with a guaranteed gap, modulus composition, private exponent via the
// extended Euclidean inverse, hardening of d and the CRT precomputations.
func generateKeyPair(oracle randomness.Oracle, bits int) (*rsaDomain.PrivateKey, *rsaDomain.PublicKey, error) {
	if bits < rsaDomain.MinModulusBits {
		return nil, nil, fmt.Errorf("modulus size %d below minimum %d", bits, rsaDomain.MinModulusBits)
	}

	e := big.NewInt(rsaDomain.PublicExponent)
	one := big.NewInt(1)

	// Fermat factorization succeeds when the primes are close; reject
	// pairs with |p-q| < 2^(bits/4).
	minGap := new(big.Int).Lsh(one, uint(bits/4))

	for attempt := 0; attempt < maxHardeningAttempts; attempt++ {
		p, err := findSeededSafePrime(oracle, bits/2)
		if err != nil {
			return nil, nil, err
		}

		q, err := findDistinctSafePrime(oracle, p, minGap, bits/2)
		if err != nil {
			return nil, nil, err
		}

		n := new(big.Int).Mul(p, q)
		pMinus1 := new(big.Int).Sub(p, one)
		qMinus1 := new(big.Int).Sub(q, one)
		phi := new(big.Int).Mul(pMinus1, qMinus1)

		if numtheory.GCD(e, phi).Cmp(one) != 0 {
			continue
		}

		d, err := numtheory.ModInverse(e, phi)
		if err != nil {
			continue
		}

		if err := checkPrivateExponent(d, n); err != nil {
			continue
		}

		dp := new(big.Int).Mod(d, pMinus1)
		dq := new(big.Int).Mod(d, qMinus1)
		qinv, err := numtheory.ModInverse(q, p)
		if err != nil {
			continue
		}

		private := &rsaDomain.PrivateKey{
			P:    p,
			Q:    q,
			N:    n,
			E:    e,
			D:    d,
			Phi:  phi,
			Dp:   dp,
			Dq:   dq,
			Qinv: qinv,
		}
		return private, private.Public(), nil
	}

	return nil, nil, fmt.Errorf("%w: no acceptable private exponent in %d attempts",
		rsaDomain.ErrKeyHardeningExhausted, maxHardeningAttempts)
}

// findSeededSafePrime draws a fresh oracle seed and searches for a safe
// prime of the given size.
func findSeededSafePrime(oracle randomness.Oracle, bits int) (*big.Int, error) {
	seedBytes, err := oracle.RandomBytes(rsaDomain.SeedSize)
	if err != nil {
		return nil, fmt.Errorf("failed to draw prime seed: %w", err)
	}
	seed := new(big.Int).SetBytes(seedBytes)
	return numtheory.FindSafePrime(seed, bits)
}

// findDistinctSafePrime searches for a second safe prime under fresh
// seeds, rejecting candidates equal to p or closer than minGap.
func findDistinctSafePrime(oracle randomness.Oracle, p, minGap *big.Int, bits int) (*big.Int, error) {
	for attempt := 0; attempt < maxHardeningAttempts; attempt++ {
		q, err := findSeededSafePrime(oracle, bits)
		if err != nil {
			return nil, err
		}

		gap := new(big.Int).Sub(p, q)
		if gap.Abs(gap).Cmp(minGap) >= 0 {
			return q, nil
		}
	}

	return nil, fmt.Errorf("%w: could not separate q from p", rsaDomain.ErrPrimeGenerationExhausted)
}
