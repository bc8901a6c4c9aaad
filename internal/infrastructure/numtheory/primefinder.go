package numtheory

import (
	"fmt"
	"math/big"

	rsaDomain "rsa_vault_service/internal/domain/rsa"
	"rsa_vault_service/internal/infrastructure/randomness"
)

// maxPrimeTries bounds the candidate draws per prime search.
const maxPrimeTries = 1000

var (
	three = big.NewInt(3)
	four  = big.NewInt(4)
)

// GeneratePrime3Mod4 draws shaped BBS candidates of the given bit length
// until one passes Miller-Rabin. The BBS shaping already forces the
// 3 mod 4 residue class; the explicit check below guards against a
// misbehaving stream. Each attempt reseeds the stream with seed+attempt.
func GeneratePrime3Mod4(seed *big.Int, bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, fmt.Errorf("prime bit length %d too small", bits)
	}

	for attempt := 0; attempt < maxPrimeTries; attempt++ {
		s := new(big.Int).Add(seed, big.NewInt(int64(attempt)))
		stream, err := randomness.NewBlumBlumShub(s, randomness.StreamPrimeP, randomness.StreamPrimeQ, bits)
		if err != nil {
			return nil, fmt.Errorf("failed to build candidate stream: %w", err)
		}

		candidate := stream.Next()
		if new(big.Int).Mod(candidate, four).Cmp(three) != 0 {
			continue
		}
		if IsPrime(candidate, MillerRabinRounds) {
			return candidate, nil
		}
	}

	return nil, fmt.Errorf("%w: no %d-bit prime congruent to 3 mod 4 after %d candidates",
		rsaDomain.ErrPrimeGenerationExhausted, bits, maxPrimeTries)
}

// FindSafePrime searches for a safe prime q = 2p'+1 of the given bit
// length: it draws primes p' one bit shorter and keeps the first whose
// doubling-plus-one is itself prime. The seed advances by a full
// candidate window between rounds so successive searches do not replay
// the same stream.
func FindSafePrime(seed *big.Int, bits int) (*big.Int, error) {
	current := new(big.Int).Set(seed)

	for attempt := 0; attempt < maxPrimeTries; attempt++ {
		pPrime, err := GeneratePrime3Mod4(current, bits-1)
		if err != nil {
			return nil, err
		}

		// q = 2p' + 1
		q := new(big.Int).Lsh(pPrime, 1)
		q.Add(q, big.NewInt(1))
		if IsPrime(q, MillerRabinRounds) {
			return q, nil
		}

		current.Add(current, big.NewInt(maxPrimeTries))
	}

	return nil, fmt.Errorf("%w: no %d-bit safe prime after %d rounds",
		rsaDomain.ErrPrimeGenerationExhausted, bits, maxPrimeTries)
}
