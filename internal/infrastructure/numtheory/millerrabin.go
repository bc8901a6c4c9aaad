package numtheory

import "math/big"

// MillerRabinRounds is the default number of witness rounds.
const MillerRabinRounds = 16

// millerRabinWitnesses are the fixed small-prime witnesses, consumed
// cyclically. With bases drawn from the first nine primes the test is
// deterministic for n below 3,825,123,056,546,413,051; for the larger
// candidates of key generation it is probabilistic.
var millerRabinWitnesses = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23}

// IsPrime reports whether n passes rounds of Miller-Rabin with the fixed
// witness set. Witnesses that are not below n-2 are skipped.
func IsPrime(n *big.Int, rounds int) bool {
	if n.Cmp(two) < 0 {
		return false
	}
	if n.Cmp(two) == 0 || n.Cmp(big.NewInt(3)) == 0 {
		return true
	}
	if n.Bit(0) == 0 {
		return false
	}

	// n-1 = 2^r * d with d odd
	nMinus1 := new(big.Int).Sub(n, one)
	d := new(big.Int).Set(nMinus1)
	r := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		r++
	}

	nMinus2 := new(big.Int).Sub(n, two)
	for i := 0; i < rounds; i++ {
		a := big.NewInt(millerRabinWitnesses[i%len(millerRabinWitnesses)])
		if a.Cmp(nMinus2) >= 0 {
			continue
		}
		if !millerRabinRound(n, d, nMinus1, a, r) {
			return false
		}
	}

	return true
}

// millerRabinRound runs one witness round: x = a^d mod n must reach 1 or
// n-1, possibly after up to r-1 squarings.
func millerRabinRound(n, d, nMinus1, a *big.Int, r int) bool {
	x := ModPow(a, d, n)
	if x.Cmp(one) == 0 || x.Cmp(nMinus1) == 0 {
		return true
	}

	for j := 0; j < r-1; j++ {
		x.Mul(x, x)
		x.Mod(x, n)
		if x.Cmp(nMinus1) == 0 {
			return true
		}
	}

	return false
}
