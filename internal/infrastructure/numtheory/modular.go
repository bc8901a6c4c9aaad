package numtheory

import (
	"fmt"
	"math/big"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// ModPow computes base^exp mod m with the square-and-multiply loop,
// scanning the exponent from least significant bit upward.
func ModPow(base, exp, m *big.Int) *big.Int {
	if m.Cmp(one) == 0 {
		return big.NewInt(0)
	}

	result := big.NewInt(1)
	b := new(big.Int).Mod(base, m)
	e := new(big.Int).Set(exp)

	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			result.Mul(result, b)
			result.Mod(result, m)
		}
		b.Mul(b, b)
		b.Mod(b, m)
		e.Rsh(e, 1)
	}

	return result
}

// ModInverse computes a^-1 mod m with the extended Euclidean algorithm.
// It fails when gcd(a, m) != 1.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	r0 := new(big.Int).Mod(a, m)
	r1 := new(big.Int).Set(m)
	s0 := big.NewInt(1)
	s1 := big.NewInt(0)

	for r1.Sign() != 0 {
		q := new(big.Int).Div(r0, r1)

		r0, r1 = r1, r0.Sub(r0, new(big.Int).Mul(q, r1))
		s0, s1 = s1, s0.Sub(s0, new(big.Int).Mul(q, s1))
	}

	if r0.Cmp(one) != 0 {
		return nil, fmt.Errorf("no modular inverse: gcd is %s", r0.String())
	}

	s0.Mod(s0, m)
	return s0, nil
}

// GCD computes the greatest common divisor with the binary Euclidean
// algorithm. Both inputs must be non-negative.
func GCD(a, b *big.Int) *big.Int {
	u := new(big.Int).Set(a)
	v := new(big.Int).Set(b)

	if u.Sign() == 0 {
		return v
	}
	if v.Sign() == 0 {
		return u
	}

	// Factor out the common power of two.
	var shift uint
	for u.Bit(0) == 0 && v.Bit(0) == 0 {
		u.Rsh(u, 1)
		v.Rsh(v, 1)
		shift++
	}

	for u.Bit(0) == 0 {
		u.Rsh(u, 1)
	}

	for {
		for v.Bit(0) == 0 {
			v.Rsh(v, 1)
		}
		if u.Cmp(v) > 0 {
			u, v = v, u
		}
		v.Sub(v, u)
		if v.Sign() == 0 {
			break
		}
	}

	return u.Lsh(u, shift)
}

// IntegerRoot computes the floor of the k-th root of n by binary search
// over [1, n] with integer exponentiation. Required for the Wiener and
// Boneh-Durfee bounds of the key hardening step.
func IntegerRoot(n *big.Int, k int) *big.Int {
	if n.Sign() <= 0 {
		return big.NewInt(0)
	}

	kBig := big.NewInt(int64(k))
	lo := big.NewInt(1)
	hi := new(big.Int).Set(n)

	for lo.Cmp(hi) < 0 {
		// mid = (lo + hi + 1) / 2 so the search converges on the floor
		mid := new(big.Int).Add(lo, hi)
		mid.Add(mid, one)
		mid.Rsh(mid, 1)

		if new(big.Int).Exp(mid, kBig, nil).Cmp(n) <= 0 {
			lo = mid
		} else {
			hi = mid.Sub(mid, one)
		}
	}

	return lo
}
