package cryptography

import (
	"fmt"
	"math/big"
	"math/bits"

	"rsa_vault_service/internal/infrastructure/numtheory"
)

// lowBitsWindow is the width of the low-entropy tail check and of the
// near-power-of-two exclusion zone.
const lowBitsWindow = 16

// checkPrivateExponent applies the rejection heuristics over d. A non-nil
// error names the failed check; the key generator restarts on any failure.
func checkPrivateExponent(d, n *big.Int) error {
	// Wiener: d must exceed n^(1/4)/3.
	wiener := numtheory.IntegerRoot(n, 4)
	wiener.Div(wiener, big.NewInt(3))
	if d.Cmp(wiener) <= 0 {
		return fmt.Errorf("private exponent within Wiener bound")
	}

	// Lower-bound safety margin: d must exceed 2^(bitLen(n)/2).
	margin := new(big.Int).Lsh(big.NewInt(1), uint(n.BitLen()/2))
	if d.Cmp(margin) <= 0 {
		return fmt.Errorf("private exponent below half-modulus margin")
	}

	// Boneh-Durfee, conservative n^0.3 computed as (n^(1/10))^3.
	tenth := numtheory.IntegerRoot(n, 10)
	bonehDurfee := new(big.Int).Exp(tenth, big.NewInt(3), nil)
	if d.Cmp(bonehDurfee) <= 0 {
		return fmt.Errorf("private exponent within Boneh-Durfee bound")
	}

	binary := d.Text(2)
	if hammingWeight(d)*4 < len(binary) {
		return fmt.Errorf("private exponent has low Hamming weight")
	}

	decimal := d.Text(10)
	if isPalindrome(decimal) || isPalindrome(binary) {
		return fmt.Errorf("private exponent representation is a palindrome")
	}
	if hasTilingPattern(decimal) || hasTilingPattern(binary) {
		return fmt.Errorf("private exponent representation has a repeating pattern")
	}

	if nearPowerOfTwo(d) {
		return fmt.Errorf("private exponent too close to a power of two")
	}

	if uniformLowBits(d) {
		return fmt.Errorf("private exponent has a low-entropy tail")
	}

	return nil
}

// hammingWeight counts the set bits of x.
func hammingWeight(x *big.Int) int {
	weight := 0
	for _, word := range x.Bits() {
		weight += bits.OnesCount(uint(word))
	}
	return weight
}

func isPalindrome(s string) bool {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		if s[i] != s[j] {
			return false
		}
	}
	return true
}

// hasTilingPattern reports whether some block of length >= 2 tiles the
// whole string at least three times starting from position 0.
func hasTilingPattern(s string) bool {
	for patternLen := 2; patternLen <= len(s)/3; patternLen++ {
		if len(s)%patternLen != 0 {
			continue
		}
		pattern := s[:patternLen]
		tiles := true
		for pos := patternLen; pos < len(s); pos += patternLen {
			if s[pos:pos+patternLen] != pattern {
				tiles = false
				break
			}
		}
		if tiles {
			return true
		}
	}
	return false
}

// nearPowerOfTwo reports whether d lies within 2^16 of the nearest power
// of two. Both enclosing powers are checked.
func nearPowerOfTwo(d *big.Int) bool {
	limit := new(big.Int).Lsh(big.NewInt(1), lowBitsWindow)

	for _, k := range []uint{uint(d.BitLen() - 1), uint(d.BitLen())} {
		power := new(big.Int).Lsh(big.NewInt(1), k)
		diff := new(big.Int).Sub(d, power)
		if diff.Abs(diff).Cmp(limit) < 0 {
			return true
		}
	}
	return false
}

// uniformLowBits reports whether the low 16 bits of d are all zero or all one.
func uniformLowBits(d *big.Int) bool {
	mask := new(big.Int).Lsh(big.NewInt(1), lowBitsWindow)
	mask.Sub(mask, big.NewInt(1))

	tail := new(big.Int).And(d, mask)
	return tail.Sign() == 0 || tail.Cmp(mask) == 0
}
