package randomness

import (
	"fmt"
	"math/big"

	rsaDomain "rsa_vault_service/internal/domain/rsa"
)

// Stream primes for internal BBS instances. These only drive the
// pseudo-random stream; they are unrelated to the RSA modulus.
var (
	StreamPrimeP = big.NewInt(499)
	StreamPrimeQ = big.NewInt(547)
)

var (
	one   = big.NewInt(1)
	three = big.NewInt(3)
	four  = big.NewInt(4)
)

// BlumBlumShub is a PRNG based on squaring modulo the product of two
// primes congruent to 3 mod 4. The state evolves by x <- x^2 mod m.
type BlumBlumShub struct {
	m     *big.Int // p * q
	x     *big.Int // current quadratic-residue state
	width int      // per-draw output size in bits
}

// NewBlumBlumShub constructs a stream with modulus p*q and initial state
// max(seed mod m, 1). Both p and q must be congruent to 3 mod 4.
func NewBlumBlumShub(seed, p, q *big.Int, width int) (*BlumBlumShub, error) {
	if new(big.Int).Mod(p, four).Cmp(three) != 0 || new(big.Int).Mod(q, four).Cmp(three) != 0 {
		return nil, fmt.Errorf("bbs primes must be congruent to 3 mod 4")
	}
	if width < 1 {
		return nil, fmt.Errorf("bbs output width must be positive")
	}

	m := new(big.Int).Mul(p, q)
	x := new(big.Int).Mod(seed, m)
	if x.Sign() == 0 {
		x.Set(one)
	}

	return &BlumBlumShub{m: m, x: x, width: width}, nil
}

// NewSeededStream draws a fresh 64-byte seed from the oracle and builds a
// stream over the fixed stream primes.
func NewSeededStream(oracle Oracle, width int) (*BlumBlumShub, error) {
	seedBytes, err := oracle.RandomBytes(rsaDomain.SeedSize)
	if err != nil {
		return nil, fmt.Errorf("failed to seed bbs stream: %w", err)
	}
	seed := new(big.Int).SetBytes(seedBytes)
	return NewBlumBlumShub(seed, StreamPrimeP, StreamPrimeQ, width)
}

// Width returns the per-draw output size in bits used by Next.
func (b *BlumBlumShub) Width() int {
	return b.width
}

// NextBit advances the state once and returns the parity of the new state.
func (b *BlumBlumShub) NextBit() uint {
	b.x.Mul(b.x, b.x)
	b.x.Mod(b.x, b.m)
	return b.x.Bit(0)
}

// NextBits draws n raw bits MSB-first and then forces the shape bits: the
// top bit is set so the result is a full n-bit integer, the low bit is set
// so it is odd, and the low two bits are adjusted so the result is
// congruent to 3 mod 4. The shaped output is what the prime finder feeds
// to Miller-Rabin.
func (b *BlumBlumShub) NextBits(n int) *big.Int {
	r := new(big.Int)
	for i := 0; i < n; i++ {
		r.Lsh(r, 1)
		if b.NextBit() == 1 {
			r.SetBit(r, 0, 1)
		}
	}

	r.SetBit(r, n-1, 1)
	r.SetBit(r, 0, 1)

	// r <- r - (r mod 4) + 3
	rem := new(big.Int).Mod(r, four)
	r.Sub(r, rem)
	r.Add(r, three)

	return r
}

// Next draws one shaped integer of the configured width.
func (b *BlumBlumShub) Next() *big.Int {
	return b.NextBits(b.width)
}

// NextBytes draws n raw bytes from the bit stream, without any shaping.
// This is the byte source for OAEP seeds and PSS salts; blinding factors
// are drawn with the shaped NextBits instead.
func (b *BlumBlumShub) NextBytes(n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		var v byte
		for j := 0; j < 8; j++ {
			v = v<<1 | byte(b.NextBit())
		}
		buf[i] = v
	}
	return buf
}
