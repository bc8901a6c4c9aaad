//go:build unit
// +build unit

package numtheory

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModPow(t *testing.T) {
	t.Run("MatchesBigIntExp", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 50; i++ {
			base := new(big.Int).Rand(rng, new(big.Int).Lsh(big.NewInt(1), 256))
			exp := new(big.Int).Rand(rng, new(big.Int).Lsh(big.NewInt(1), 128))
			mod := new(big.Int).Rand(rng, new(big.Int).Lsh(big.NewInt(1), 256))
			if mod.Sign() == 0 {
				continue
			}
			expected := new(big.Int).Exp(base, exp, mod)
			assert.Equal(t, expected, ModPow(base, exp, mod))
		}
	})

	t.Run("ModulusOne", func(t *testing.T) {
		assert.Equal(t, big.NewInt(0), ModPow(big.NewInt(7), big.NewInt(3), big.NewInt(1)))
	})

	t.Run("ZeroExponent", func(t *testing.T) {
		assert.Equal(t, big.NewInt(1), ModPow(big.NewInt(7), big.NewInt(0), big.NewInt(13)))
	})
}

func TestModInverse(t *testing.T) {
	t.Run("InvertsCoprimeValues", func(t *testing.T) {
		rng := rand.New(rand.NewSource(2))
		m := big.NewInt(1000003) // prime modulus
		for i := 0; i < 50; i++ {
			a := new(big.Int).Rand(rng, m)
			if a.Sign() == 0 {
				continue
			}
			inv, err := ModInverse(a, m)
			require.NoError(t, err)

			product := new(big.Int).Mul(a, inv)
			product.Mod(product, m)
			assert.Equal(t, big.NewInt(1), product)
		}
	})

	t.Run("FailsWhenNotCoprime", func(t *testing.T) {
		_, err := ModInverse(big.NewInt(6), big.NewInt(9))
		assert.Error(t, err)
	})

	t.Run("FixedExample", func(t *testing.T) {
		// 17^-1 mod 3120, the phi of n = 61*53 = 3233 (textbook example)
		inv, err := ModInverse(big.NewInt(17), big.NewInt(3120))
		require.NoError(t, err)
		assert.Equal(t, big.NewInt(2753), inv)
	})
}

func TestGCD(t *testing.T) {
	t.Run("MatchesBigIntGCD", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		for i := 0; i < 50; i++ {
			a := new(big.Int).Rand(rng, new(big.Int).Lsh(big.NewInt(1), 128))
			b := new(big.Int).Rand(rng, new(big.Int).Lsh(big.NewInt(1), 128))
			expected := new(big.Int).GCD(nil, nil, a, b)
			assert.Equal(t, expected, GCD(a, b))
		}
	})

	t.Run("ZeroOperands", func(t *testing.T) {
		assert.Equal(t, big.NewInt(12), GCD(big.NewInt(0), big.NewInt(12)))
		assert.Equal(t, big.NewInt(12), GCD(big.NewInt(12), big.NewInt(0)))
	})
}

func TestIntegerRoot(t *testing.T) {
	t.Run("ExactPowers", func(t *testing.T) {
		x := big.NewInt(12345)
		for k := 2; k <= 5; k++ {
			power := new(big.Int).Exp(x, big.NewInt(int64(k)), nil)
			assert.Equal(t, x, IntegerRoot(power, k))
		}
	})

	t.Run("FloorProperty", func(t *testing.T) {
		rng := rand.New(rand.NewSource(4))
		for i := 0; i < 20; i++ {
			n := new(big.Int).Rand(rng, new(big.Int).Lsh(big.NewInt(1), 200))
			if n.Sign() == 0 {
				continue
			}
			for _, k := range []int{2, 3, 4, 10} {
				root := IntegerRoot(n, k)
				kBig := big.NewInt(int64(k))

				assert.True(t, new(big.Int).Exp(root, kBig, nil).Cmp(n) <= 0)

				next := new(big.Int).Add(root, big.NewInt(1))
				assert.True(t, new(big.Int).Exp(next, kBig, nil).Cmp(n) > 0)
			}
		}
	})

	t.Run("NonPositiveInput", func(t *testing.T) {
		assert.Equal(t, big.NewInt(0), IntegerRoot(big.NewInt(0), 4))
	})
}
