//go:build unit
// +build unit

package numtheory

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/MikaPS/PublicKeyCryptography/internal/infrastructure/entropy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b, expected int64
	}{
		{0, 0, 0},
		{12, 0, 12},
		{0, 12, 12},
		{12, 18, 6},
		{18, 12, 6},
		{17, 5, 1},
		{270, 192, 6},
		{1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("gcd(%d,%d)", tt.a, tt.b), func(t *testing.T) {
			a := big.NewInt(tt.a)
			b := big.NewInt(tt.b)

			got := GCD(a, b)
			assert.Equal(t, tt.expected, got.Int64())

			// inputs are left untouched
			assert.Equal(t, tt.a, a.Int64())
			assert.Equal(t, tt.b, b.Int64())
		})
	}

	t.Run("RecurrenceHolds", func(t *testing.T) {
		src := entropy.New(3)
		for i := 0; i < 200; i++ {
			a := src.Bits(64)
			b := src.Bits(64)
			if b.Sign() == 0 {
				continue
			}
			aModB := new(big.Int).Mod(a, b)
			assert.Equal(t, 0, GCD(a, b).Cmp(GCD(b, aModB)), "gcd(%v,%v)", a, b)
			assert.Equal(t, 0, GCD(a, b).Cmp(new(big.Int).GCD(nil, nil, a, b)), "gcd(%v,%v)", a, b)
		}
	})
}

func TestLCM(t *testing.T) {
	assert.Equal(t, int64(36), LCM(big.NewInt(12), big.NewInt(18)).Int64())
	assert.Equal(t, int64(0), LCM(big.NewInt(0), big.NewInt(0)).Int64())
	assert.Equal(t, int64(35), LCM(big.NewInt(5), big.NewInt(7)).Int64())
}

func TestModInverse(t *testing.T) {
	t.Run("KnownValues", func(t *testing.T) {
		tests := []struct {
			a, n, expected int64
		}{
			{3, 7, 5},
			{3, 11, 4},
			{10, 17, 12},
			{17, 3120, 2753},
			{1, 5, 1},
		}
		for _, tt := range tests {
			inv, ok := ModInverse(big.NewInt(tt.a), big.NewInt(tt.n))
			require.True(t, ok, "inverse of %d mod %d", tt.a, tt.n)
			assert.Equal(t, tt.expected, inv.Int64())
		}
	})

	t.Run("NoInverse", func(t *testing.T) {
		inv, ok := ModInverse(big.NewInt(6), big.NewInt(9))
		assert.False(t, ok)
		assert.Nil(t, inv)

		inv, ok = ModInverse(big.NewInt(0), big.NewInt(9))
		assert.False(t, ok)
		assert.Nil(t, inv)
	})

	t.Run("AgreesWithMathBig", func(t *testing.T) {
		src := entropy.New(11)
		n := MakePrime(127, 20, src)
		for i := 0; i < 100; i++ {
			a := src.Below(n)
			if a.Sign() == 0 {
				continue
			}
			inv, ok := ModInverse(a, n)
			require.True(t, ok)
			assert.Equal(t, 0, inv.Cmp(new(big.Int).ModInverse(a, n)))

			check := new(big.Int).Mul(a, inv)
			assert.Equal(t, int64(1), check.Mod(check, n).Int64())
		}
	})
}

func TestPowMod(t *testing.T) {
	tests := []struct {
		a, d, n, expected int64
	}{
		{4, 13, 497, 445},
		{2, 10, 1000, 24},
		{7, 0, 13, 1},
		{7, 5, 1, 0},
		{0, 0, 1, 0},
		{0, 5, 13, 0},
		{12, 1, 5, 2},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d^%d mod %d", tt.a, tt.d, tt.n), func(t *testing.T) {
			a := big.NewInt(tt.a)
			d := big.NewInt(tt.d)
			got := PowMod(a, d, big.NewInt(tt.n))
			assert.Equal(t, tt.expected, got.Int64())
			assert.Equal(t, tt.d, d.Int64(), "exponent must not be modified")
		})
	}

	t.Run("AgreesWithMathBig", func(t *testing.T) {
		src := entropy.New(5)
		for i := 0; i < 50; i++ {
			a := src.Bits(256)
			d := src.Bits(256)
			n := src.Bits(256)
			n.SetBit(n, 0, 1)
			assert.Equal(t, 0, PowMod(a, d, n).Cmp(new(big.Int).Exp(a, d, n)))
		}
	})
}
