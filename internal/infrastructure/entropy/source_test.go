//go:build unit
// +build unit

package entropy

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededSource(t *testing.T) {
	t.Run("SameSeedSameSequence", func(t *testing.T) {
		a := New(42)
		b := New(42)

		for i := 0; i < 10; i++ {
			assert.Equal(t, 0, a.Bits(128).Cmp(b.Bits(128)))
			assert.Equal(t, a.Intn(1000), b.Intn(1000))
		}
		assert.Equal(t, int64(42), a.Seed())
	})

	t.Run("BitsStaysInRange", func(t *testing.T) {
		src := New(7)
		for i := 0; i < 100; i++ {
			v := src.Bits(17)
			assert.LessOrEqual(t, v.BitLen(), 17)
			assert.GreaterOrEqual(t, v.Sign(), 0)
		}
		assert.Equal(t, 0, src.Bits(0).Sign())
	})

	t.Run("BelowStaysInRange", func(t *testing.T) {
		src := New(7)
		bound := big.NewInt(5)
		seen := make(map[int64]bool)
		for i := 0; i < 200; i++ {
			v := src.Below(bound)
			require.True(t, v.Sign() >= 0 && v.Cmp(bound) < 0, "value %v out of range", v)
			seen[v.Int64()] = true
		}
		assert.Len(t, seen, 5)
	})

	t.Run("BelowPanicsOnNonPositiveBound", func(t *testing.T) {
		src := New(1)
		assert.Panics(t, func() { src.Below(big.NewInt(0)) })
	})
}
