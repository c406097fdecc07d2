// internal/utils/prng_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeIsInclusive(t *testing.T) {
	rng := NewPRNGService(7)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := rng.Range(3, 6)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 6)
		seen[v] = true
	}
	assert.Len(t, seen, 4)
}

func TestRangeDegenerateBounds(t *testing.T) {
	rng := NewPRNGService(7)
	assert.Equal(t, 5, rng.Range(5, 5))
	assert.Equal(t, 5, rng.Range(5, 2))
}

func TestSameSeedSameSequence(t *testing.T) {
	a := NewPRNGService(99)
	b := NewPRNGService(99)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestSignYieldsBothValues(t *testing.T) {
	rng := NewPRNGService(1)
	seen := map[int]bool{}
	for i := 0; i < 100; i++ {
		v := rng.Sign()
		assert.Contains(t, []int{-1, 1}, v)
		seen[v] = true
	}
	assert.Len(t, seen, 2)
}

func TestChanceExtremes(t *testing.T) {
	rng := NewPRNGService(1)
	for i := 0; i < 50; i++ {
		assert.False(t, rng.Chance(0))
		assert.True(t, rng.Chance(1.0))
	}
}
