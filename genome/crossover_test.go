package genome

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildGenome(kv map[string]float32) Genome {
	b := NewBuilder()
	for k, v := range kv {
		b.Add(k, v)
	}
	return b.Build()
}

func TestCrossover_KeySetIsUnion(t *testing.T) {
	a := buildGenome(map[string]float32{"x": 1, "y": 2})
	b := buildGenome(map[string]float32{"y": 20, "z": 30})

	rng := rand.New(rand.NewSource(1))
	child := Crossover(a, b, rng)

	assert.ElementsMatch(t, []string{"x", "y", "z"}, child.Keys())
}

func TestCrossover_MissingKeyFallsBack(t *testing.T) {
	a := buildGenome(map[string]float32{"x": 1})
	b := buildGenome(map[string]float32{"y": 2})

	rng := rand.New(rand.NewSource(1))
	child := Crossover(a, b, rng)

	x, ok := child.Get("x")
	assert.True(t, ok)
	assert.Equal(t, float32(1), x)

	y, ok := child.Get("y")
	assert.True(t, ok)
	assert.Equal(t, float32(2), y)
}

// TestProperty_GenomeRoundTrip_SelfCrossoverPreservesKeySet verifies that
// crossing a genome against itself yields a child whose key set equals the
// original, per spec.md §8.
func TestProperty_GenomeRoundTrip_SelfCrossoverPreservesKeySet(t *testing.T) {
	g := buildGenome(map[string]float32{"a": 1, "b": 2, "c": 3, "d": 4})

	rng := rand.New(rand.NewSource(11))
	child := Crossover(g, g, rng)

	assert.Equal(t, g.Keys(), child.Keys())
}

func TestCrossover_SingleKeyPrefersA(t *testing.T) {
	a := buildGenome(map[string]float32{"only": 5})
	b := buildGenome(map[string]float32{"only": 9})

	rng := rand.New(rand.NewSource(1))
	child := Crossover(a, b, rng)

	v, ok := child.Get("only")
	assert.True(t, ok)
	assert.Equal(t, float32(5), v)
}
