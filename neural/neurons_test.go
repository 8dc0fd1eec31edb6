package neural

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vlife-go/vlife/genome"
)

func TestNeurons_ProcessProducesFiniteOutputs(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	n := NewRandomNeurons(rng)
	n.SetRadius(0.5)
	n.SetAge(10)
	n.Process()

	out := n.EnergyMetabolism()
	assert.Len(t, out, NumMolecules)
	for _, v := range out {
		assert.False(t, vIsNaNOrInf(v))
	}
}

func vIsNaNOrInf(v float32) bool {
	return v != v || v > 1e30 || v < -1e30
}

func TestNeurons_Clone_IndependentLayers(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	n := NewRandomNeurons(rng)
	clone := n.Clone()

	clone.inputLayer.weights[0][0] = 555
	assert.NotEqual(t, n.inputLayer.weights[0][0], clone.inputLayer.weights[0][0])
}

func TestNeurons_InputSlotsRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	n := NewRandomNeurons(rng)

	n.SetVelocityMagnitude(1)
	n.SetAccelerationMagnitude(2)
	n.SetRadius(3)
	n.SetAge(4)
	n.SetEnergyAmount(5)
	n.SetEnergyStored(6)
	n.SetEnergyDelta(7)
	n.SetZeroEnergy(8)
	n.SetDivisionEnergyReserve(9)
	n.SetDivisionGrowFactor(10)
	n.SetMoleculesProportion(make([]float32, NumMolecules))
	n.SetMoleculesTotal(11)
	n.SetMovementDirection(12)
	n.SetMovementSpeed(13)
	n.SetMovementVelocity(14, 15)
	n.SetMovementVelocityMagnitude(16)
	n.SetContactEnergyAbsorptionIn(17)
	n.SetContactCount(18)
	n.SetContactNormal(19, 20)
	n.SetContactNormalMagnitude(21)

	assert.Equal(t, float32(1), n.inputs[inVelocityMagnitude])
	assert.Equal(t, float32(14), n.inputs[inMovementVelocity])
	assert.Equal(t, float32(15), n.inputs[inMovementVelocity+1])
	assert.Equal(t, float32(21), n.inputs[inContactNormalMagnitude])
}

// TestProperty_NeuralDeterminism verifies that, with a fixed RNG seed, two
// constructions produce bit-identical outputs for identical inputs, per
// spec.md §8.
func TestProperty_NeuralDeterminism(t *testing.T) {
	a := NewRandomNeurons(rand.New(rand.NewSource(123)))
	b := NewRandomNeurons(rand.New(rand.NewSource(123)))

	setup := func(n *Neurons) {
		n.SetVelocityMagnitude(1)
		n.SetRadius(2)
		n.SetAge(3)
		n.SetEnergyAmount(4)
	}
	setup(a)
	setup(b)

	a.Process()
	b.Process()

	assert.Equal(t, a.EnergyMetabolism(), b.EnergyMetabolism())
	assert.Equal(t, a.DivisionEnergyReserveOut(), b.DivisionEnergyReserveOut())
	assert.Equal(t, a.ContractionAmountOut(), b.ContractionAmountOut())
}

func TestNeurons_ApplyGenome_RecomputesWorkingNeurons(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	n := NewRandomNeurons(rng)

	builder := genome.NewBuilder()
	n.BuildGenome(builder)
	g := builder.Build()

	target := NewRandomNeurons(rand.New(rand.NewSource(99)))
	target.ApplyGenome(genome.NewReader(g))

	assert.Equal(t, n.NumWorkingNeurons(), target.NumWorkingNeurons())
}
