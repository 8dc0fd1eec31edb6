package cell

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vlife-go/vlife/config"
	"github.com/vlife-go/vlife/vmath"
)

func TestSnapshotEnergy_CapturesPriorTickDeltaBeforeOverwrite(t *testing.T) {
	c := &Cell{Energy: 10, LastEnergy: 4}
	c.snapshotEnergy(1.0 / 60.0)

	assert.Equal(t, float32(6), c.energyDelta())
	assert.Equal(t, float32(10), c.LastEnergy)
}

func TestSnapshotEnergy_AgesTheCell(t *testing.T) {
	c := &Cell{}
	c.snapshotEnergy(0.5)
	assert.Equal(t, float32(0.5), c.Age)
}

func TestUpdate_NeverProducesNegativeEnergyBelowZero(t *testing.T) {
	cfg := config.Default()
	rng := rand.New(rand.NewSource(1))
	c := NewRandom(cfg, rng)
	c.Energy = 0.01

	input := SensorInput{Velocity: vmath.Vector2{X: 1, Y: 1}, AccelerationMagnitude: 0.1, Mass: 1}
	for i := 0; i < 100; i++ {
		c.Update(cfg, cfg.StepTime, input)
	}

	assert.False(t, vmath.IsNaN(c.Energy))
	assert.GreaterOrEqual(t, c.Energy, float32(0))
}

func TestPayBasalCost_NeverExceedsAvailableEnergy(t *testing.T) {
	cfg := config.Default()
	rng := rand.New(rand.NewSource(1))
	c := NewRandom(cfg, rng)
	c.Energy = 0

	c.payBasalCost(cfg)
	assert.GreaterOrEqual(t, c.Energy, float32(0))
}

// TestApplyMetabolism_ScalesRequiredAgainstPostProductionEnergy verifies
// that a tick's produced energy is credited before the required-energy
// scaling check runs: with Energy=10, a molecule-consuming reaction
// producing energy 5 and a molecule-producing reaction requiring energy
// 12, the check must compare 12 against 15 (not 10), so no scaling
// happens and the final energy is 15-12=3.
func TestApplyMetabolism_ScalesRequiredAgainstPostProductionEnergy(t *testing.T) {
	cfg := config.Default()
	rng := rand.New(rand.NewSource(1))
	c := NewRandom(cfg, rng)
	c.Energy = 10
	for i := range c.Molecules {
		c.Molecules[i] = 0
		c.MoleculesEnergyConversion[i] = 0
	}
	c.MoleculesEnergyConversion[0] = 1
	c.MoleculesEnergyConversion[1] = 1
	c.Molecules[0] = 5

	out := make([]float32, NumMolecules)
	out[0] = 5  // produces energy 5 this tick, at dt=1
	out[1] = -12 // requires energy 12 this tick, at dt=1

	c.applyMetabolism(cfg, out, 1)

	assert.Equal(t, float32(3), c.Energy)
	assert.Equal(t, float32(0), c.Molecules[0])
	assert.Equal(t, float32(12), c.Molecules[1])
}

// TestApplyMetabolism_StillScalesWhenRequiredExceedsPostProductionEnergy
// verifies the scaling branch still triggers, and clamps required exactly
// to the post-production energy, when the requirement exceeds even that.
func TestApplyMetabolism_StillScalesWhenRequiredExceedsPostProductionEnergy(t *testing.T) {
	cfg := config.Default()
	rng := rand.New(rand.NewSource(2))
	c := NewRandom(cfg, rng)
	c.Energy = 10
	for i := range c.Molecules {
		c.Molecules[i] = 0
		c.MoleculesEnergyConversion[i] = 0
	}
	c.MoleculesEnergyConversion[0] = 1
	c.MoleculesEnergyConversion[1] = 1
	c.Molecules[0] = 5

	out := make([]float32, NumMolecules)
	out[0] = 5  // produces energy 5 this tick, at dt=1 -> energy becomes 15
	out[1] = -20 // requires energy 20 this tick, at dt=1, exceeding 15

	c.applyMetabolism(cfg, out, 1)

	assert.Equal(t, float32(0), c.Energy)
	assert.InDelta(t, 15, c.Molecules[1], 1e-4)
}

func TestUpdateMortality_TracksZeroEnergyTime(t *testing.T) {
	cfg := config.Default()
	c := &Cell{Energy: 0}
	c.updateMortality(cfg, 1.0)
	assert.Equal(t, float32(1.0), c.ZeroEnergyTime)

	c.Energy = 100
	c.updateMortality(cfg, 1.0)
	assert.Equal(t, float32(0), c.ZeroEnergyTime)
}
