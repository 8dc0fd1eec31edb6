package cell

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vlife-go/vlife/vmath"
)

func TestBeginContactTick_Resets(t *testing.T) {
	c := &Cell{ContactCount: 5, ContactNormal: vmath.Vector2{X: 1, Y: 1}}
	c.BeginContactTick()
	assert.Equal(t, float32(0), c.ContactCount)
	assert.Equal(t, vmath.Vector2{}, c.ContactNormal)
}

func TestAddContact_Accumulates(t *testing.T) {
	c := &Cell{}
	c.AddContact(vmath.Vector2{X: 1, Y: 0})
	c.AddContact(vmath.Vector2{X: 0, Y: 1})

	assert.Equal(t, float32(2), c.ContactCount)
	assert.Equal(t, vmath.Vector2{X: 1, Y: 1}, c.ContactNormal)
}

func TestExchangeEnergy_NetConservesTotal(t *testing.T) {
	self := &Cell{Energy: 10, ContactEnergyAbsorptionAmount: 0.8}
	other := &Cell{Energy: 5, ContactEnergyAbsorptionAmount: 0.2}

	totalBefore := self.Energy + other.Energy
	ExchangeEnergy(self, other, 1.0/60.0)
	totalAfter := self.Energy + other.Energy

	assert.InDelta(t, totalBefore, totalAfter, 1e-4)
}

func TestExchangeEnergy_GrossStatsTrackBothDirections(t *testing.T) {
	self := &Cell{Energy: 10, ContactEnergyAbsorptionAmount: 0.8}
	other := &Cell{Energy: 5, ContactEnergyAbsorptionAmount: 0.2}

	ExchangeEnergy(self, other, 1.0/60.0)

	assert.Greater(t, self.Stats.EnergyAbsorbedIn, float32(0))
	assert.Greater(t, other.Stats.EnergyAbsorbedOut, float32(0))
	assert.Greater(t, other.Stats.EnergyAbsorbedIn, float32(0))
	assert.Greater(t, self.Stats.EnergyAbsorbedOut, float32(0))
}

func TestEnergyDiffusion_IncreasesWithAbsorptionAmount(t *testing.T) {
	low := &Cell{Energy: 10, ContactEnergyAbsorptionAmount: 0}
	high := &Cell{Energy: 10, ContactEnergyAbsorptionAmount: 10}
	assert.Less(t, low.EnergyDiffusion(), high.EnergyDiffusion())
}

func TestEnergyDiffusion_ScalesWithEnergy(t *testing.T) {
	c := &Cell{Energy: 0, ContactEnergyAbsorptionAmount: 5}
	assert.Equal(t, float32(0), c.EnergyDiffusion())
}
