package cell

import (
	"math/rand"

	"github.com/vlife-go/vlife/config"
	"github.com/vlife-go/vlife/vmath"
)

// Divide pays this cell's division cost, splits its remaining energy and
// molecule vector evenly between itself and a returned sibling, and resets
// both cells' division reserves. The sibling carries a deep copy of the
// parent's neurons and genome-derived scalars, and a regrowth factor of
// 1/size so it grows back over time. The sibling's physics handles are left
// unset — the caller (sim.Simulator) is responsible for spawning its
// physics ring at the displaced position this method reports. Grounded in
// spec.md §4.5's division rule; the spawn displacement of 2*radius along a
// random heading follows original_source/vlife-simulator/src/cell.rs's
// sibling-placement comment.
func (c *Cell) Divide(cfg config.Config, rng *rand.Rand) (sibling *Cell, displacement vmath.Vector2) {
	cost := c.Area(cfg) * cfg.DivisionCost
	c.Energy -= cost
	c.Stats.EnergyConsumed += cost

	// Remaining energy splits evenly between parent and child, so
	// parent.Energy+child.Energy always equals pre_energy-cost.
	half := c.Energy / 2
	c.Energy = half

	sibling = &Cell{
		Neurons:                      c.Neurons.Clone(),
		Energy:                       half,
		Membrane:                     c.Membrane,
		ZeroEnergyLimit:              c.ZeroEnergyLimit,
		MovementSpeedLimit:           c.MovementSpeedLimit,
		ContractionLimit:             c.ContractionLimit,
		ContactEnergyAbsorptionLimit: c.ContactEnergyAbsorptionLimit,
		DivisionThreshold:            c.DivisionThreshold,
		MoleculesEnergyConversion:    c.MoleculesEnergyConversion,
	}

	moleculeShare := float32(0.5)
	for i := range c.Molecules {
		sibling.Molecules[i] = c.Molecules[i] * moleculeShare
		c.Molecules[i] -= sibling.Molecules[i]
	}

	c.DivisionEnergyReserve = 0
	sibling.DivisionEnergyReserve = 0

	size := sibling.Radius(cfg)
	if size <= 0 {
		size = 1
	}
	sibling.DivisionGrowFactor = 1 / size
	c.DivisionGrowFactor = 0

	heading := rng.Float32() * vmath.TwoPi
	direction := vmath.Vector2{X: 1, Y: 0}.Rotated(heading)
	displacement = direction
	displacement.MultiplyScalar(2 * c.Radius(cfg))

	return sibling, displacement
}
