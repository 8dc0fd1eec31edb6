package cell

import (
	"github.com/vlife-go/vlife/config"
	"github.com/vlife-go/vlife/vmath"
)

// SensorInput carries the per-tick simulator context a cell cannot derive
// from its own state: its owning particle's current velocity and
// acceleration magnitude and mass, fed into the neural input slots by
// FillInputs.
type SensorInput struct {
	Velocity            vmath.Vector2
	AccelerationMagnitude float32
	Mass                float32
}

// Update runs the ten-step cell update algorithm in strict order:
// energy-delta snapshot, neural input fill, neural process, basal cost,
// contraction, movement, contact absorption, energy metabolism, division
// accounting, and the mortality accumulator.
func (c *Cell) Update(cfg config.Config, dt float32, input SensorInput) {
	c.snapshotEnergy(dt)
	c.fillInputs(cfg, input)
	c.Neurons.Process()
	c.payBasalCost(cfg)
	c.updateContraction(cfg, dt)
	c.updateMovement(cfg, dt, input.Mass)
	c.updateContactAbsorption(dt)
	c.updateMetabolism(cfg, dt)
	c.updateDivisionAccounting(dt)
	c.updateMortality(cfg, dt)
}

func (c *Cell) snapshotEnergy(dt float32) {
	c.Age += dt
	c.lastEnergyDelta = c.Energy - c.LastEnergy
	c.LastEnergy = c.Energy
}

func (c *Cell) energyDelta() float32 {
	return c.lastEnergyDelta
}

func (c *Cell) fillInputs(cfg config.Config, input SensorInput) {
	n := c.Neurons
	radius := c.Radius(cfg)

	n.SetVelocityMagnitude(input.Velocity.Length())
	n.SetAccelerationMagnitude(input.AccelerationMagnitude)
	n.SetRadius(radius)
	n.SetAge(c.Age)
	n.SetEnergyAmount(c.Energy)
	n.SetEnergyStored(c.StoredEnergy)
	n.SetEnergyDelta(c.energyDelta())
	n.SetZeroEnergy(c.ZeroEnergyTime)
	n.SetDivisionEnergyReserve(c.DivisionEnergyReserve)
	n.SetDivisionGrowFactor(c.DivisionGrowFactor)

	total := float32(0)
	proportion := make([]float32, NumMolecules)
	for _, m := range c.Molecules {
		total += m
	}
	if total > 0 {
		for i, m := range c.Molecules {
			proportion[i] = m / total
		}
	}
	n.SetMoleculesProportion(proportion)
	n.SetMoleculesTotal(total)

	n.SetMovementDirection(c.MovementDirection)
	n.SetMovementSpeed(c.MovementSpeed)
	n.SetMovementVelocity(c.MovementVelocity.X, c.MovementVelocity.Y)
	n.SetMovementVelocityMagnitude(c.MovementVelocity.Length())

	n.SetContactEnergyAbsorptionIn(c.ContactEnergyAbsorptionAmount)
	n.SetContactCount(c.ContactCount)
	n.SetContactNormal(c.ContactNormal.X, c.ContactNormal.Y)
	n.SetContactNormalMagnitude(c.ContactNormal.Length())
}

func (c *Cell) payBasalCost(cfg config.Config) {
	cost := vmath.Min(c.Energy, c.Neurons.NumWorkingNeurons()*cfg.NeuronCost)
	c.Energy -= cost
	c.Stats.EnergyConsumed += cost
}

func (c *Cell) updateContraction(cfg config.Config, dt float32) {
	cost := c.ContractionAmount * cfg.ContractionCost * dt
	if cost > c.Energy {
		return
	}
	c.Energy -= cost
	c.Stats.EnergyConsumed += cost
	c.ContractionAmount = vmath.Clamp(c.Neurons.ContractionAmountOut(), 0, c.ContractionLimit)
}

func (c *Cell) updateMovement(cfg config.Config, dt, mass float32) {
	direction := c.MovementDirection + c.Neurons.MovementAngularSpeedOut()*0.05*vmath.Pi
	speed := vmath.Max(0, c.Neurons.MovementKineticSpeedOut()) * c.MovementSpeedLimit

	cost := 0.5 * mass * speed * speed * cfg.MovementCost * dt
	if cost > c.Energy {
		c.MovementVelocity = vmath.Vector2{}
		return
	}

	c.Energy -= cost
	c.Stats.EnergyConsumed += cost
	c.MovementDirection = vmath.Mod(direction, vmath.TwoPi)
	c.MovementSpeed = speed

	heading := vmath.Vector2{X: speed, Y: 0}.Rotated(-c.MovementDirection)
	c.MovementVelocity = heading
}

func (c *Cell) updateContactAbsorption(dt float32) {
	target := c.ContactEnergyAbsorptionAmount + c.Neurons.ContactEnergyAbsorptionOut()*dt
	c.ContactEnergyAbsorptionAmount = vmath.Clamp(target, 0, c.ContactEnergyAbsorptionLimit)
}

func (c *Cell) updateMetabolism(cfg config.Config, dt float32) {
	c.applyMetabolism(cfg, c.Neurons.EnergyMetabolism(), dt)
}

// applyMetabolism runs the metabolism exchange for a given per-molecule
// signed output vector: positive entries convert stored molecules to
// energy, negative entries convert energy to stored molecules. Energy
// produced this step credits c.Energy before required is checked against
// it, per spec.md §4.5 — a molecule-consuming (energy-producing) reaction
// earns the energy to pay for a concurrent molecule-producing
// (energy-consuming) one within the same tick. Split
// out from updateMetabolism so the scaling branch can be exercised
// directly with a synthetic output vector.
func (c *Cell) applyMetabolism(cfg config.Config, out []float32, dt float32) {
	var src, prod [NumMolecules]float32
	var producedEnergy, required float32

	for i, o := range out {
		if o > 0 {
			amount := vmath.Min(o*dt, c.Molecules[i])
			src[i] = amount
			producedEnergy += amount * c.MoleculesEnergyConversion[i]
		} else if o < 0 {
			amount := -o * dt
			prod[i] = amount
			required += amount * c.MoleculesEnergyConversion[i]
		}
	}

	c.Energy += producedEnergy

	if required > c.Energy && required > 0 {
		scale := c.Energy / required
		for i := range prod {
			prod[i] *= scale
		}
		required = c.Energy
	}

	for i := range c.Molecules {
		c.Molecules[i] -= src[i]
		c.Molecules[i] += prod[i]
		c.Molecules[i] = vmath.Clamp(c.Molecules[i], 0, cfg.MaxMoleculeAmount)
	}
	c.Energy -= required
	c.Stats.EnergyProduced += producedEnergy
	c.Stats.EnergyConsumed += required

	var stored float32
	for i, m := range c.Molecules {
		stored += m * c.MoleculesEnergyConversion[i]
	}
	c.StoredEnergy = stored
}

func (c *Cell) updateDivisionAccounting(dt float32) {
	lower := -c.DivisionEnergyReserve
	upper := vmath.Min(c.Energy, c.DivisionThreshold-c.DivisionEnergyReserve)
	delta := vmath.Clamp(c.Neurons.DivisionEnergyReserveOut()*dt, lower, upper)

	c.Energy -= delta
	c.DivisionEnergyReserve += delta

	c.DivisionGrowFactor = vmath.Min(1, c.DivisionGrowFactor+dt)
}

func (c *Cell) updateMortality(cfg config.Config, dt float32) {
	if c.Energy <= cfg.AliveThreshold {
		c.ZeroEnergyTime += dt
	} else {
		c.ZeroEnergyTime = 0
	}
}
