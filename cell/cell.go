// Package cell implements the per-organism state and update algorithm: age,
// energy/metabolism, molecule storage, movement and contraction intent,
// contact bookkeeping, and division/death. Grounded in
// original_source/vlife-simulator/src/cell.rs (the commented-out Display
// impl in its latest revision documents the full field set an earlier
// revision carried, which this module reconstructs per spec.md §3/§4.5)
// and cell_body.rs (the center-particle-plus-membrane-ring ownership
// shape).
package cell

import (
	"math/rand"

	"github.com/vlife-go/vlife/config"
	"github.com/vlife-go/vlife/genome"
	"github.com/vlife-go/vlife/neural"
	"github.com/vlife-go/vlife/objectset"
	"github.com/vlife-go/vlife/physics"
	"github.com/vlife-go/vlife/vmath"
)

// NumMolecules is the fixed width of every molecule-indexed vector a cell
// carries.
const NumMolecules = neural.NumMolecules

// NumRingParticles is the number of membrane particles a cell's ring is
// built from, matching Simulator::create_random_cell's num_particles.
const NumRingParticles = 16

// Stats accumulates a cell's lifetime energy flow, read by the simulator
// when computing a deceased cell's rank fitness.
type Stats struct {
	EnergyConsumed    float32
	EnergyProduced    float32
	EnergyAbsorbedOut float32
	EnergyAbsorbedIn  float32
}

// Handle references a Cell owned by a simulator.
type Handle = objectset.Handle[Cell]

// Cell is one organism: its neural controller, energy/metabolism state,
// movement and contraction intent, division accounting, and the handles
// of the physics bodies it owns.
type Cell struct {
	// Physics ownership.
	Center    physics.ParticleHandle
	Particles []physics.ParticleHandle // membrane ring, ring order
	Springs   []physics.SpringHandle
	Collider  physics.ColliderHandle

	Neurons *neural.Neurons

	// Age and energy.
	Age          float32
	Energy       float32
	LastEnergy   float32
	StoredEnergy float32

	// lastEnergyDelta caches Energy-LastEnergy as of the start of the most
	// recent Update, since snapshotEnergy immediately overwrites LastEnergy.
	lastEnergyDelta float32

	ZeroEnergyTime  float32
	ZeroEnergyLimit float32

	Molecules                 [NumMolecules]float32
	MoleculesEnergyConversion [NumMolecules]float32

	// Membrane size, as a fraction of config.MaxCellRadius.
	Membrane float32

	// Movement.
	MovementDirection   float32
	MovementSpeed       float32
	MovementSpeedLimit  float32
	MovementVelocity    vmath.Vector2

	// Contraction.
	ContractionAmount float32
	ContractionLimit  float32

	// Contact absorption.
	ContactEnergyAbsorptionAmount float32
	ContactEnergyAbsorptionLimit float32

	// Division.
	DivisionEnergyReserve float32
	DivisionThreshold     float32
	DivisionGrowFactor    float32

	// Per-tick contact accumulator, reset by BeginContactTick.
	ContactCount  float32
	ContactNormal vmath.Vector2

	Stats Stats
}

// Radius returns this cell's current membrane radius.
func (c *Cell) Radius(cfg config.Config) float32 {
	return c.Membrane * cfg.MaxCellRadius
}

// ContractedSize returns this cell's radius reduced by its current
// contraction amount, the size its owning particle ring is synced to.
func (c *Cell) ContractedSize(cfg config.Config) float32 {
	return c.Radius(cfg) * (1 - c.ContractionAmount)
}

// Area returns this cell's membrane disc area, used by the division-cost
// computation.
func (c *Cell) Area(cfg config.Config) float32 {
	r := c.Radius(cfg)
	return vmath.Pi * r * r
}

// IsDead reports whether this cell meets either death condition: total
// energy at or below the alive threshold, or the zero-energy timer has
// reached its limit.
func (c *Cell) IsDead(cfg config.Config) bool {
	if c.Energy+c.StoredEnergy <= cfg.AliveThreshold {
		return true
	}
	return c.ZeroEnergyTime >= c.ZeroEnergyLimit
}

// CanDivide reports whether this cell meets every division condition.
func (c *Cell) CanDivide(cfg config.Config) bool {
	return c.Energy >= c.Area(cfg)*cfg.DivisionCost &&
		c.DivisionEnergyReserve >= c.DivisionThreshold &&
		c.DivisionGrowFactor >= 1
}

// Fitness is the rank score a dead cell's genome is inserted with:
// (1 + produced + absorbed_in) / (1 + consumed + absorbed_out).
func (c *Cell) Fitness() float32 {
	return (1 + c.Stats.EnergyProduced + c.Stats.EnergyAbsorbedIn) /
		(1 + c.Stats.EnergyConsumed + c.Stats.EnergyAbsorbedOut)
}

// newBase returns a Cell with every scalar trait initialized, its neural
// controller attached, and no physics handles assigned yet — the caller
// (sim.Simulator) is responsible for building the physics ring and
// filling in Center/Particles/Springs/Collider.
func newBase(cfg config.Config, neurons *neural.Neurons, rng *rand.Rand) *Cell {
	c := &Cell{
		Neurons:            neurons,
		Energy:             1.0,
		Membrane:           0.1 + rng.Float32()*0.9,
		ZeroEnergyLimit:    cfg.MaxZeroEnergyTime,
		MovementSpeedLimit: cfg.MaxSpeed,
		ContractionLimit:   rng.Float32(),
		DivisionGrowFactor: 1,
		DivisionThreshold:  cfg.MaxEnergy * (0.1 + rng.Float32()*0.4),
	}
	c.ContactEnergyAbsorptionLimit = rng.Float32() * 10
	for i := range c.MoleculesEnergyConversion {
		c.MoleculesEnergyConversion[i] = 0.5 + rng.Float32()
	}
	return c
}

// NewRandom returns a cell with a freshly randomized neural controller and
// scalar traits, with no physics handles assigned yet.
func NewRandom(cfg config.Config, rng *rand.Rand) *Cell {
	return newBase(cfg, neural.NewRandomNeurons(rng), rng)
}

// FromGenome returns a cell whose neural controller and scalar traits are
// applied from g, with no physics handles assigned yet.
func FromGenome(cfg config.Config, g genome.Genome, rng *rand.Rand) *Cell {
	c := newBase(cfg, neural.NewRandomNeurons(rng), rng)
	Apply(c, g)
	return c
}
