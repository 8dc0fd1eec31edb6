package cell

import "github.com/vlife-go/vlife/vmath"

// BeginContactTick resets this cell's per-tick contact accumulator. The
// simulator calls this once per tick before replaying the contacts physics
// surfaced, per spec.md §4.5's contact-handling note.
func (c *Cell) BeginContactTick() {
	c.ContactCount = 0
	c.ContactNormal = vmath.Vector2{}
}

// AddContact accumulates one contact's normal into this cell's running
// total and increments its contact count. Called for every contact
// surfaced by physics that this cell's particle participated in,
// regardless of whether the other side is the world boundary or another
// cell.
func (c *Cell) AddContact(normal vmath.Vector2) {
	c.ContactCount++
	c.ContactNormal.Add(normal)
}

// EnergyDiffusion is the rate at which this cell releases energy to
// contact partners: a sigmoid in its own contact-absorption amount,
// rescaled to run from -0.5 to 1.0 and multiplied by its current energy.
func (c *Cell) EnergyDiffusion() float32 {
	sigmoid := 1.5/(1+vmath.Exp(-5*c.ContactEnergyAbsorptionAmount)) - 0.5
	return c.Energy * sigmoid
}

// ExchangeEnergy runs one cell-cell contact's energy exchange between self
// and other for duration dt. Each side absorbs from the other at a rate of
// its own absorption amount times the other's energy diffusion; the two
// one-directional flows are then symmetric-subtracted into a single net
// transfer, so contact never manufactures or destroys energy.
func ExchangeEnergy(self, other *Cell, dt float32) {
	selfAbsorbed := self.ContactEnergyAbsorptionAmount * other.EnergyDiffusion() * dt
	otherAbsorbed := other.ContactEnergyAbsorptionAmount * self.EnergyDiffusion() * dt

	self.Stats.EnergyAbsorbedIn += selfAbsorbed
	other.Stats.EnergyAbsorbedOut += selfAbsorbed
	other.Stats.EnergyAbsorbedIn += otherAbsorbed
	self.Stats.EnergyAbsorbedOut += otherAbsorbed

	net := selfAbsorbed - otherAbsorbed
	self.Energy += net
	other.Energy -= net
}
