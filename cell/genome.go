package cell

import "github.com/vlife-go/vlife/genome"

// Build records this cell's heritable state into builder: its neural
// controller (nested "neurons") and its evolvable scalar traits. Mirrors
// the BuildGenome derive the source generates for CellBody's nested
// fields, made explicit since Go has no derive macros.
func Build(c *Cell, builder *genome.Builder) {
	c.Neurons.BuildGenome(builder.Nested("neurons"))
	builder.Add("membrane", c.Membrane)
	builder.Add("contraction_limit", c.ContractionLimit)
	builder.Add("movement_speed_limit", c.MovementSpeedLimit)
	builder.Add("contact_energy_absorption_limit", c.ContactEnergyAbsorptionLimit)
	builder.Add("division_threshold", c.DivisionThreshold)
	builder.Nested("molecules_energy_conversion").AddVector(c.MoleculesEnergyConversion[:])
}

// Apply overwrites c's heritable state from g wherever a gene is present;
// genes absent from g (e.g. a fresh genome missing a trait added in a
// later revision) leave c's existing value untouched, matching the
// source's tolerance for genomes whose key set has evolved over time.
func Apply(c *Cell, g genome.Genome) {
	reader := genome.NewReader(g)

	if v, ok := reader.Get("membrane"); ok {
		c.Membrane = v
	}
	if v, ok := reader.Get("contraction_limit"); ok {
		c.ContractionLimit = v
	}
	if v, ok := reader.Get("movement_speed_limit"); ok {
		c.MovementSpeedLimit = v
	}
	if v, ok := reader.Get("contact_energy_absorption_limit"); ok {
		c.ContactEnergyAbsorptionLimit = v
	}
	if v, ok := reader.Get("division_threshold"); ok {
		c.DivisionThreshold = v
	}
	if conv, ok := reader.Nested("molecules_energy_conversion").GetVector(NumMolecules); ok {
		copy(c.MoleculesEnergyConversion[:], conv)
	}

	c.Neurons.ApplyGenome(reader.Nested("neurons"))
}
