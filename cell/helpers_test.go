package cell

import "github.com/vlife-go/vlife/genome"

// buildTestGenome serializes c's heritable state into a fresh Genome, for
// tests exercising Build/Apply round-trips.
func buildTestGenome(c *Cell) genome.Genome {
	builder := genome.NewBuilder()
	Build(c, builder)
	return builder.Build()
}

// buildTestGenomeEmpty returns a genome with no genes, for exercising
// Apply's leave-current-value-on-missing-gene behavior.
func buildTestGenomeEmpty() genome.Genome {
	return genome.NewBuilder().Build()
}
