// Package genome implements the path-keyed flat gene representation used
// to serialize a cell's neural weights and scalar traits for crossover and
// ranked selection. Grounded in original_source/vlife-simulator/src/genome.rs
// and vlife-macros/src/genome.rs (the BuildGenome derive), reworked as
// plain Go methods since Go has no derive macros.
package genome

import (
	"sort"

	"github.com/google/uuid"
)

// Genome is a flat, path-keyed map of gene values, plus a lineage id used
// to trace ancestry across crossovers (an addition over the source, which
// has no equivalent field — see SPEC_FULL.md's Domain Stack section).
type Genome struct {
	genes     map[string]float32
	LineageID uuid.UUID
}

// Get returns the gene stored at key, and whether it is present.
func (g Genome) Get(key string) (float32, bool) {
	v, ok := g.genes[key]
	return v, ok
}

// Keys returns this genome's gene keys, sorted.
func (g Genome) Keys() []string {
	keys := make([]string, 0, len(g.genes))
	for k := range g.genes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of genes this genome carries.
func (g Genome) Len() int {
	return len(g.genes)
}
