package genome

import (
	"math/rand"
	"sort"
)

// Crossover combines a and b into a child genome with key set exactly the
// sorted union of a's and b's keys. A split index is drawn uniformly in
// [1, n-1] over the union; keys before the split prefer a (falling back
// to b), keys at or after it prefer b (falling back to a). Grounded in
// Genome::cross in original_source/vlife-simulator/src/genome.rs.
//
// The resulting lineage id is that of the parent that contributed more of
// the child's keys, and a's on a tie (the source tracks no lineage at all —
// see SPEC_FULL.md).
func Crossover(a, b Genome, rng *rand.Rand) Genome {
	keys := unionKeys(a, b)
	n := len(keys)

	genes := make(map[string]float32, n)

	if n <= 1 {
		for _, key := range keys {
			genes[key] = pick(a, b, key)
		}
		return Genome{genes: genes, LineageID: a.LineageID}
	}

	splitIndex := 1 + rng.Intn(n-1)

	for _, key := range keys[:splitIndex] {
		genes[key] = pick(a, b, key)
	}
	for _, key := range keys[splitIndex:] {
		genes[key] = pick(b, a, key)
	}

	lineage := a.LineageID
	if splitIndex*2 < n {
		lineage = b.LineageID
	}

	return Genome{genes: genes, LineageID: lineage}
}

// pick returns primary's gene at key, falling back to fallback's.
func pick(primary, fallback Genome, key string) float32 {
	if v, ok := primary.genes[key]; ok {
		return v
	}
	return fallback.genes[key]
}

func unionKeys(a, b Genome) []string {
	seen := make(map[string]struct{}, len(a.genes)+len(b.genes))
	for k := range a.genes {
		seen[k] = struct{}{}
	}
	for k := range b.genes {
		seen[k] = struct{}{}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
