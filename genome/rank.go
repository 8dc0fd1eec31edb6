package genome

import (
	"math/rand"
	"sort"

	"github.com/vlife-go/vlife/vmath"
)

// entry is one fitness-scored genome held by a Rank.
type entry struct {
	score  float32
	genome Genome
}

// Rank is a fitness-ordered, bounded pool of genomes: ascending by score,
// evicting the minimum on overflow. Grounded in the source's rank
// (original_source/vlife-simulator/src/cell_rank.rs), which keeps deceased
// cells' genomes as breeding stock for new population members.
type Rank struct {
	capacity int
	entries  []entry // kept sorted ascending by score
}

// NewRank returns an empty rank bounded to capacity entries.
func NewRank(capacity int) *Rank {
	return &Rank{capacity: capacity}
}

// Len returns the number of genomes currently held.
func (r *Rank) Len() int {
	return len(r.entries)
}

// Insert adds genome with the given fitness score, then evicts the
// current minimum if the rank now exceeds capacity. A NaN score is
// rejected at the insert boundary, per spec. Grounded in CellRank::insert,
// which always inserts and then pops the BTreeMap's first (minimum) entry
// once the map overflows max_size.
func (r *Rank) Insert(genome Genome, score float32) {
	if vmath.IsNaN(score) {
		return
	}

	r.insertSorted(entry{score: score, genome: genome})
	if r.capacity > 0 && len(r.entries) > r.capacity {
		r.entries = r.entries[1:]
	}
}

func (r *Rank) insertSorted(e entry) {
	i := sort.Search(len(r.entries), func(i int) bool {
		return r.entries[i].score >= e.score
	})
	r.entries = append(r.entries, entry{})
	copy(r.entries[i+1:], r.entries[i:])
	r.entries[i] = e
}

// ChooseRandomGenome samples one genome uniformly from the rank. Returns
// ok=false if the rank is empty.
func (r *Rank) ChooseRandomGenome(rng *rand.Rand) (Genome, bool) {
	if len(r.entries) == 0 {
		return Genome{}, false
	}
	return r.entries[rng.Intn(len(r.entries))].genome, true
}
