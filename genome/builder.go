package genome

import (
	"strconv"

	"github.com/google/uuid"
)

// Builder accumulates (path, gene) pairs into a shared gene map. Nested
// calls produce child builders whose writes are prefixed with
// "path/name", mirroring GenomeBuilder::nested in the source — every
// builder derived from the same root shares one underlying map.
type Builder struct {
	path  string
	genes map[string]float32
}

// NewBuilder returns a root builder with an empty path prefix.
func NewBuilder() *Builder {
	return &Builder{genes: make(map[string]float32)}
}

// Nested returns a child builder whose Add calls are prefixed with
// "path/name" (or just "name" at the root).
func (b *Builder) Nested(name string) *Builder {
	path := name
	if b.path != "" {
		path = b.path + "/" + name
	}
	return &Builder{path: path, genes: b.genes}
}

// Add records a single scalar gene under name within this builder's path.
func (b *Builder) Add(name string, value float32) {
	b.genes[b.id(name)] = value
}

// AddMatrix flattens a row-major matrix under this builder's path, one
// gene per cell, keyed "rowIndex/colIndex" the way the source's
// BuildGenome impl for M<R, C> does.
func (b *Builder) AddMatrix(rows [][]float32) {
	for r, row := range rows {
		rowBuilder := b.Nested(index(r))
		for c, value := range row {
			rowBuilder.Add(index(c), value)
		}
	}
}

// AddVector flattens a vector under this builder's path, one gene per
// element, keyed by its index.
func (b *Builder) AddVector(values []float32) {
	for i, value := range values {
		b.Add(index(i), value)
	}
}

// Build finalizes this builder into a Genome, stamping a fresh lineage id.
func (b *Builder) Build() Genome {
	return Genome{genes: b.genes, LineageID: uuid.New()}
}

func (b *Builder) id(name string) string {
	if b.path == "" {
		return name
	}
	return b.path + "/" + name
}

// index renders i as the row/column path segment. The source zero-pads
// to three digits purely for human-readable sort order; correctness here
// does not depend on key ordering, so a plain decimal string suffices.
func index(i int) string {
	return strconv.Itoa(i)
}
