package genome

import "strconv"

// Reader mirrors Builder's path-nesting but for lookups instead of writes:
// a view into a Genome scoped to one path prefix, used to apply a stored
// genome back onto a live neural controller's layers.
type Reader struct {
	path   string
	genome Genome
}

// NewReader returns a root reader over g, with an empty path prefix.
func NewReader(g Genome) *Reader {
	return &Reader{genome: g}
}

// Nested returns a child reader scoped to "path/name".
func (r *Reader) Nested(name string) *Reader {
	path := name
	if r.path != "" {
		path = r.path + "/" + name
	}
	return &Reader{path: path, genome: r.genome}
}

// Get returns the gene stored at "path/name" within this reader's scope.
func (r *Reader) Get(name string) (float32, bool) {
	return r.genome.Get(r.id(name))
}

// GetVector reads n sequentially-indexed genes within this reader's scope.
// Missing entries are left at their zero value in the result, and ok
// reports whether every entry was present.
func (r *Reader) GetVector(n int) (values []float32, ok bool) {
	values = make([]float32, n)
	ok = true
	for i := range values {
		v, present := r.Get(strconv.Itoa(i))
		values[i] = v
		ok = ok && present
	}
	return values, ok
}

// GetMatrix reads a rows-by-cols matrix nested under this reader's scope,
// one row-reader per row index.
func (r *Reader) GetMatrix(rows, cols int) (values [][]float32, ok bool) {
	values = make([][]float32, rows)
	ok = true
	for i := range values {
		row, rowOK := r.Nested(strconv.Itoa(i)).GetVector(cols)
		values[i] = row
		ok = ok && rowOK
	}
	return values, ok
}

func (r *Reader) id(name string) string {
	if r.path == "" {
		return name
	}
	return r.path + "/" + name
}
