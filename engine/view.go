package engine

// ============================================================================
// VIEW — zero-copy indexed access to a dataset
// ============================================================================
// The full record set is loaded once and shared read-only. Filtering never
// copies records; it produces a View holding indices into the same backing
// slice. Each recomputation builds a fresh View and discards the old one.
// ============================================================================

// View is a read-only window over a record slice. The zero View is empty.
// A nil index list means the view covers the whole backing slice.
type View struct {
	records []Record
	indices []int
	full    bool
}

// NewView wraps a record slice as a full View. The slice is shared, not
// copied; callers must not mutate it afterwards.
func NewView(records []Record) View {
	return View{records: records, full: true}
}

// sub derives a View restricted to the given view-relative positions.
// Positions must be ascending so row order stays a subsequence of the
// parent's. Positions are translated to backing-slice indices, so sub-views
// of sub-views stay correct.
func (v View) sub(positions []int) View {
	if v.full {
		return View{records: v.records, indices: positions}
	}
	mapped := make([]int, len(positions))
	for i, p := range positions {
		mapped[i] = v.indices[p]
	}
	return View{records: v.records, indices: mapped}
}

// Len returns the number of rows in the view.
func (v View) Len() int {
	if v.full {
		return len(v.records)
	}
	return len(v.indices)
}

// At returns the i-th row of the view. The pointer aims into the shared
// backing slice — read only.
func (v View) At(i int) *Record {
	if v.full {
		return &v.records[i]
	}
	return &v.records[v.indices[i]]
}

// Records materializes the view into a fresh slice. Used by consumers that
// need the filtered rows themselves rather than aggregates over them.
func (v View) Records() []Record {
	out := make([]Record, v.Len())
	for i := 0; i < v.Len(); i++ {
		out[i] = *v.At(i)
	}
	return out
}
