package datasource

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// RowFilter selects a subset of a source's rows.
type RowFilter interface {
	// bitmap returns the selected rows for a source with n rows.
	bitmap(n int) *roaring.Bitmap
}

// IndexFilter selects rows by explicit index. Out-of-range indexes are
// ignored.
type IndexFilter []int

func (f IndexFilter) bitmap(n int) *roaring.Bitmap {
	rb := roaring.New()
	for _, i := range f {
		if i >= 0 && i < n {
			rb.Add(uint32(i))
		}
	}
	return rb
}

// BooleanFilter selects rows whose mask entry is true. A mask shorter
// than the source leaves the remaining rows unselected.
type BooleanFilter []bool

func (f BooleanFilter) bitmap(n int) *roaring.Bitmap {
	rb := roaring.New()
	for i, keep := range f {
		if i >= n {
			break
		}
		if keep {
			rb.Add(uint32(i))
		}
	}
	return rb
}

// AllRows selects every row.
type AllRows struct{}

func (AllRows) bitmap(n int) *roaring.Bitmap {
	rb := roaring.New()
	if n > 0 {
		rb.AddRange(0, uint64(n))
	}
	return rb
}

// View is a filtered window onto a ColumnSource, determining which rows
// of a data-bound annotation render. Filters intersect (AND logic).
//
// The view snapshots its row set at construction; rebuild it after the
// source changes shape.
type View struct {
	source ColumnSource
	bits   *roaring.Bitmap
}

// NewView creates a view over the source. With no filters every row is
// selected.
func NewView(source ColumnSource, filters ...RowFilter) (*View, error) {
	if source == nil {
		return nil, fmt.Errorf("datasource: view requires a source")
	}
	n := source.RowCount()
	bits := AllRows{}.bitmap(n)
	for _, f := range filters {
		bits.And(f.bitmap(n))
	}
	return &View{source: source, bits: bits}, nil
}

// Source returns the underlying source.
func (v *View) Source() ColumnSource { return v.source }

// Contains reports whether the row is selected.
func (v *View) Contains(row int) bool {
	return row >= 0 && v.bits.Contains(uint32(row))
}

// Rows returns the selected row indexes in ascending order.
func (v *View) Rows() []int {
	out := make([]int, 0, v.bits.GetCardinality())
	it := v.bits.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

// Cardinality returns the number of selected rows.
func (v *View) Cardinality() int { return int(v.bits.GetCardinality()) }

// Union merges another view's row set into this one. Both views must
// share the same source.
func (v *View) Union(o *View) error {
	if v.source != o.source {
		return fmt.Errorf("datasource: cannot union views over different sources")
	}
	v.bits.Or(o.bits)
	return nil
}
