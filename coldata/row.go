package coldata

import "github.com/gocolx/colx/core"

// row is the concrete core.Row every row reader in this package produces.
// Only the slot matching the originating column's read mode is populated;
// the others are left at their zero value.
type row struct {
	n          int
	doubles    []float64
	categories []uint32
	objects    []any
}

func (r *row) Len() int              { return r.n }
func (r *row) Double(i int) float64  { return r.doubles[i] }
func (r *row) Category(i int) uint32 { return r.categories[i] }
func (r *row) Object(i int) any      { return r.objects[i] }

// NumericRowSource builds core.RowReaders over several NumericColumns that
// share a common size, for RowTransformer/RowFilterer/multi-column
// reducers operating purely over numeric sources.
type NumericRowSource struct {
	columns []*NumericColumn
}

func NewNumericRowSource(columns ...*NumericColumn) *NumericRowSource {
	return &NumericRowSource{columns: columns}
}

// Size returns columns[0].Size(), the canonical length —
// mismatched column sizes are a caller error the core tolerates rather
// than validates.
func (s *NumericRowSource) Size() int {
	if len(s.columns) == 0 {
		return 0
	}
	return s.columns[0].Size()
}

// Columns returns the number of columns this source was built from, so the
// façade can reject an empty column list before any worker runs.
func (s *NumericRowSource) Columns() int { return len(s.columns) }

func (s *NumericRowSource) RowReader(upTo int) core.RowReader {
	readers := make([]core.NumericReader, len(s.columns))
	for i, c := range s.columns {
		readers[i] = c.NumericReader(upTo)
	}
	return &numericRowReader{readers: readers}
}

type numericRowReader struct {
	readers []core.NumericReader
}

func (r *numericRowReader) SetPosition(p int) {
	for _, rd := range r.readers {
		rd.SetPosition(p)
	}
}

func (r *numericRowReader) Move() core.Row {
	doubles := make([]float64, len(r.readers))
	for i, rd := range r.readers {
		doubles[i] = rd.Read()
	}
	return &row{n: len(doubles), doubles: doubles}
}

// CategoricalRowSource is the categorical-column counterpart of
// NumericRowSource.
type CategoricalRowSource struct {
	columns []*CategoricalColumn
}

func NewCategoricalRowSource(columns ...*CategoricalColumn) *CategoricalRowSource {
	return &CategoricalRowSource{columns: columns}
}

func (s *CategoricalRowSource) Size() int {
	if len(s.columns) == 0 {
		return 0
	}
	return s.columns[0].Size()
}

func (s *CategoricalRowSource) Columns() int { return len(s.columns) }

func (s *CategoricalRowSource) RowReader(upTo int) core.RowReader {
	readers := make([]core.CategoricalReader, len(s.columns))
	for i, c := range s.columns {
		readers[i] = c.CategoricalReader(upTo)
	}
	return &categoricalRowReader{readers: readers}
}

type categoricalRowReader struct {
	readers []core.CategoricalReader
}

func (r *categoricalRowReader) SetPosition(p int) {
	for _, rd := range r.readers {
		rd.SetPosition(p)
	}
}

func (r *categoricalRowReader) Move() core.Row {
	categories := make([]uint32, len(r.readers))
	for i, rd := range r.readers {
		categories[i] = rd.Read()
	}
	return &row{n: len(categories), categories: categories}
}

// ObjectRowSource is the object-column counterpart of NumericRowSource,
// for N columns sharing one element type T.
type ObjectRowSource[T any] struct {
	columns []*ObjectColumn[T]
}

func NewObjectRowSource[T any](columns ...*ObjectColumn[T]) *ObjectRowSource[T] {
	return &ObjectRowSource[T]{columns: columns}
}

func (s *ObjectRowSource[T]) Size() int {
	if len(s.columns) == 0 {
		return 0
	}
	return s.columns[0].Size()
}

func (s *ObjectRowSource[T]) Columns() int { return len(s.columns) }

func (s *ObjectRowSource[T]) RowReader(upTo int) core.RowReader {
	readers := make([]core.ObjectReader[T], len(s.columns))
	for i, c := range s.columns {
		readers[i] = c.ObjectReader(upTo)
	}
	return &objectRowReader[T]{readers: readers}
}

type objectRowReader[T any] struct {
	readers []core.ObjectReader[T]
}

func (r *objectRowReader[T]) SetPosition(p int) {
	for _, rd := range r.readers {
		rd.SetPosition(p)
	}
}

func (r *objectRowReader[T]) Move() core.Row {
	objects := make([]any, len(r.readers))
	for i, rd := range r.readers {
		objects[i] = rd.Read()
	}
	return &row{n: len(objects), objects: objects}
}

// MixedRowSource builds core.RowReaders over several heterogeneous
// MixedColumns, each contributing one mode-tagged Cell per row.
type MixedRowSource struct {
	columns []*MixedColumn
}

func NewMixedRowSource(columns ...*MixedColumn) *MixedRowSource {
	return &MixedRowSource{columns: columns}
}

func (s *MixedRowSource) Columns() int { return len(s.columns) }

func (s *MixedRowSource) Size() int {
	if len(s.columns) == 0 {
		return 0
	}
	return s.columns[0].Size()
}

func (s *MixedRowSource) RowReader(upTo int) core.RowReader {
	readers := make([]core.MixedReader, len(s.columns))
	for i, c := range s.columns {
		readers[i] = c.MixedReader(upTo)
	}
	return &mixedRowReader{readers: readers}
}

type mixedRowReader struct {
	readers []core.MixedReader
}

func (r *mixedRowReader) SetPosition(p int) {
	for _, rd := range r.readers {
		rd.SetPosition(p)
	}
}

func (r *mixedRowReader) Move() core.Row {
	n := len(r.readers)
	doubles := make([]float64, n)
	categories := make([]uint32, n)
	objects := make([]any, n)
	for i, rd := range r.readers {
		cell := rd.Read()
		switch cell.Kind {
		case core.CellDouble:
			doubles[i] = cell.Double
		case core.CellCategory:
			categories[i] = cell.Category
		case core.CellObject:
			objects[i] = cell.Object
		}
	}
	return &row{n: n, doubles: doubles, categories: categories, objects: objects}
}
