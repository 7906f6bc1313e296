package coldata

import "github.com/gocolx/colx/core"

// NumericColumn is a slice-backed core.NumericColumn.
type NumericColumn struct {
	values []float64
}

// NewNumericColumn wraps values as a NumericColumn. values is borrowed,
// never copied or mutated.
func NewNumericColumn(values []float64) *NumericColumn {
	return &NumericColumn{values: values}
}

func (c *NumericColumn) Size() int { return len(c.values) }

func (c *NumericColumn) NumericReader(upTo int) core.NumericReader {
	return &numericReader{values: c.values[:upTo]}
}

type numericReader struct {
	values []float64
	pos    int
}

func (r *numericReader) SetPosition(p int) { r.pos = p }

func (r *numericReader) Read() float64 {
	r.pos++
	return r.values[r.pos]
}

// RealBuffer is a []float64-backed core.Buffer[float64], used for
// apply-to-real-numeric targets.
type RealBuffer struct {
	values []float64
}

func NewRealBuffer(size int) *RealBuffer {
	return &RealBuffer{values: make([]float64, size)}
}

func (b *RealBuffer) Len() int { return len(b.values) }

func (b *RealBuffer) Set(i int, v float64) { b.values[i] = v }

// Values returns the underlying slice. Only safe to call after the
// execution that populated it has returned successfully.
func (b *RealBuffer) Values() []float64 { return b.values }

// Integer53Buffer is an int64-backed core.Buffer[float64] used for
// apply-to-integer-53-bit targets: every Set truncates or rounds its
// float64 argument to an integer representable exactly in a float64's
// 53-bit mantissa, per the Round flag chosen at construction.
type Integer53Buffer struct {
	values []int64
	round  bool
}

func NewInteger53Buffer(size int, round bool) *Integer53Buffer {
	return &Integer53Buffer{values: make([]int64, size), round: round}
}

func (b *Integer53Buffer) Len() int { return len(b.values) }

func (b *Integer53Buffer) Set(i int, v float64) {
	if b.round {
		b.values[i] = int64(roundHalfAwayFromZero(v))
	} else {
		b.values[i] = int64(v)
	}
}

func (b *Integer53Buffer) Values() []int64 { return b.values }

func roundHalfAwayFromZero(v float64) float64 {
	if v >= 0 {
		return float64(int64(v + 0.5))
	}
	return float64(int64(v - 0.5))
}
