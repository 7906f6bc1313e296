package reduce

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gocolx/colx/core"
	"github.com/gocolx/colx/core/contrib/apply"
)

type categoricalSliceReader struct {
	values []uint32
	pos    int
}

func (r *categoricalSliceReader) SetPosition(p int) { r.pos = p }
func (r *categoricalSliceReader) Read() uint32 {
	r.pos++
	return r.values[r.pos]
}

// TestMutable_AppendOrderFollowsBatchIndex is scenario S4: categorical
// column [0..16), supplier returns an empty list, reducer appends the
// index, combiner concatenates, two batches of 8. Exercised directly
// against Init/DoPart/Result (bypassing the executor's strategy selection)
// so the batch boundaries match the scenario exactly regardless of
// dispatch thresholds.
func TestMutable_AppendOrderFollowsBatchIndex(t *testing.T) {
	values := make([]uint32, 16)
	for i := range values {
		values[i] = uint32(i)
	}

	calc := &Mutable[uint32, []uint32]{
		Size: len(values),
		NewReader: func(upTo int) apply.ElementReader[uint32] {
			return &categoricalSliceReader{values: values[:upTo]}
		},
		Supplier: func() []uint32 { return []uint32{} },
		Reduce:   func(acc []uint32, v uint32) []uint32 { return append(acc, v) },
		Combine:  func(a, b []uint32) []uint32 { return append(a, b...) },
	}

	if err := calc.Init(2); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	// Offer batch 1 before batch 0 to confirm the combine tree, not
	// arrival order, determines the final append order.
	if err := calc.DoPart(8, 16, 1); err != nil {
		t.Fatalf("DoPart(8,16,1) error = %v", err)
	}
	if err := calc.DoPart(0, 8, 0); err != nil {
		t.Fatalf("DoPart(0,8,0) error = %v", err)
	}

	want := []uint32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	if diff := cmp.Diff(want, calc.Result()); diff != "" {
		t.Errorf("Result() mismatch (-want +got):\n%s", diff)
	}
}

func TestMutable_NullSupplierIsRejected(t *testing.T) {
	calc := &Mutable[uint32, []uint32]{
		Size: 4,
		NewReader: func(upTo int) apply.ElementReader[uint32] {
			return &categoricalSliceReader{values: make([]uint32, upTo)}
		},
		Supplier: func() []uint32 { return nil },
		Reduce:   func(acc []uint32, v uint32) []uint32 { return append(acc, v) },
		Combine:  func(a, b []uint32) []uint32 { return append(a, b...) },
	}
	if err := calc.Init(1); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := calc.DoPart(0, 4, 0); err != core.ErrNullSupplier {
		t.Errorf("DoPart() error = %v, want core.ErrNullSupplier", err)
	}
}
