package apply

import (
	"errors"
	"testing"

	"github.com/gocolx/colx/core"
	"github.com/gocolx/colx/core/contrib/exec"
)

type sliceReader struct {
	values []float64
	pos    int
}

func (r *sliceReader) SetPosition(p int) { r.pos = p }
func (r *sliceReader) Read() float64 {
	r.pos++
	return r.values[r.pos]
}

type sliceBuffer struct {
	values []float64
}

func (b *sliceBuffer) Len() int            { return len(b.values) }
func (b *sliceBuffer) Set(i int, v float64) { b.values[i] = v }

// TestSingle_DoubleValues is scenario S1: numeric column [1,2,3,4,5],
// operator x -> 2x, workload DEFAULT, P=4.
func TestSingle_DoubleValues(t *testing.T) {
	pool := exec.New(4)
	defer pool.Close()

	source := []float64{1, 2, 3, 4, 5}
	target := &sliceBuffer{}
	calc := &Single[float64, float64]{
		Size: len(source),
		NewReader: func(upTo int) ElementReader[float64] {
			return &sliceReader{values: source[:upTo]}
		},
		Op: func(v float64) float64 { return v * 2 },
		NewTarget: func(size int) core.Buffer[float64] {
			target.values = make([]float64, size)
			return target
		},
	}

	got, err := exec.Execute[core.Buffer[float64]](pool, calc, core.Default, nil)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	want := []float64{2, 4, 6, 8, 10}
	for i, w := range want {
		if got.(*sliceBuffer).values[i] != w {
			t.Errorf("out[%d] = %v, want %v", i, got.(*sliceBuffer).values[i], w)
		}
	}
}

func TestSingle_EmptyColumn(t *testing.T) {
	pool := exec.New(4)
	defer pool.Close()

	calc := &Single[float64, float64]{
		Size: 0,
		NewReader: func(upTo int) ElementReader[float64] {
			return &sliceReader{values: nil}
		},
		Op: func(v float64) float64 { return v },
		NewTarget: func(size int) core.Buffer[float64] {
			return &sliceBuffer{values: make([]float64, size)}
		},
	}

	got, err := exec.Execute[core.Buffer[float64]](pool, calc, core.Default, nil)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got.Len() != 0 {
		t.Errorf("Len() = %d, want 0", got.Len())
	}
}

func TestSingle_OperatorPanicPropagates(t *testing.T) {
	pool := exec.New(4)
	defer pool.Close()

	source := make([]float64, 100)
	calc := &Single[float64, float64]{
		Size: len(source),
		NewReader: func(upTo int) ElementReader[float64] {
			return &sliceReader{values: source[:upTo]}
		},
		Op: func(v float64) float64 { panic("boom") },
		NewTarget: func(size int) core.Buffer[float64] {
			return &sliceBuffer{values: make([]float64, size)}
		},
	}

	_, err := exec.Execute[core.Buffer[float64]](pool, calc, core.Default, nil)
	if err == nil {
		t.Fatal("Execute() error = nil, want a wrapped panic")
	}
	var panicErr *core.PanicError
	if !errors.As(err, &panicErr) {
		t.Errorf("Execute() error = %v, want *core.PanicError", err)
	}
}
