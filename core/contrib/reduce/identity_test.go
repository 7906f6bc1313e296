package reduce

import (
	"testing"

	"github.com/gocolx/colx/core"
	"github.com/gocolx/colx/core/contrib/apply"
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

// TestIdentityOp_SumOfOnes is scenario S3: a million ones summed with
// identity 0, reducer +, workload DEFAULT, P=8, run twice for bit-identical
// results.
func TestIdentityOp_SumOfOnes(t *testing.T) {
	pool := exec.New(8)
	defer pool.Close()

	source := make([]float64, 1_000_000)
	for i := range source {
		source[i] = 1
	}

	newCalc := func() *IdentityOp[float64, float64] {
		return &IdentityOp[float64, float64]{
			Size: len(source),
			NewReader: func(upTo int) apply.ElementReader[float64] {
				return &sliceReader{values: source[:upTo]}
			},
			Identity: 0,
			Op:       func(acc float64, v float64) float64 { return acc + v },
			Combine:  func(a, b float64) float64 { return a + b },
		}
	}

	first, err := exec.Execute[float64](pool, newCalc(), core.Default, nil)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if first != 1_000_000.0 {
		t.Errorf("sum = %v, want 1000000", first)
	}

	second, err := exec.Execute[float64](pool, newCalc(), core.Default, nil)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if first != second {
		t.Errorf("sum not bit-identical across runs: %v != %v", first, second)
	}
}

func TestIdentityOp_EmptyColumn(t *testing.T) {
	pool := exec.New(4)
	defer pool.Close()

	calc := &IdentityOp[float64, float64]{
		Size: 0,
		NewReader: func(upTo int) apply.ElementReader[float64] {
			return &sliceReader{}
		},
		Identity: 0,
		Op:       func(acc, v float64) float64 { return acc + v },
		Combine:  func(a, b float64) float64 { return a + b },
	}

	got, err := exec.Execute[float64](pool, calc, core.Default, nil)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got != 0 {
		t.Errorf("sum = %v, want 0", got)
	}
}
