package apply

import (
	"testing"

	"github.com/gocolx/colx/core"
	"github.com/gocolx/colx/core/contrib/exec"
)

type pairRow struct {
	a, b float64
}

func (r pairRow) Len() int              { return 2 }
func (r pairRow) Double(i int) float64  { return [2]float64{r.a, r.b}[i] }
func (r pairRow) Category(int) uint32   { return 0 }
func (r pairRow) Object(int) any        { return nil }

type pairRowReader struct {
	a, b []float64
	pos  int
}

func (r *pairRowReader) SetPosition(p int) { r.pos = p }
func (r *pairRowReader) Move() core.Row {
	r.pos++
	return pairRow{a: r.a[r.pos], b: r.b[r.pos]}
}

func TestRows_SumPair(t *testing.T) {
	pool := exec.New(4)
	defer pool.Close()

	a := []float64{1, 2, 3, 4, 5}
	b := []float64{10, 20, 30, 40, 50}

	calc := &Rows[float64]{
		Size: len(a),
		NewReader: func(upTo int) core.RowReader {
			return &pairRowReader{a: a[:upTo], b: b[:upTo]}
		},
		Op: func(row core.Row) float64 { return row.Double(0) + row.Double(1) },
		NewTarget: func(size int) core.Buffer[float64] {
			return &sliceBuffer{values: make([]float64, size)}
		},
	}

	got, err := exec.Execute[core.Buffer[float64]](pool, calc, core.Default, nil)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	want := []float64{11, 22, 33, 44, 55}
	for i, w := range want {
		if got.(*sliceBuffer).values[i] != w {
			t.Errorf("out[%d] = %v, want %v", i, got.(*sliceBuffer).values[i], w)
		}
	}
}
