package exec

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gocolx/colx/core"
)

// recordingCalc records every [from, to) interval DoPart was called with,
// for checking the coverage/disjointness and alignment invariants.
type recordingCalc struct {
	n int

	mu        sync.Mutex
	intervals [][2]int
}

func (c *recordingCalc) Init(int) error { return nil }
func (c *recordingCalc) NumOps() int    { return c.n }
func (c *recordingCalc) DoPart(from, to, _ int) error {
	c.mu.Lock()
	c.intervals = append(c.intervals, [2]int{from, to})
	c.mu.Unlock()
	return nil
}
func (c *recordingCalc) Result() [][2]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([][2]int(nil), c.intervals...)
}

func TestExecute_CoverageIsExactPartition(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	sizes := []int{0, 1, 3, 4, 100, 1000, 1_000_000}
	workloads := []core.Workload{core.Huge, core.Large, core.Medium, core.Small}

	for _, n := range sizes {
		for _, w := range workloads {
			calc := &recordingCalc{n: n}
			if _, err := Execute[[][2]int](pool, calc, w, nil); err != nil {
				t.Fatalf("Execute(n=%d, %s) error = %v", n, w, err)
			}
			intervals := calc.Result()

			sort.Slice(intervals, func(i, j int) bool { return intervals[i][0] < intervals[j][0] })

			covered := 0
			for i, iv := range intervals {
				if iv[0] != covered {
					t.Fatalf("n=%d %s: interval %d starts at %d, want %d (gap or overlap)", n, w, i, iv[0], covered)
				}
				if iv[1] < iv[0] {
					t.Fatalf("n=%d %s: interval %d has to(%d) < from(%d)", n, w, i, iv[1], iv[0])
				}
				covered = iv[1]
			}
			if covered != n {
				t.Fatalf("n=%d %s: coverage ends at %d, want %d", n, w, covered, n)
			}
		}
	}
}

func TestExecute_BatchAlignment(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 1_000_003
	for _, w := range []core.Workload{core.Huge, core.Large, core.Medium, core.Small} {
		calc := &recordingCalc{n: n}
		if _, err := Execute[[][2]int](pool, calc, w, nil); err != nil {
			t.Fatalf("Execute(%s) error = %v", w, err)
		}
		for _, iv := range calc.Result() {
			if iv[0]%core.BatchDivisor != 0 {
				t.Errorf("%s: from=%d not a multiple of %d", w, iv[0], core.BatchDivisor)
			}
			if iv[1] != n && iv[1]%core.BatchDivisor != 0 {
				t.Errorf("%s: to=%d neither N nor a multiple of %d", w, iv[1], core.BatchDivisor)
			}
		}
	}
}

type doubleCalc struct {
	in  []float64
	out []float64
}

func (c *doubleCalc) Init(int) error {
	c.out = make([]float64, len(c.in))
	return nil
}
func (c *doubleCalc) NumOps() int { return len(c.in) }
func (c *doubleCalc) DoPart(from, to, _ int) error {
	for i := from; i < to; i++ {
		c.out[i] = c.in[i] * 2
	}
	return nil
}
func (c *doubleCalc) Result() []float64 { return c.out }

func TestExecute_DeterministicResult(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	in := make([]float64, 10_003)
	for i := range in {
		in[i] = float64(i)
	}
	want := make([]float64, len(in))
	for i, v := range in {
		want[i] = v * 2
	}

	for _, w := range []core.Workload{core.Huge, core.Large, core.Medium, core.Small} {
		calc := &doubleCalc{in: in}
		got, err := Execute[[]float64](pool, calc, w, nil)
		if err != nil {
			t.Fatalf("Execute(%s) error = %v", w, err)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("%s: out[%d] = %v, want %v", w, i, got[i], want[i])
			}
		}
	}
}

type cancelCalc struct {
	n         int
	pool      *Pool
	cancelled atomic.Bool
}

func (c *cancelCalc) Init(int) error { return nil }
func (c *cancelCalc) NumOps() int    { return c.n }
func (c *cancelCalc) DoPart(int, int, int) error {
	if c.cancelled.CompareAndSwap(false, true) {
		c.pool.Cancel()
	}
	return nil
}
func (c *cancelCalc) Result() int { return 0 }

func TestExecute_Cancellation(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	calc := &cancelCalc{n: 10_000_000, pool: pool}
	_, err := Execute[int](pool, calc, core.Huge, nil)
	if !errors.Is(err, core.ErrAborted) {
		t.Fatalf("Execute() error = %v, want core.ErrAborted", err)
	}
}

type panicCalc struct {
	n            int
	resultCalled atomic.Bool
}

func (c *panicCalc) Init(int) error { return nil }
func (c *panicCalc) NumOps() int    { return c.n }
func (c *panicCalc) DoPart(_, _, batchIndex int) error {
	panic(fmt.Errorf("batch %d failed", batchIndex))
}
func (c *panicCalc) Result() int {
	c.resultCalled.Store(true)
	return 0
}

func TestExecute_AtMostOneFailure(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	calc := &panicCalc{n: 1_000_000}
	_, err := Execute[int](pool, calc, core.Huge, nil)
	if err == nil {
		t.Fatal("Execute() error = nil, want a batch failure")
	}
	if calc.resultCalled.Load() {
		t.Error("Result() must not be called after a DoPart failure")
	}
}

func TestExecute_ProgressReachesOne(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var mu sync.Mutex
	var values []float64
	progress := func(p float64) {
		mu.Lock()
		values = append(values, p)
		mu.Unlock()
	}

	calc := &recordingCalc{n: 1_000_000}
	if _, err := Execute[[][2]int](pool, calc, core.Huge, progress); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(values) == 0 {
		t.Fatal("progress callback never invoked")
	}
	if last := values[len(values)-1]; last != 1.0 {
		t.Errorf("final progress = %v, want 1.0", last)
	}
}

func TestExecute_EmptyColumn(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	calc := &recordingCalc{n: 0}
	if _, err := Execute[[][2]int](pool, calc, core.Medium, nil); err != nil {
		t.Fatalf("Execute(n=0) error = %v", err)
	}
	intervals := calc.Result()
	if len(intervals) != 1 || intervals[0] != [2]int{0, 0} {
		t.Errorf("intervals = %v, want exactly one [0,0) task", intervals)
	}
}
