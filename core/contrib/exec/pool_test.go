package exec

import (
	"runtime"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestPool_Run(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)
	tasks := make([]func() error, n)
	for i := range tasks {
		i := i
		tasks[i] = func() error {
			results[i] = i * 2
			return nil
		}
	}

	if err := pool.Run(tasks); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestPool_RunFirstErrorWins(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	boom := errBoom{}
	tasks := []func() error{
		func() error { return nil },
		func() error { return boom },
		func() error { return nil },
	}

	if err := pool.Run(tasks); err != boom {
		t.Errorf("Run() error = %v, want %v", err, boom)
	}
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func TestPool_RunEmpty(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if err := pool.Run(nil); err != nil {
		t.Errorf("Run(nil) error = %v, want nil", err)
	}
}

func TestPool_CloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close() // should not panic
}

func TestPool_ClosedPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()

	n := 100
	results := make([]int, n)
	tasks := make([]func() error, n)
	for i := range tasks {
		i := i
		tasks[i] = func() error {
			results[i] = i * 2
			return nil
		}
	}

	if err := pool.Run(tasks); err != nil {
		t.Fatalf("Run() on closed pool error = %v", err)
	}
	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestPool_Cancel(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	if !pool.IsActive() {
		t.Fatal("new pool should be active")
	}
	pool.Cancel()
	if pool.IsActive() {
		t.Error("pool should be inactive after Cancel()")
	}
	if err := pool.RequireActive(); err == nil {
		t.Error("RequireActive() after Cancel() should return an error")
	}
}

func TestPool_Parallelism(t *testing.T) {
	pool := New(6)
	defer pool.Close()

	if got := pool.Parallelism(); got != 6 {
		t.Errorf("Parallelism() = %d, want 6", got)
	}
}
