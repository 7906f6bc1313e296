package combine

import (
	"math/rand"
	"sync"
	"testing"
)

func TestTree_SequentialOrder(t *testing.T) {
	tree := New(4, func(a, b int) int { return a + b })
	for i := 0; i < 4; i++ {
		tree.Offer(i, i+1)
	}
	if got, want := tree.Root(), 1+2+3+4; got != want {
		t.Errorf("Root() = %d, want %d", got, want)
	}
}

func TestTree_ArrivalOrderIndependent(t *testing.T) {
	combine := func(a, b string) string { return a + b }
	leaves := []string{"a", "b", "c", "d", "e"}

	orders := [][]int{
		{0, 1, 2, 3, 4},
		{4, 3, 2, 1, 0},
		{2, 0, 4, 1, 3},
	}

	var want string
	for i, order := range orders {
		tree := New(len(leaves), combine)
		for _, idx := range order {
			tree.Offer(idx, leaves[idx])
		}
		got := tree.Root()
		if i == 0 {
			want = got
			continue
		}
		if got != want {
			t.Errorf("order %v: Root() = %q, want %q (from order %v)", order, got, want, orders[0])
		}
	}
}

func TestTree_ConcurrentOffer(t *testing.T) {
	const n = 1000
	tree := New(n, func(a, b int) int { return a + b })

	var wg sync.WaitGroup
	perm := rand.Perm(n)
	for _, idx := range perm {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tree.Offer(i, 1)
		}(idx)
	}
	wg.Wait()

	if got := tree.Root(); got != n {
		t.Errorf("Root() = %d, want %d", got, n)
	}
}

func TestTree_RootBeforeCompletePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Root() before every batch offered should panic")
		}
	}()
	tree := New(3, func(a, b int) int { return a + b })
	tree.Offer(0, 1)
	tree.Root()
}

func TestTree_OfferTwicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Offer() called twice for the same batchIndex should panic")
		}
	}()
	tree := New(2, func(a, b int) int { return a + b })
	tree.Offer(0, 1)
	tree.Offer(0, 2)
}

func TestTree_N(t *testing.T) {
	tree := New(7, func(a, b int) int { return a + b })
	if got := tree.N(); got != 7 {
		t.Errorf("N() = %d, want 7", got)
	}
}
