package arraysum

import (
	"sync"
	"testing"
)

// TestParallelSumConcurrentCallers verifies that one ArraySum can be reduced
// from many goroutines at once, each call spawning its own workers, and that
// every caller observes the sequential result.
func TestParallelSumConcurrentCallers(t *testing.T) {
	a, err := New(50_000, WithSeed(11))
	if err != nil {
		t.Fatal(err)
	}
	want := a.SequentialSum()

	const callers = 64
	var wg sync.WaitGroup
	barrier := make(chan struct{})
	got := make([]int64, callers)
	errs := make([]error, callers)

	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func(id int) {
			defer wg.Done()
			<-barrier
			got[id], errs[id] = a.ParallelSum(id%16 + 1)
		}(i)
	}
	close(barrier)
	wg.Wait()

	for i := range got {
		if errs[i] != nil {
			t.Fatalf("caller %d: %v", i, errs[i])
		}
		if got[i] != want {
			t.Errorf("caller %d (k=%d): sum = %d, want %d", i, i%16+1, got[i], want)
		}
	}
}
