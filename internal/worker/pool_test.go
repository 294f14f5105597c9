package worker_test

import (
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/remaimber-it/clozeit/internal/worker"
)

func TestPool_AllJobsReported(t *testing.T) {
	p := worker.NewPool[int](3, 10)
	for i := 0; i < 10; i++ {
		p.Submit(i, func() int { return i * i })
	}
	p.Close()

	seen := make(map[int]int)
	for r := range p.Results() {
		seen[r.JobID] = r.Output
	}
	if len(seen) != 10 {
		t.Fatalf("expected 10 results, got %d", len(seen))
	}
	for id, out := range seen {
		if out != id*id {
			t.Errorf("job %d: expected %d, got %d", id, id*id, out)
		}
	}
}

func TestMap_PreservesOrder(t *testing.T) {
	inputs := []string{"a", "bb", "ccc", "dddd", "eeeee"}

	got := worker.Map(2, inputs, strings.ToUpper)

	want := []string{"A", "BB", "CCC", "DDDD", "EEEEE"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Map mismatch (-want +got):\n%s", diff)
	}
}

func TestMap_Empty(t *testing.T) {
	var calls atomic.Int32
	got := worker.Map(4, nil, func(s string) string {
		calls.Add(1)
		return s
	})
	if len(got) != 0 || calls.Load() != 0 {
		t.Errorf("expected no work, got %v after %d calls", got, calls.Load())
	}
}

func TestMap_ZeroWorkersStillRuns(t *testing.T) {
	got := worker.Map(0, []int{1, 2, 3}, func(n int) int { return n + 1 })
	if diff := cmp.Diff([]int{2, 3, 4}, got); diff != "" {
		t.Errorf("Map mismatch (-want +got):\n%s", diff)
	}
}
