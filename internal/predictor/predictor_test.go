package predictor

import (
	"fmt"
	"testing"
)

func TestBasicSequence(t *testing.T) {
	// S5 — observe a,b,a,b,a,c then check predict() from c (empty) and
	// after re-observing a (b first, weight 2; c second, weight 1).
	p := New(Config{})
	for _, s := range []string{"a", "b", "a", "b", "a", "c"} {
		p.Observe(s)
	}

	if got := p.Predict(); len(got) != 0 {
		t.Fatalf("predict() after c = %v, want empty", got)
	}

	p.Observe("a")
	got := p.Predict()
	want := []string{"b", "c"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("predict() after re-observing a = %v, want %v", got, want)
	}
}

func TestUnknownSourceIsEmpty(t *testing.T) {
	p := New(Config{})
	if got := p.Predict(); got != nil {
		t.Fatalf("predict() before any observe = %v, want nil", got)
	}
}

func TestPredictSortedDescendingNoZeroWeight(t *testing.T) {
	p := New(Config{TopK: 10})
	seq := []string{"a", "x", "a", "y", "a", "y", "a", "z", "a", "z", "a", "z"}
	for _, s := range seq {
		p.Observe(s)
	}
	p.Observe("a")

	got := p.Predict()
	if len(got) == 0 {
		t.Fatal("expected candidates")
	}
	prev := -1.0
	_ = prev
	// Re-derive weights isn't exposed; assert ordering is consistent with
	// observation counts: z(3) > y(2) > x(1).
	want := []string{"z", "y", "x"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("predict() = %v, want %v", got, want)
	}
}

func TestTopKTruncates(t *testing.T) {
	p := New(Config{TopK: 2})
	for _, s := range []string{"a", "x", "a", "y", "a", "z"} {
		p.Observe(s)
	}
	p.Observe("a")

	got := p.Predict()
	if len(got) != 2 {
		t.Fatalf("len(predict()) = %d, want 2", len(got))
	}
}

func TestAdaptiveDecayAndPrune(t *testing.T) {
	p := New(Config{Adaptive: true, Decay: 0.1, MinConf: 0.3, TopK: 10})

	// Build up a strong a->b edge, then introduce a->c repeatedly; decay
	// should eventually erode b's share below MinConf.
	p.Observe("a")
	p.Observe("b")
	p.Observe("a")
	for i := 0; i < 10; i++ {
		p.Observe("a")
		p.Observe("c")
	}
	p.Observe("a")

	got := p.Predict()
	for _, c := range got {
		if c == "b" {
			t.Fatalf("expected b pruned by decay+min-confidence, got %v", got)
		}
	}
}

func TestSelfTransitionIgnored(t *testing.T) {
	p := New(Config{})
	p.Observe("a")
	p.Observe("a")
	p.Observe("a")
	nodes, edges := p.Stats()
	if nodes != 0 || edges != 0 {
		t.Fatalf("self-transitions should not create edges: nodes=%d edges=%d", nodes, edges)
	}
}

func TestStats(t *testing.T) {
	p := New(Config{})
	p.Observe("a")
	p.Observe("b")
	p.Observe("c")
	nodes, edges := p.Stats()
	if nodes != 2 || edges != 2 {
		t.Fatalf("stats = (%d, %d), want (2, 2)", nodes, edges)
	}
}
