package dice

import (
	"errors"
	"math/rand"
	"testing"
)

func TestRangeBounds(t *testing.T) {
	r := NewRoller(rand.New(rand.NewSource(42)))
	for i := 0; i < 1000; i++ {
		v := r.Range(6, 11)
		if v < 6 || v >= 11 {
			t.Fatalf("Range(6, 11) returned %d", v)
		}
		b := r.Between(-1, 1)
		if b < -1 || b > 1 {
			t.Fatalf("Between(-1, 1) returned %d", b)
		}
	}
	if got := r.Range(5, 5); got != 5 {
		t.Errorf("Expected empty range to return lo, got %d", got)
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	a, err := NewSeeded(7)
	if err != nil {
		t.Fatalf("NewSeeded: %v", err)
	}
	b, _ := NewSeeded(7)
	for i := 0; i < 50; i++ {
		if a.Intn(100) != b.Intn(100) {
			t.Fatal("Expected identical sequences for identical seeds")
		}
	}
	if a.Seed() != 7 {
		t.Errorf("Expected seed 7, got %d", a.Seed())
	}
}

func TestZeroSeedIsReplaced(t *testing.T) {
	r, err := NewSeeded(0)
	if err != nil {
		t.Fatalf("NewSeeded: %v", err)
	}
	if r.Seed() == 0 {
		t.Error("Expected a generated non-zero seed")
	}
}

func TestWeighted(t *testing.T) {
	r := NewRoller(rand.New(rand.NewSource(1)))

	counts := make([]int, 3)
	for i := 0; i < 10000; i++ {
		idx, err := r.Weighted([]int{80, 0, 20})
		if err != nil {
			t.Fatalf("Weighted: %v", err)
		}
		counts[idx]++
	}
	if counts[1] != 0 {
		t.Errorf("Expected zero-weight entry never picked, got %d", counts[1])
	}
	if counts[0] < 7500 || counts[0] > 8500 {
		t.Errorf("Expected about 8000 picks of weight 80, got %d", counts[0])
	}

	if _, err := r.Weighted([]int{0, -3}); !errors.Is(err, ErrNoWeights) {
		t.Errorf("Expected ErrNoWeights, got %v", err)
	}
}
