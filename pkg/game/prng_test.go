package game

import "testing"

func TestPRNGServiceDeterministic(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 20; i++ {
		if x, y := a.Intn(100), b.Intn(100); x != y {
			t.Fatalf("draw %d: got %d and %d from the same seed", i, x, y)
		}
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d: got %v and %v from the same seed", i, x, y)
		}
	}
}

func TestPRNGServiceRange(t *testing.T) {
	s := NewPRNGService(0)
	for i := 0; i < 100; i++ {
		if n := s.Intn(3); n < 0 || n >= 3 {
			t.Fatalf("Intn(3) = %d, out of range", n)
		}
		if f := s.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v, out of range", f)
		}
	}
}
