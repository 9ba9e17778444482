package utils

import (
	"testing"

	"pgregory.net/rapid"
)

func TestPRNGServiceDeterministic(t *testing.T) {
	a := NewPRNGService(7)
	b := NewPRNGService(7)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("Sequences diverged at draw %d", i)
		}
	}
}

func TestPRNGServiceRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64Range(1, 1<<40).Draw(t, "seed")
		lo := rapid.Float64Range(-100, 100).Draw(t, "lo")
		width := rapid.Float64Range(0.001, 100).Draw(t, "width")

		v := NewPRNGService(seed).Range(lo, lo+width)
		if v < lo || v >= lo+width {
			t.Fatalf("Range(%v, %v) returned %v", lo, lo+width, v)
		}
	})
}

func TestChanceExtremes(t *testing.T) {
	s := NewPRNGService(1)
	for i := 0; i < 50; i++ {
		if s.Chance(0) {
			t.Fatal("Chance(0) must never fire")
		}
		if !s.Chance(1) {
			t.Fatal("Chance(1) must always fire")
		}
	}
}

func TestClamp(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Float64Range(-1e6, 1e6).Draw(t, "v")
		got := Clamp(v, -10, 10)
		if got < -10 || got > 10 {
			t.Fatalf("Clamp(%v) = %v out of bounds", v, got)
		}
		if v >= -10 && v <= 10 && got != v {
			t.Fatalf("Clamp changed in-range value %v to %v", v, got)
		}
	})
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.25); got != 2.5 {
		t.Errorf("Expected 2.5, got %v", got)
	}
}
