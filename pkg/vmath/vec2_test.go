package vmath

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: 1, Y: -2}

	if got := a.Add(b); got != (Vec2{X: 4, Y: 2}) {
		t.Errorf("Expected {4 2}, got %+v", got)
	}
	if got := a.Sub(b); got != (Vec2{X: 2, Y: 6}) {
		t.Errorf("Expected {2 6}, got %+v", got)
	}
	if got := a.Scale(0.5); got != (Vec2{X: 1.5, Y: 2}) {
		t.Errorf("Expected {1.5 2}, got %+v", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Expected length 5, got %v", got)
	}
	if got := a.Dist(Vec2{}); got != 5 {
		t.Errorf("Expected distance 5, got %v", got)
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(-math.Pi/2, 10)
	if math.Abs(v.X) > 1e-9 || math.Abs(v.Y+10) > 1e-9 {
		t.Errorf("Expected {0 -10}, got %+v", v)
	}
}

func TestIsFinite(t *testing.T) {
	if !(Vec2{X: 1, Y: 2}).IsFinite() {
		t.Error("Expected finite vector")
	}
	if (Vec2{X: math.NaN()}).IsFinite() {
		t.Error("NaN component must not be finite")
	}
	if (Vec2{Y: math.Inf(1)}).IsFinite() {
		t.Error("Inf component must not be finite")
	}
}
