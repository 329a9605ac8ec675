package geom

import (
	"math"
	"testing"
)

func TestPerpIsClockwise(t *testing.T) {
	tests := []struct {
		in, want Vec
	}{
		{Up, Right},
		{Right, Down},
		{Down, Left},
		{Left, Up},
	}
	for _, tt := range tests {
		if got := tt.in.Perp(); !got.Equal(tt.want, 1e-12) {
			t.Errorf("Perp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNorm(t *testing.T) {
	v := Vec{3, 4}.Norm()
	if math.Abs(v.Len()-1) > 1e-12 {
		t.Errorf("expected unit length, got %f", v.Len())
	}
	if z := (Vec{}).Norm(); z != (Vec{}) {
		t.Errorf("expected zero vector, got %v", z)
	}
}

func TestMapperRoundTrip(t *testing.T) {
	m, err := NewMapper(Vec{1, -2}, 2.5)
	if err != nil {
		t.Fatalf("NewMapper failed: %v", err)
	}

	p := m.Map(1, 0)
	if !p.Equal(Vec{3.5, -2}, 1e-12) {
		t.Errorf("Map(1, 0) = %v", p)
	}

	x, y := m.Unmap(m.Map(-0.3, 0.7))
	if math.Abs(x+0.3) > 1e-12 || math.Abs(y-0.7) > 1e-12 {
		t.Errorf("round trip gave (%f, %f)", x, y)
	}
}

func TestMapperRejectsNonPositiveUnit(t *testing.T) {
	for _, u := range []float64{0, -1} {
		if _, err := NewMapper(Origin, u); err == nil {
			t.Errorf("unit %f: expected error", u)
		}
	}
}
