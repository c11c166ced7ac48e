// pkg/formation/formation_test.go
package formation

import (
	"math"
	"testing"
)

const floatTolerance = 0.0001

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestTargetPositionReproducible(t *testing.T) {
	kinds := []Kind{Line, V, SineDrift, Ring}
	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			x1, y1 := TargetPosition(k, 450, 120, 2, 5, 1.375)
			x2, y2 := TargetPosition(k, 450, 120, 2, 5, 1.375)
			if x1 != x2 || y1 != y2 {
				t.Errorf("identical inputs produced different outputs: (%f,%f) vs (%f,%f)", x1, y1, x2, y2)
			}
		})
	}
}

func TestLineSlotsEvenlySpaced(t *testing.T) {
	const count = 5
	xs := make([]float64, count)
	for i := 0; i < count; i++ {
		x, y := TargetPosition(Line, 450, 120, i, count, 0)
		if !almostEqual(y, 120, floatTolerance) {
			t.Errorf("slot %d: expected row y 120, got %f", i, y)
		}
		xs[i] = x
	}
	for i := 1; i < count; i++ {
		gap := xs[i] - xs[i-1]
		if !almostEqual(gap, lineSpacing, floatTolerance) {
			t.Errorf("gap between slots %d and %d is %f, want %f", i-1, i, gap, lineSpacing)
		}
	}
	// Centered on the origin.
	if !almostEqual(xs[0]+xs[count-1], 2*450, floatTolerance) {
		t.Errorf("line not centered: first %f last %f", xs[0], xs[count-1])
	}
}

func TestVSlotsSymmetric(t *testing.T) {
	const count = 5
	x0, y0 := TargetPosition(V, 450, 120, 0, count, 0)
	x4, y4 := TargetPosition(V, 450, 120, 4, count, 0)
	if !almostEqual(x0+x4, 2*450, floatTolerance) {
		t.Errorf("outer slots not mirrored around origin: %f and %f", x0, x4)
	}
	if !almostEqual(y0, y4, floatTolerance) {
		t.Errorf("outer slots at different heights: %f and %f", y0, y4)
	}
	// Apex slot sits at the origin for odd counts.
	x2, y2 := TargetPosition(V, 450, 120, 2, count, 0)
	if !almostEqual(x2, 450, floatTolerance) || !almostEqual(y2, 120, floatTolerance) {
		t.Errorf("apex slot not at origin: (%f,%f)", x2, y2)
	}
	// Arms drop below the apex.
	if y0 <= y2 {
		t.Errorf("arm slot should be below apex: arm %f apex %f", y0, y2)
	}
}

func TestSineDriftOscillatesAroundLine(t *testing.T) {
	lx, ly := TargetPosition(Line, 450, 120, 1, 4, 0)
	sx, sy := TargetPosition(SineDrift, 450, 120, 1, 4, 0)
	if !almostEqual(sy, ly, floatTolerance) {
		t.Errorf("sine drift changed the row height: %f vs %f", sy, ly)
	}
	if math.Abs(sx-lx) > sineAmp+floatTolerance {
		t.Errorf("drift %f exceeds amplitude %f", sx-lx, sineAmp)
	}
	// Staggered phases: two slots at the same instant differ in drift.
	s0, _ := TargetPosition(SineDrift, 450, 120, 0, 4, 2.0)
	s1, _ := TargetPosition(SineDrift, 450, 120, 1, 4, 2.0)
	l0, _ := TargetPosition(Line, 450, 120, 0, 4, 2.0)
	l1, _ := TargetPosition(Line, 450, 120, 1, 4, 2.0)
	if almostEqual(s0-l0, s1-l1, floatTolerance) {
		t.Error("adjacent slots have identical drift, phase stagger missing")
	}
}

func TestRingSlotsOnEllipse(t *testing.T) {
	const count = 8
	for i := 0; i < count; i++ {
		x, y := TargetPosition(Ring, 450, 200, i, count, 0)
		dx := (x - 450) / ringRadius
		dy := (y - 200) / (ringRadius * ringFlatten)
		if !almostEqual(dx*dx+dy*dy, 1.0, floatTolerance) {
			t.Errorf("slot %d off the ring: (%f,%f)", i, x, y)
		}
	}
}

func TestRingRotatesOverTime(t *testing.T) {
	x0, y0 := TargetPosition(Ring, 450, 200, 0, 8, 0)
	x1, y1 := TargetPosition(Ring, 450, 200, 0, 8, 1.0)
	if almostEqual(x0, x1, floatTolerance) && almostEqual(y0, y1, floatTolerance) {
		t.Error("ring did not rotate with elapsed time")
	}
}

func TestDegenerateFormationReturnsOrigin(t *testing.T) {
	tests := []struct {
		name        string
		slot, count int
	}{
		{"zero count", 0, 0},
		{"negative count", 0, -3},
		{"negative slot", -1, 5},
		{"slot past count", 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []Kind{Line, V, SineDrift, Ring} {
				x, y := TargetPosition(k, 450, 120, tt.slot, tt.count, 1.0)
				if x != 450 || y != 120 {
					t.Errorf("%v: expected origin, got (%f,%f)", k, x, y)
				}
			}
		})
	}
}

func TestSingleSlotAtOrigin(t *testing.T) {
	x, y := TargetPosition(Line, 450, 120, 0, 1, 0)
	if !almostEqual(x, 450, floatTolerance) || !almostEqual(y, 120, floatTolerance) {
		t.Errorf("single slot should sit at the origin, got (%f,%f)", x, y)
	}
}
