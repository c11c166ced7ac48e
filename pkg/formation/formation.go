// pkg/formation/formation.go
package formation

import "math"

// Kind selects the geometric layout of a wave's formation.
type Kind int

const (
	Line Kind = iota
	V
	SineDrift
	Ring
)

func (k Kind) String() string {
	switch k {
	case Line:
		return "LINE"
	case V:
		return "V"
	case SineDrift:
		return "SINE_DRIFT"
	case Ring:
		return "RING"
	default:
		return "UNKNOWN"
	}
}

// Layout tuning. These are part of the formation geometry, not gameplay
// difficulty, so they live here rather than in the game config.
const (
	lineSpacing  = 46.0
	vSpacing     = 44.0
	vDrop        = 14.0 // vertical offset per arm step
	sineAmp      = 60.0
	sineOmega    = 1.6
	sinePhase    = 0.7 // phase stagger per slot, ripple effect
	ringRadius   = 140.0
	ringFlatten  = 0.35 // vertical squash of the ring
	ringSpin     = 0.5  // radians per second
)

// TargetPosition maps a formation slot to its target position at the given
// elapsed time. It is a pure function: identical inputs always produce
// bit-identical outputs, which the simulation relies on for replay tests.
// A degenerate formation (count <= 0, or slot outside [0,count)) collapses
// to the origin.
func TargetPosition(kind Kind, originX, originY float64, slot, count int, elapsed float64) (float64, float64) {
	if count <= 0 || slot < 0 || slot >= count {
		return originX, originY
	}

	switch kind {
	case Line:
		return lineSlot(originX, originY, slot, count)
	case V:
		return vSlot(originX, originY, slot, count)
	case SineDrift:
		x, y := lineSlot(originX, originY, slot, count)
		x += sineAmp * math.Sin(sineOmega*elapsed+sinePhase*float64(slot))
		return x, y
	case Ring:
		ang := 2*math.Pi*float64(slot)/float64(count) + ringSpin*elapsed
		x := originX + math.Cos(ang)*ringRadius
		y := originY + math.Sin(ang)*ringRadius*ringFlatten
		return x, y
	default:
		return originX, originY
	}
}

// lineSlot spaces slots evenly across a horizontal row centered on the origin.
func lineSlot(originX, originY float64, slot, count int) (float64, float64) {
	if count == 1 {
		return originX, originY
	}
	width := lineSpacing * float64(count-1)
	x := originX - width/2 + float64(slot)*lineSpacing
	return x, originY
}

// vSlot places slots symmetrically along two diagonal arms from an apex at
// the origin. Slot 0 sits at the apex for odd counts; even counts straddle it.
func vSlot(originX, originY float64, slot, count int) (float64, float64) {
	offset := float64(slot) - float64(count-1)/2
	x := originX + offset*vSpacing
	y := originY + math.Abs(offset)*vDrop
	return x, y
}
