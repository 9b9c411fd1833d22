package gear

import (
	"fmt"
	"math"
)

// FormCutter is an involute gear cutter: a profiled disc that cuts on its
// periphery. The cutter's tooth form must already match the gear's module
// and tooth count range; here only the disc diameter matters.
type FormCutter struct {
	Diameter float64
}

func (c FormCutter) Radius() float64 {
	return c.Diameter / 2
}

// XClearance returns how far beyond the stock face the cutter centre must
// sit, along the rotary axis, for the cutting edge to clear the face by
// `clearance` mm. Derived from the chord the cutter subtends at that
// clearance.
func (c FormCutter) XClearance(clearance float64) (float64, error) {
	if c.Diameter <= 0 {
		return 0, fmt.Errorf("%w: cutter diameter %g, must be positive", ErrInvalidGearSpec, c.Diameter)
	}
	cosTheta := 1 - 2*clearance/c.Diameter
	if cosTheta <= 0 {
		// clearance of a cutter radius or more is not reachable on the chord
		return 0, fmt.Errorf("%w: clearance %g is not reachable on a %g mm cutter", ErrCutterInterference, clearance, c.Diameter)
	}
	theta := math.Acos(cosTheta)
	return c.Radius() * math.Tan(theta), nil
}

// Overhang returns the half-chord length of the cutter at the given cut
// depth: how far the periphery extends past the cutter centre, along the
// rotary axis, while engaged that deep. Used to check that the cutter
// does not reach the chuck when the centre is at the far gear face.
func (c FormCutter) Overhang(depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	if depth >= c.Diameter {
		return c.Radius()
	}
	return math.Sqrt(depth * (c.Diameter - depth))
}
