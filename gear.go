package gear

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidGearSpec    = errors.New("invalid gear spec")
	ErrInvalidDepthPlan   = errors.New("invalid depth plan")
	ErrCutterInterference = errors.New("cutter interference")
)

// Spec describes the gear to be cut and the form cutter mounted in the
// spindle. It is constructed once from validated input and not mutated.
type Spec struct {
	Teeth          int
	Module         float64
	CutterDiameter float64
	PressureAngle  float64 // degrees; must match the cutter's form, informational here
	StockLength    float64 // gear width along the rotary axis, mm

	// Tooth proportion coefficients. Zero values mean the standard
	// full-depth system (addendum = m, dedendum = 1.25m).
	AddendumFactor float64
	DedendumFactor float64
}

// Dimensions holds the geometry derived from teeth and module. All fields
// follow from the standard involute formulas; none is independently
// settable.
type Dimensions struct {
	PitchDiameter   float64
	OutsideDiameter float64
	RootDiameter    float64
	Addendum        float64
	Dedendum        float64
	WholeDepth      float64
	AngularPitch    float64 // degrees between adjacent teeth
}

func (s Spec) addendumFactor() float64 {
	if s.AddendumFactor == 0 {
		return 1.0
	}
	return s.AddendumFactor
}

func (s Spec) dedendumFactor() float64 {
	if s.DedendumFactor == 0 {
		return 1.25
	}
	return s.DedendumFactor
}

// Dimensions computes the gear geometry, or fails with ErrInvalidGearSpec
// when the gear is geometrically impossible.
func (s Spec) Dimensions() (Dimensions, error) {
	if s.Teeth < 3 {
		return Dimensions{}, fmt.Errorf("%w: %d teeth, need at least 3", ErrInvalidGearSpec, s.Teeth)
	}
	if s.Module <= 0 {
		return Dimensions{}, fmt.Errorf("%w: module %g, must be positive", ErrInvalidGearSpec, s.Module)
	}

	addendum := s.addendumFactor() * s.Module
	dedendum := s.dedendumFactor() * s.Module
	pitch := float64(s.Teeth) * s.Module

	dim := Dimensions{
		PitchDiameter:   pitch,
		OutsideDiameter: pitch + 2*addendum,
		RootDiameter:    pitch - 2*dedendum,
		Addendum:        addendum,
		Dedendum:        dedendum,
		WholeDepth:      addendum + dedendum,
		AngularPitch:    360.0 / float64(s.Teeth),
	}

	if dim.RootDiameter <= 0 {
		return Dimensions{}, fmt.Errorf("%w: root diameter %g is not positive", ErrInvalidGearSpec, dim.RootDiameter)
	}

	return dim, nil
}
