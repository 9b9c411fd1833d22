package gear

import (
	"errors"
	"math"
	"testing"
)

func TestDimensions(t *testing.T) {
	spec := Spec{Teeth: 20, Module: 2}

	dim, err := spec.Dimensions()
	if err != nil {
		t.Fatalf("can't compute dimensions: %v", err)
	}

	checkNear(t, "pitch diameter", dim.PitchDiameter, 40)
	checkNear(t, "addendum", dim.Addendum, 2)
	checkNear(t, "dedendum", dim.Dedendum, 2.5)
	checkNear(t, "whole depth", dim.WholeDepth, 4.5)
	checkNear(t, "outside diameter", dim.OutsideDiameter, 44)
	checkNear(t, "root diameter", dim.RootDiameter, 35)
	checkNear(t, "angular pitch", dim.AngularPitch, 18)
}

func TestDimensionsRelations(t *testing.T) {
	// the derived diameters are locked together, whatever the inputs
	for _, teeth := range []int{3, 12, 20, 61, 127} {
		for _, module := range []float64{0.5, 1, 2, 3.175} {
			spec := Spec{Teeth: teeth, Module: module}
			dim, err := spec.Dimensions()
			if err != nil {
				t.Fatalf("teeth=%d module=%g: %v", teeth, module, err)
			}

			if dim.PitchDiameter != float64(teeth)*module {
				t.Errorf("teeth=%d module=%g: pitch diameter %v, want %v", teeth, module, dim.PitchDiameter, float64(teeth)*module)
			}
			spread := dim.OutsideDiameter - dim.RootDiameter
			if math.Abs(spread-4.5*module) > 1e-9 {
				t.Errorf("teeth=%d module=%g: OD-root spread %v, want %v", teeth, module, spread, 4.5*module)
			}
			if math.Abs(dim.OutsideDiameter-(dim.PitchDiameter+2*dim.Addendum)) > 1e-9 {
				t.Errorf("teeth=%d module=%g: outside diameter %v inconsistent with addendum", teeth, module, dim.OutsideDiameter)
			}
		}
	}
}

func TestDimensionsCustomProportions(t *testing.T) {
	// stub-tooth style coefficients instead of the full-depth defaults
	spec := Spec{Teeth: 20, Module: 2, AddendumFactor: 0.8, DedendumFactor: 1.0}

	dim, err := spec.Dimensions()
	if err != nil {
		t.Fatalf("can't compute dimensions: %v", err)
	}

	checkNear(t, "addendum", dim.Addendum, 1.6)
	checkNear(t, "dedendum", dim.Dedendum, 2.0)
	checkNear(t, "whole depth", dim.WholeDepth, 3.6)
}

func TestDimensionsInvalid(t *testing.T) {
	cases := []struct {
		name string
		spec Spec
	}{
		{"too few teeth", Spec{Teeth: 2, Module: 2}},
		{"zero teeth", Spec{Teeth: 0, Module: 2}},
		{"zero module", Spec{Teeth: 20, Module: 0}},
		{"negative module", Spec{Teeth: 20, Module: -1}},
		{"no root left", Spec{Teeth: 3, Module: 1, DedendumFactor: 2}},
	}

	for _, c := range cases {
		_, err := c.spec.Dimensions()
		if !errors.Is(err, ErrInvalidGearSpec) {
			t.Errorf("%s: got %v, want ErrInvalidGearSpec", c.name, err)
		}
	}
}

func checkNear(t *testing.T, what string, got, want float64) {
	t.Helper()

	epsilon := 0.00001

	if math.Abs(got-want) > epsilon {
		t.Errorf("%s should be %v, got %v", what, want, got)
	}
}
