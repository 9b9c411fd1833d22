package gear

import (
	"errors"
	"math"
	"testing"
)

func TestIndexAngles(t *testing.T) {
	angles, err := IndexAngles(20, 0)
	if err != nil {
		t.Fatalf("can't compute index angles: %v", err)
	}

	if len(angles) != 20 {
		t.Fatalf("got %d angles, want 20", len(angles))
	}
	for i := range angles {
		checkNear(t, "index angle", angles[i], 18*float64(i))
	}
}

func TestIndexAnglesStartOffset(t *testing.T) {
	angles, err := IndexAngles(4, 45)
	if err != nil {
		t.Fatalf("can't compute index angles: %v", err)
	}

	want := []float64{45, 135, 225, 315}
	for i := range want {
		checkNear(t, "index angle", angles[i], want[i])
	}
}

func TestIndexAnglesCoverFullRotation(t *testing.T) {
	for _, teeth := range []int{3, 7, 20, 61, 127} {
		angles, err := IndexAngles(teeth, 0)
		if err != nil {
			t.Fatalf("teeth=%d: %v", teeth, err)
		}

		if len(angles) != teeth {
			t.Errorf("teeth=%d: %d angles", teeth, len(angles))
		}

		pitch := 360.0 / float64(teeth)
		sum := 0.0
		for i := 1; i < len(angles); i++ {
			gap := angles[i] - angles[i-1]
			if math.Abs(gap-pitch) > 1e-9 {
				t.Errorf("teeth=%d: gap %d is %v, want %v", teeth, i, gap, pitch)
			}
			sum += gap
		}
		// closing gap back to the first tooth completes the rotation
		sum += pitch
		if math.Abs(sum-360) > 1e-9 {
			t.Errorf("teeth=%d: gaps sum to %v, want 360", teeth, sum)
		}
	}
}

func TestIndexAnglesInvalid(t *testing.T) {
	for _, teeth := range []int{2, 1, 0, -5} {
		_, err := IndexAngles(teeth, 0)
		if !errors.Is(err, ErrInvalidGearSpec) {
			t.Errorf("teeth=%d: got %v, want ErrInvalidGearSpec", teeth, err)
		}
	}
}
