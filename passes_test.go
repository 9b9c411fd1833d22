package gear

import (
	"errors"
	"math"
	"testing"
)

func TestPassDepths(t *testing.T) {
	depths, err := PassDepths(4.5, 0.5)
	if err != nil {
		t.Fatalf("can't plan passes: %v", err)
	}

	if len(depths) != 9 {
		t.Fatalf("got %d passes, want 9", len(depths))
	}
	for i := range depths {
		checkNear(t, "pass depth", depths[i], 0.5*float64(i+1))
	}
}

func TestPassDepthsUnevenDivision(t *testing.T) {
	// 4.5/2 would leave a 0.5 remainder pass; instead we get 3 equal passes
	depths, err := PassDepths(4.5, 2)
	if err != nil {
		t.Fatalf("can't plan passes: %v", err)
	}

	if len(depths) != 3 {
		t.Fatalf("got %d passes, want 3", len(depths))
	}
	checkNear(t, "first pass", depths[0], 1.5)
	checkNear(t, "second pass", depths[1], 3.0)
	checkNear(t, "final pass", depths[2], 4.5)
}

func TestPassDepthsProperties(t *testing.T) {
	wholes := []float64{0.1, 1, 2.25, 4.5, 6.75, 11.3}
	steps := []float64{0.1, 0.33, 0.5, 1, 5, 100}

	for _, h := range wholes {
		for _, max := range steps {
			depths, err := PassDepths(h, max)
			if err != nil {
				t.Fatalf("h=%g max=%g: %v", h, max, err)
			}

			want := int(math.Ceil(h / max))
			if len(depths) != want {
				t.Errorf("h=%g max=%g: %d passes, want %d", h, max, len(depths), want)
			}
			if depths[len(depths)-1] != h {
				t.Errorf("h=%g max=%g: final depth %v, want exactly %v", h, max, depths[len(depths)-1], h)
			}

			prev := 0.0
			for i, d := range depths {
				if d <= prev {
					t.Errorf("h=%g max=%g: pass %d depth %v not increasing from %v", h, max, i, d, prev)
				}
				if d-prev > max+1e-9 {
					t.Errorf("h=%g max=%g: pass %d step %v exceeds max %v", h, max, i, d-prev, max)
				}
				prev = d
			}
		}
	}
}

func TestPassDepthsInvalid(t *testing.T) {
	cases := []struct {
		name       string
		whole, max float64
	}{
		{"zero depth", 0, 0.5},
		{"negative depth", -1, 0.5},
		{"zero step", 4.5, 0},
		{"negative step", 4.5, -0.5},
	}

	for _, c := range cases {
		_, err := PassDepths(c.whole, c.max)
		if !errors.Is(err, ErrInvalidDepthPlan) {
			t.Errorf("%s: got %v, want ErrInvalidDepthPlan", c.name, err)
		}
	}
}
