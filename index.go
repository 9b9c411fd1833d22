package gear

import (
	"fmt"
)

// IndexAngles returns the absolute rotary-axis position for each tooth,
// starting from startAngle and spaced by the angular pitch. Absolute
// positions rather than deltas: on a 60-tooth gear, relative indexing
// would compound rounding error additively across the full rotation.
func IndexAngles(teeth int, startAngle float64) ([]float64, error) {
	if teeth < 3 {
		return nil, fmt.Errorf("%w: %d teeth, need at least 3", ErrInvalidGearSpec, teeth)
	}

	pitch := 360.0 / float64(teeth)

	angles := make([]float64, teeth)
	for i := range angles {
		angles[i] = startAngle + float64(i)*pitch
	}

	return angles, nil
}
