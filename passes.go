package gear

import (
	"fmt"
	"math"
)

// PassDepths plans the roughing passes for one tooth gap: an increasing
// sequence of absolute cut depths ending exactly on wholeDepth, with no
// step larger than maxStep. The passes are equal-sized, ceil(h/max) of
// them, rather than max-sized passes with a shallow remainder, so the
// final pass takes the same bite as the rest.
func PassDepths(wholeDepth, maxStep float64) ([]float64, error) {
	if wholeDepth <= 0 {
		return nil, fmt.Errorf("%w: whole depth %g, must be positive", ErrInvalidDepthPlan, wholeDepth)
	}
	if maxStep <= 0 {
		return nil, fmt.Errorf("%w: max depth per pass %g, must be positive", ErrInvalidDepthPlan, maxStep)
	}

	n := int(math.Ceil(wholeDepth / maxStep))
	step := wholeDepth / float64(n)

	depths := make([]float64, n)
	for i := range depths {
		depths[i] = step * float64(i+1)
	}
	// land exactly on the full depth regardless of rounding
	depths[n-1] = wholeDepth

	return depths, nil
}
