package gear

import (
	"fmt"
)

// DefaultClearance is how far, in mm, the cutter edge stays clear of the
// stock while moving between cuts, unless overridden.
const DefaultClearance = 4.0

// CuttingParams carries the machining parameters that are independent of
// the gear geometry.
type CuttingParams struct {
	MaxDepthPerPass float64
	FeedRate        float64 // mm/min for the cutting traverse

	// Clearance between cutter edge and stock on approach and retract
	// moves. Zero means DefaultClearance.
	Clearance float64

	// Distance from the far gear face to the chuck jaws. When positive,
	// generation fails with ErrCutterInterference if the cutter periphery
	// would reach the chuck at full depth. Zero disables the check.
	ChuckClearance float64

	// Rotary-axis angle of the first tooth. The operator homes the A axis
	// here before starting; no index move is emitted for the first tooth.
	StartAngle float64

	// Feed, rather than rapid, from the safe approach position down to
	// cutting depth. Worth enabling on machines too flexible to take the
	// shock load of a rapid lead-in.
	LeadInFeed bool

	// Seconds to pause before the first approach, letting the spindle
	// reach speed. Zero emits no dwell.
	SpindleDwell float64
}

func (p CuttingParams) clearance() float64 {
	if p.Clearance == 0 {
		return DefaultClearance
	}
	return p.Clearance
}

// synthesizer state, advanced once per emitted command
type genState int

const (
	approachPending genState = iota
	cutting
	retractPending
	indexing
	genDone
)

// Generate produces the complete ordered command sequence for cutting one
// gear: for each tooth, all depth passes, then an index move to the next
// tooth. Each pass is a fixed four-move cycle: rapid to the approach
// position clear of the stock, lead in to cutting depth, feed across the
// full stock length right-to-left, rapid retract clear of the stock.
//
// The traverse direction is the same for every cut so that the work is
// always milled conventionally. All passes for a tooth complete before
// indexing to the next.
//
// On any validation failure no commands are returned.
func Generate(spec Spec, cut CuttingParams) ([]Command, error) {
	dim, err := spec.Dimensions()
	if err != nil {
		return nil, err
	}
	depths, err := PassDepths(dim.WholeDepth, cut.MaxDepthPerPass)
	if err != nil {
		return nil, err
	}
	angles, err := IndexAngles(spec.Teeth, cut.StartAngle)
	if err != nil {
		return nil, err
	}

	cutter := FormCutter{Diameter: spec.CutterDiameter}
	xClear, err := cutter.XClearance(cut.clearance())
	if err != nil {
		return nil, err
	}
	if cut.ChuckClearance > 0 {
		if over := cutter.Overhang(dim.WholeDepth); over > cut.ChuckClearance {
			return nil, fmt.Errorf("%w: cutter overhangs the far face by %.3f mm at full depth, chuck is %.3f mm away",
				ErrCutterInterference, over, cut.ChuckClearance)
		}
	}

	// The stock is a cylinder at the outside diameter, held in the chuck
	// along -X, with the machine home at the centre of its right face.
	// Y positions place the cutter centre: safeY keeps the edge clear of
	// the stock by the configured clearance, cutY engages it to depth.
	stockRadius := dim.OutsideDiameter / 2
	safeY := stockRadius + cutter.Radius() + cut.clearance()
	cutY := func(depth float64) float64 {
		return stockRadius + cutter.Radius() - depth
	}

	var cmds []Command
	if cut.SpindleDwell > 0 {
		cmds = append(cmds, DwellFor(cut.SpindleDwell))
	}

	tooth := 0
	pass := 0
	state := approachPending

	for state != genDone {
		switch state {
		case approachPending:
			approach := RapidTo(xClear, safeY, 0)
			if tooth == 0 && pass == 0 {
				approach.Label = fmt.Sprintf("tooth 1 of %d", spec.Teeth)
			}
			cmds = append(cmds, approach)

			lead := RapidTo(xClear, cutY(depths[pass]), 0)
			if cut.LeadInFeed {
				lead = FeedTo(xClear, cutY(depths[pass]), 0, cut.FeedRate)
			}
			lead.Label = fmt.Sprintf("pass at depth %.4f", depths[pass])
			cmds = append(cmds, lead)

			state = cutting

		case cutting:
			// right-to-left across the whole stock, never reversed
			cmds = append(cmds, FeedTo(-spec.StockLength, cutY(depths[pass]), 0, cut.FeedRate))
			state = retractPending

		case retractPending:
			cmds = append(cmds, RapidTo(-spec.StockLength, safeY, 0))

			pass++
			if pass < len(depths) {
				state = approachPending
			} else if tooth+1 < spec.Teeth {
				pass = 0
				tooth++
				state = indexing
			} else {
				state = genDone
			}

		case indexing:
			idx := IndexTo(angles[tooth])
			idx.Label = fmt.Sprintf("tooth %d of %d", tooth+1, spec.Teeth)
			cmds = append(cmds, idx)
			state = approachPending
		}
	}

	return cmds, nil
}
