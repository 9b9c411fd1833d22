package main

import (
	"flag"
	"fmt"
	"os"

	gear "github.com/mbrooker/gear-gen"
)

func main() {
	module := flag.Float64("module", 1, "Set the gear module in mm. Must match the cutter's module.")
	teeth := flag.Int("teeth", 0, "Set the number of gear teeth.")
	width := flag.Float64("width", 0, "Set the width of the gear along the rotary axis in mm.")
	cutterDiameter := flag.Float64("cutter-diameter", 50, "Set the diameter of the cutter in mm.")
	pressureAngle := flag.Float64("pressure-angle", 20, "Set the pressure angle of the cutter form in degrees.")
	addendumFactor := flag.Float64("addendum-factor", 1.0, "Set the addendum as a multiple of the module.")
	dedendumFactor := flag.Float64("dedendum-factor", 1.25, "Set the dedendum as a multiple of the module.")

	maxDepth := flag.Float64("max-depth", 0.5, "Set the maximum depth of cut per pass in mm.")
	feed := flag.Float64("feed-rate", 60, "Set the cutting feed rate in mm/min.")
	rpm := flag.Float64("speed", 650, "Set the spindle speed in RPM.")
	clearance := flag.Float64("clearance", gear.DefaultClearance, "Set the clearance to keep between cutter and stock on approach and retract moves, in mm.")
	chuckClearance := flag.Float64("chuck-clearance", 0, "Set the distance from the far gear face to the chuck jaws in mm, to check the cutter can't reach them. 0 skips the check.")
	startAngle := flag.Float64("start-angle", 0, "Set the rotary axis angle of the first tooth in degrees.")
	leadInFeed := flag.Bool("feed-lead-in", false, "Move down to cutting depth at feed rate instead of rapid, for machines that can't take a rapid lead-in.")
	spindleDwell := flag.Float64("spindle-dwell", 0, "Pause this many seconds after spindle start before cutting.")

	name := flag.String("name", "", "Set the job name, emitted as a comment on the first line.")
	tool := flag.Int("tool", 1, "Set the tool number for the cut.")
	coolant := flag.Bool("coolant", false, "Turn on coolant for the cut.")
	output := flag.String("output", "", "Write G-code to this file instead of stdout. Refuses to overwrite.")
	quiet := flag.Bool("quiet", false, "Suppress output of gear dimensions and setup instructions.")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gear-gen -teeth N -width W [options]\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *teeth < 3 {
		fmt.Fprintf(os.Stderr, "need at least 3 teeth (got %d); set -teeth\n", *teeth)
		os.Exit(1)
	}
	if *module <= 0 {
		fmt.Fprintf(os.Stderr, "module must be positive (got %g)\n", *module)
		os.Exit(1)
	}
	if *width <= 0 {
		fmt.Fprintf(os.Stderr, "gear width must be positive (got %g); set -width\n", *width)
		os.Exit(1)
	}
	if *cutterDiameter <= 0 {
		fmt.Fprintf(os.Stderr, "cutter diameter must be positive (got %g)\n", *cutterDiameter)
		os.Exit(1)
	}
	if *feed <= 0 || *rpm <= 0 {
		fmt.Fprintf(os.Stderr, "feed rate and spindle speed must be positive\n")
		os.Exit(1)
	}

	spec := gear.Spec{
		Teeth:          *teeth,
		Module:         *module,
		CutterDiameter: *cutterDiameter,
		PressureAngle:  *pressureAngle,
		StockLength:    *width,
		AddendumFactor: *addendumFactor,
		DedendumFactor: *dedendumFactor,
	}
	cut := gear.CuttingParams{
		MaxDepthPerPass: *maxDepth,
		FeedRate:        *feed,
		Clearance:       *clearance,
		ChuckClearance:  *chuckClearance,
		StartAngle:      *startAngle,
		LeadInFeed:      *leadInFeed,
		SpindleDwell:    *spindleDwell,
	}

	dim, err := spec.Dimensions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if !*quiet {
		fmt.Fprintf(os.Stderr, "Pitch diameter %g mm, outside diameter %g mm, whole depth %g mm.\n",
			dim.PitchDiameter, dim.OutsideDiameter, dim.WholeDepth)
		fmt.Fprintf(os.Stderr, "Before cut:\n")
		fmt.Fprintf(os.Stderr, " - Create stock with OD %g mm\n", dim.OutsideDiameter)
		fmt.Fprintf(os.Stderr, " - Set home to centre of right face of stock\n")
		fmt.Fprintf(os.Stderr, " - Home the A axis to %g degrees\n", *startAngle)
	}

	cmds, err := gear.Generate(spec, cut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	prog := gear.Program{
		Name:           *name,
		ToolNumber:     *tool,
		CutterDiameter: *cutterDiameter,
		RPM:            *rpm,
		Coolant:        *coolant,
		Commands:       cmds,
	}
	gcode := prog.Gcode()

	if *output == "" || *output == "-" {
		os.Stdout.WriteString(gcode)
		return
	}

	f, err := os.OpenFile(*output, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if _, err := f.WriteString(gcode); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", *output, err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close %s: %v\n", *output, err)
		os.Exit(1)
	}
}
