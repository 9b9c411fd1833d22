package main

import (
	"flag"
	"fmt"
	"os"

	gear "github.com/mbrooker/gear-gen"
)

func main() {
	module := flag.Float64("module", 1, "Set the gear module in mm.")
	teeth := flag.Int("teeth", 0, "Set the number of gear teeth.")
	width := flag.Float64("width", 10, "Set the width of the gear in mm.")
	arcSteps := flag.Int("arc-steps", 6, "Set the number of straight segments used per tooth arc.")
	output := flag.String("output", "gear.stl", "Output STL filename.")
	quiet := flag.Bool("quiet", false, "Suppress output of dimensions.")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gear-gen-render -teeth N [options]\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	spec := gear.Spec{Teeth: *teeth, Module: *module}
	dim, err := spec.Dimensions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *width <= 0 {
		fmt.Fprintf(os.Stderr, "gear width must be positive (got %g)\n", *width)
		os.Exit(1)
	}
	if *arcSteps < 1 {
		*arcSteps = 1
	}

	if !*quiet {
		fmt.Fprintf(os.Stderr, "%d teeth, outside diameter %g mm, root diameter %g mm, %g mm wide.\n",
			*teeth, dim.OutsideDiameter, dim.RootDiameter, *width)
	}

	solid := gearMesh(dim, *teeth, *width, *arcSteps)

	if err := solid.WriteFile(*output); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", *output, err)
		os.Exit(1)
	}

	if !*quiet {
		fmt.Fprintf(os.Stderr, "Wrote %d triangles to %s.\n", len(solid.Triangles), *output)
	}
}
