package gear

import (
	"fmt"
	"strings"
)

// Program pairs a generated command sequence with the job metadata needed
// to render a complete G-code file.
type Program struct {
	Name           string
	ToolNumber     int
	CutterDiameter float64
	RPM            float64
	Coolant        bool

	Commands []Command
}

// Gcode renders the whole program: modal preamble, tool change and
// spindle start, every command in order, then homing and shutdown.
func (p *Program) Gcode() string {
	g := strings.Builder{}

	p.preamble(&g)

	for _, c := range p.Commands {
		if c.Label != "" {
			fmt.Fprintf(&g, "(%s)\n", c.Label)
		}
		switch c.Kind {
		case Rapid:
			fmt.Fprintf(&g, "G0 X%.4f Y%.4f Z%.4f\n", c.X, c.Y, c.Z)
		case Feed:
			fmt.Fprintf(&g, "G1 X%.4f Y%.4f Z%.4f F%g\n", c.X, c.Y, c.Z, c.FeedRate)
		case Index:
			fmt.Fprintf(&g, "G0 A%.4f\n", c.Angle)
		case Dwell:
			fmt.Fprintf(&g, "G4 P%g\n", c.Seconds)
		}
	}

	p.trailer(&g)

	return g.String()
}

func (p *Program) preamble(g *strings.Builder) {
	if p.Name != "" {
		fmt.Fprintf(g, "(%s)\n", p.Name)
	}
	fmt.Fprintf(g, "(T%d D=%g - gear mill)\n", p.ToolNumber, p.CutterDiameter)

	g.WriteString("G90 (Absolute)\n")
	g.WriteString("G54 (G54 Datum)\n")
	g.WriteString("G17 (X-Y Plane)\n")
	g.WriteString("G40 (No cutter compensation)\n")
	g.WriteString("G80 (No cycles)\n")
	g.WriteString("G94 (Feed per minute)\n")
	g.WriteString("G91.1 (Arc absolute mode)\n")
	g.WriteString("G49 (No tool length compensation)\n")
	g.WriteString("M9 (Coolant off)\n")
	g.WriteString("G21 (Metric)\n")
	g.WriteString("G30 (Go home before starting)\n\n")

	// tool change with length compensation, then spindle up
	fmt.Fprintf(g, "T%d G43 H%d M6\n", p.ToolNumber, p.ToolNumber)
	fmt.Fprintf(g, "S%g M3\n", p.RPM)
	if p.Coolant {
		g.WriteString("M8 (Coolant on)\n")
	}
	g.WriteString("\n")
}

func (p *Program) trailer(g *strings.Builder) {
	g.WriteString("\nG30 (Go home)\n")
	g.WriteString("M9 (Coolant off)\n")
	g.WriteString("M5 (Spindle off)\n")
	g.WriteString("M30\n")
}
