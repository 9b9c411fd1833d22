package gear

// Kind discriminates the closed set of motion command variants. The
// emitter switches over it exhaustively.
type Kind int

const (
	Rapid Kind = iota
	Feed
	Index
	Dwell
)

func (k Kind) String() string {
	switch k {
	case Rapid:
		return "rapid"
	case Feed:
		return "feed"
	case Index:
		return "index"
	case Dwell:
		return "dwell"
	}
	return "unknown"
}

// Command is one abstract machine move. Rapid and Feed carry an absolute
// X/Y/Z target (mm), Feed additionally a feed rate (mm/min), Index an
// absolute rotary-axis angle (degrees), Dwell a pause in seconds. Label,
// when set, is rendered as a comment ahead of the command. Commands are
// never mutated after creation.
type Command struct {
	Kind     Kind
	X, Y, Z  float64
	FeedRate float64
	Angle    float64
	Seconds  float64
	Label    string
}

func RapidTo(x, y, z float64) Command {
	return Command{Kind: Rapid, X: x, Y: y, Z: z}
}

func FeedTo(x, y, z, feedRate float64) Command {
	return Command{Kind: Feed, X: x, Y: y, Z: z, FeedRate: feedRate}
}

func IndexTo(angle float64) Command {
	return Command{Kind: Index, Angle: angle}
}

func DwellFor(seconds float64) Command {
	return Command{Kind: Dwell, Seconds: seconds}
}
