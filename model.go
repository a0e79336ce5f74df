package scoap

import "fmt"

// NetID indexes into Circuit.nets. NoNet is the sentinel for an unbound
// flip-flop port or a gate input that could not be resolved.
type NetID int

// NoNet is the zero-value-unsafe sentinel for "no net bound to this
// port". It is intentionally not 0, since 0 is a valid NetID.
const NoNet NetID = -1

// GateID indexes into Circuit.gates.
type GateID int

// FlipFlopID indexes into Circuit.flipflops.
type FlipFlopID int

// LevelUndefined is the sentinel Level for a net the leveler could not
// reach: either it has no path from a primary input or flip-flop
// output, or it sits inside a combinational feedback loop whose gates
// never see their fan-in counter reach zero.
const LevelUndefined = -1

// NetRole classifies a net as exactly one of the three roles in the
// data model. The zero value is InternalWire, matching the builder's
// auto-creation of nets referenced before being declared.
type NetRole int

const (
	InternalWire NetRole = iota
	PrimaryInput
	PrimaryOutput
)

func (r NetRole) String() string {
	switch r {
	case PrimaryInput:
		return "input"
	case PrimaryOutput:
		return "output"
	default:
		return "wire"
	}
}

// GateType is the closed set of combinational element types this engine
// understands. AddGate accepts any other value but records an
// UnknownGateType diagnostic, and the engines propagate no metrics
// through such a gate.
type GateType int

const (
	AND GateType = iota
	NAND
	OR
	NOR
	XOR
	XNOR
	NOT
	BUF
	// unknownGate is the first value past the closed set; String renders
	// it as "?". AddGate never converts a type to it: an out-of-set type
	// is stored as given, and the engines skip it because gatetab has no
	// formula for it.
	unknownGate
)

var gateTypeNames = [...]string{"and", "nand", "or", "nor", "xor", "xnor", "not", "buf", "?"}

func (t GateType) String() string {
	if int(t) < 0 || int(t) >= len(gateTypeNames) {
		return "?"
	}
	return gateTypeNames[t]
}

// arity reports the input-count requirement for t: a positive exact
// count, or a negative number whose absolute value is a minimum.
func (t GateType) arity() int {
	switch t {
	case XOR, XNOR:
		return 2
	case NOT, BUF:
		return 1
	case AND, NAND, OR, NOR:
		return -1
	default:
		return 0
	}
}

// checkArity validates n against t's arity rule.
func (t GateType) checkArity(n int) bool {
	a := t.arity()
	if a > 0 {
		return n == a
	}
	return n >= -a
}

// FlipFlopType is the closed set of sequential element types named in
// the data model. Only dff propagates sequential metrics today; the
// others are reserved no-ops.
type FlipFlopType int

const (
	DFF FlipFlopType = iota
	TFF
	JKFF
	SRFF
)

var flipFlopTypeNames = [...]string{"dff", "tff", "jkff", "srff"}

func (t FlipFlopType) String() string {
	if int(t) < 0 || int(t) >= len(flipFlopTypeNames) {
		return "?"
	}
	return flipFlopTypeNames[t]
}

// Net is a signal net, keyed by name. Drivers and Loads hold indices
// into Circuit.gates, insertion ordered, not deduplicated (duplicates
// are tolerated, per the data model).
type Net struct {
	Name             string
	Role             NetRole
	DrivenByFlipFlop bool
	Drivers          []GateID
	Loads            []GateID
	Level            int

	CC0, CC1 Metric
	SC0, SC1 Metric
	CO, SO   Metric
}

// Gate is a combinational element. Output is NoNet only transiently
// during construction; a finalized Circuit never contains one.
type Gate struct {
	Name    string
	Type    GateType
	Inputs  []NetID
	Output  NetID
}

// FlipFlop is a sequential element. Unbound ports (e.g. t/j/k/s/r on a
// dff) are NoNet. Only Clk, D, and Q are meaningful for the currently
// implemented dff propagation; the rest exist so the data model can
// represent tff/jkff/srff instances without loss, per the reserved
// Open Question resolution.
type FlipFlop struct {
	Name string
	Type FlipFlopType
	Clk  NetID
	D    NetID
	Q    NetID
	T    NetID
	J    NetID
	K    NetID
	S    NetID
	R    NetID
}

// PortBindings names clk/d/q/t/j/k/s/r by role for AddFlipFlop. Keys
// outside that set are ignored; a port role absent from the map binds
// to NoNet.
type PortBindings map[string]string

// FeedbackReport names one combinational-feedback instance found by
// ComputeLevels: either gate g has an input whose level exceeds g's own
// output level, or g's output never received a level at all because g
// sits directly on a cycle. Both are only possible if a combinational
// cycle routes back into the gate without passing through a flip-flop;
// in the second case OutputLevel and InputLevel are both LevelUndefined.
type FeedbackReport struct {
	Gate        string
	Output      string
	OutputLevel int
	Input       string
	InputLevel  int
}

func (r FeedbackReport) String() string {
	return fmt.Sprintf("feedback: gate %s: input %s (level %d) feeds output %s (level %d)",
		r.Gate, r.Input, r.InputLevel, r.Output, r.OutputLevel)
}

// Circuit is the frozen, indexed netlist produced by Builder.Finalize.
// Topology (nets, gates, flip-flops, and their cross-references) is
// immutable after construction; only the six per-net metric fields and
// the Level field are written, by the analysis engines.
type Circuit struct {
	nets      []Net
	gates     []Gate
	flipflops []FlipFlop

	netIndex map[string]NetID

	primaryInputs  []NetID
	primaryOutputs []NetID

	// levelOrder is the gate index sorted ascending by output net level,
	// computed once by ComputeLevels and reused by both controllability
	// and observability passes (descending is just a reverse iteration).
	levelOrder    []GateID
	levelOrderSet bool

	diagnostics []Diagnostic
}

// NetByID returns a pointer to the net at id, not a copy. Nets and
// NetByName return read-only NetView snapshots instead.
func (c *Circuit) NetByID(id NetID) *Net {
	return &c.nets[id]
}

// GateByID returns the gate at id.
func (c *Circuit) GateByID(id GateID) *Gate {
	return &c.gates[id]
}

// FlipFlopByID returns the flip-flop at id.
func (c *Circuit) FlipFlopByID(id FlipFlopID) *FlipFlop {
	return &c.flipflops[id]
}

// NumNets, NumGates, and NumFlipFlops report the size of the arena.
func (c *Circuit) NumNets() int      { return len(c.nets) }
func (c *Circuit) NumGates() int     { return len(c.gates) }
func (c *Circuit) NumFlipFlops() int { return len(c.flipflops) }

// Diagnostics returns the diagnostics accumulated during build and
// analysis (unknown types, feedback is reported separately via
// ComputeLevels's return value, not here).
func (c *Circuit) Diagnostics() []Diagnostic { return c.diagnostics }

func (c *Circuit) addDiagnostic(d Diagnostic) {
	c.diagnostics = append(c.diagnostics, d)
}
