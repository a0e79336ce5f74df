package scoap

import "log"

// DiagKind classifies a Diagnostic: an engine-phase anomaly that
// degrades gracefully instead of aborting the pipeline.
type DiagKind int

const (
	// UnknownGateType marks a gate built with a type outside the closed
	// GateType set. No metrics propagate through it.
	UnknownGateType DiagKind = iota
	// UnknownFlipFlopType marks a flip-flop of a type this engine does
	// not (yet) propagate sequential metrics for.
	UnknownFlipFlopType
	// UnreachableNet marks a net the leveler never assigned a level to,
	// surfaced as a diagnostic for visibility even though it's not an
	// error (S6 in the testable scenarios).
	UnreachableNet
)

func (k DiagKind) String() string {
	switch k {
	case UnknownGateType:
		return "unknown gate type"
	case UnknownFlipFlopType:
		return "unknown flip-flop type"
	case UnreachableNet:
		return "unreachable net"
	default:
		return "diagnostic"
	}
}

// Diagnostic is a non-fatal engine-phase anomaly. The pipeline never
// stops because of one; it is collected on the Circuit and can be
// inspected or logged by the caller.
type Diagnostic struct {
	Kind   DiagKind
	Detail string
}

func (d Diagnostic) String() string {
	return d.Kind.String() + ": " + d.Detail
}

// LogDiagnostics writes every diagnostic on c to the standard logger,
// one line each. The analysis engines themselves never do this on their
// own; only callers that want visibility call LogDiagnostics explicitly.
func LogDiagnostics(c *Circuit) {
	for _, d := range c.Diagnostics() {
		log.Print(d.String())
	}
}
