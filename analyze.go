package scoap

// Result bundles everything a caller needs after a full analysis run:
// the per-net metrics (read via Circuit.Nets/NetByName), how many
// rounds each fixpoint sweep took to converge, and any feedback loops
// the leveler's BFS could not resolve.
type Result struct {
	Circuit               *Circuit
	FeedbackReports       []FeedbackReport
	ControllabilityRounds int
	ObservabilityRounds   int
}

// RunAll levelizes the circuit and runs both engines in the required
// order: leveling and feedback detection, then controllability
// (combinational and sequential), then observability (combinational
// and sequential, which reads the controllability metrics computed
// just before it).
func RunAll(c *Circuit) Result {
	reports := ComputeLevels(c)
	ctlRounds := ComputeControllability(c)
	obsRounds := ComputeObservability(c)
	return Result{
		Circuit:               c,
		FeedbackReports:       reports,
		ControllabilityRounds: ctlRounds,
		ObservabilityRounds:   obsRounds,
	}
}
