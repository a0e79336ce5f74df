package scoap

import "github.com/dm47h/scoap/internal/gatetab"

// ComputeObservability runs both halves of observability analysis: a
// single reverse sweep computing CO, then a fixpoint iteration
// computing SO. It reuses the same level ordering ComputeControllability
// relies on, just walked back to front.
func ComputeObservability(c *Circuit) (sequentialIterations int) {
	initObservabilityBase(c)
	computeCombinationalObservability(c)
	return computeSequentialObservability(c)
}

func initObservabilityBase(c *Circuit) {
	for i := range c.nets {
		n := &c.nets[i]
		if n.Role == PrimaryOutput {
			n.CO = Finite(0)
		} else {
			n.CO = Infinity()
		}
	}
}

func descendingGateOrder(c *Circuit) []GateID {
	asc := ascendingGateOrder(c)
	desc := make([]GateID, len(asc))
	for i, g := range asc {
		desc[len(asc)-1-i] = g
	}
	return desc
}

func computeCombinationalObservability(c *Circuit) {
	for _, gid := range descendingGateOrder(c) {
		g := &c.gates[gid]
		cc0 := make([]Metric, len(g.Inputs))
		cc1 := make([]Metric, len(g.Inputs))
		for i, in := range g.Inputs {
			cc0[i] = c.nets[in].CC0
			cc1[i] = c.nets[in].CC1
		}
		outObs := c.nets[g.Output].CO
		kind := toGatetabKind(g.Type)
		for i, in := range g.Inputs {
			contribution := gatetab.ObservabilityContribution(kind, i, cc0, cc1, outObs, 1, true)
			inNet := &c.nets[in]
			if contribution < inNet.CO {
				inNet.CO = contribution
			}
		}
	}
}

// computeSequentialObservability mirrors computeSequentialControllability:
// a reverse combinational-shaped sweep over SO (addend 0, xor/xnor
// reserved), interleaved with the flip-flop backward rule
// SO(d) = min(SO(d), SO(q) + SC0(clk) + SC1(clk) + 1), to a fixpoint.
func computeSequentialObservability(c *Circuit) int {
	for i := range c.nets {
		n := &c.nets[i]
		if n.Role == PrimaryOutput {
			n.SO = Finite(0)
		} else {
			n.SO = Infinity()
		}
	}

	iterCap := sequentialIterationCap(c)
	order := descendingGateOrder(c)
	iterations := 0
	for ; iterations < iterCap; iterations++ {
		changed := false

		for _, gid := range order {
			g := &c.gates[gid]
			sc0 := make([]Metric, len(g.Inputs))
			sc1 := make([]Metric, len(g.Inputs))
			for i, in := range g.Inputs {
				sc0[i] = c.nets[in].SC0
				sc1[i] = c.nets[in].SC1
			}
			outObs := c.nets[g.Output].SO
			kind := toGatetabKind(g.Type)
			for i, in := range g.Inputs {
				contribution := gatetab.ObservabilityContribution(kind, i, sc0, sc1, outObs, 0, false)
				inNet := &c.nets[in]
				if contribution < inNet.SO {
					inNet.SO = contribution
					changed = true
				}
			}
		}

		for fi := range c.flipflops {
			if stepFlipFlopSO(c, FlipFlopID(fi)) {
				changed = true
			}
		}

		if !changed {
			break
		}
	}
	return iterations
}

// stepFlipFlopSO applies the dff sequential-observability backward
// rule: D is observed by observing Q after one clock edge, so SO(d)
// depends on SO(q) plus the clock net's own controllability. Other
// flip-flop types are reserved no-ops.
func stepFlipFlopSO(c *Circuit, id FlipFlopID) bool {
	ff := &c.flipflops[id]
	if ff.Type != DFF || ff.Q == NoNet || ff.D == NoNet || ff.Clk == NoNet {
		return false
	}
	d, clk, q := &c.nets[ff.D], &c.nets[ff.Clk], &c.nets[ff.Q]

	newSO := q.SO.Add(clk.SC0).Add(clk.SC1).AddInt(1)
	if newSO < d.SO {
		d.SO = newSO
		return true
	}
	return false
}
