package scoap

import "github.com/dm47h/scoap/internal/gatetab"

// toGatetabKind converts a scoap.GateType to the matching
// internal/gatetab.Kind. Types outside the closed set fall through to
// an out-of-range Kind value, which gatetab's tables treat as a safe
// no-op (Infinity, Infinity), exactly the "no metrics propagated
// through it" behavior an UnknownGateType diagnostic calls for.
func toGatetabKind(t GateType) gatetab.Kind { return gatetab.Kind(t) }

// ComputeControllability runs both halves of controllability analysis:
// a single forward sweep computing CC0/CC1, then a fixpoint iteration
// computing SC0/SC1. It assumes ComputeLevels has already run (or runs
// the on-demand level ordering itself via ascendingGateOrder).
func ComputeControllability(c *Circuit) (sequentialIterations int) {
	initControllabilityBase(c)
	computeCombinationalControllability(c)
	return computeSequentialControllability(c)
}

// initControllabilityBase seeds CC0/CC1 = 1 for nets that need no
// gate to control: primary inputs and flip-flop outputs. A flip-flop
// output is directly settable via its own clocking, independent of
// whatever drives its data input, so it gets the same base case as a
// primary input instead of starting at Infinity like a combinationally
// driven net.
func initControllabilityBase(c *Circuit) {
	for i := range c.nets {
		n := &c.nets[i]
		if n.Role == PrimaryInput || n.DrivenByFlipFlop {
			n.CC0 = Finite(1)
			n.CC1 = Finite(1)
		} else {
			n.CC0 = Infinity()
			n.CC1 = Infinity()
		}
	}
}

func computeCombinationalControllability(c *Circuit) {
	for _, gid := range ascendingGateOrder(c) {
		g := &c.gates[gid]
		in0 := make([]Metric, len(g.Inputs))
		in1 := make([]Metric, len(g.Inputs))
		for i, in := range g.Inputs {
			in0[i] = c.nets[in].CC0
			in1[i] = c.nets[in].CC1
		}
		out0, out1 := gatetab.Controllability(toGatetabKind(g.Type), in0, in1, 1)
		out := &c.nets[g.Output]
		if out0 < out.CC0 {
			out.CC0 = out0
		}
		if out1 < out.CC1 {
			out.CC1 = out1
		}
	}
}

// computeSequentialControllability runs a combinational-shaped sweep
// (same formulas, no +1) reading and writing SC0/SC1, followed by a
// flip-flop sweep, repeated until a full round makes no change. A
// safety cap bounds the iteration count; it is generous enough that no
// legitimate circuit should ever hit it.
//
// The seed mirrors initControllabilityBase: flip-flop output nets start
// at SC0=SC1=0 alongside primary inputs, not just Infinity. Without that
// seed a pure data loop through a flip-flop (the output feeding back to
// its own d input through combinational gates, with no primary input on
// the data path) can never bootstrap below Infinity. Both the gate
// sweep and the flip-flop sweep would only ever read Infinity operands,
// so the fixpoint would never move off its initial state.
func computeSequentialControllability(c *Circuit) int {
	for i := range c.nets {
		n := &c.nets[i]
		if n.Role == PrimaryInput || n.DrivenByFlipFlop {
			n.SC0 = Finite(0)
			n.SC1 = Finite(0)
		} else {
			n.SC0 = Infinity()
			n.SC1 = Infinity()
		}
	}

	iterCap := sequentialIterationCap(c)
	order := ascendingGateOrder(c)
	iterations := 0
	for ; iterations < iterCap; iterations++ {
		changed := false

		for _, gid := range order {
			g := &c.gates[gid]
			in0 := make([]Metric, len(g.Inputs))
			in1 := make([]Metric, len(g.Inputs))
			for i, in := range g.Inputs {
				in0[i] = c.nets[in].SC0
				in1[i] = c.nets[in].SC1
			}
			out0, out1 := gatetab.Controllability(toGatetabKind(g.Type), in0, in1, 0)
			out := &c.nets[g.Output]
			if out0 < out.SC0 {
				out.SC0 = out0
				changed = true
			}
			if out1 < out.SC1 {
				out.SC1 = out1
				changed = true
			}
		}

		for fi := range c.flipflops {
			if stepFlipFlopSC(c, FlipFlopID(fi)) {
				changed = true
			}
		}

		if !changed {
			break
		}
	}
	return iterations
}

// stepFlipFlopSC applies the dff sequential-controllability update: Q
// becomes controllable one clock tick after D is, once the clock edge
// itself is accounted for. Other flip-flop types are reserved no-ops:
// their UnknownFlipFlopType diagnostic was already recorded at build
// time.
func stepFlipFlopSC(c *Circuit, id FlipFlopID) bool {
	ff := &c.flipflops[id]
	if ff.Type != DFF || ff.Q == NoNet || ff.D == NoNet || ff.Clk == NoNet {
		return false
	}
	d, clk, q := &c.nets[ff.D], &c.nets[ff.Clk], &c.nets[ff.Q]

	edge := clk.SC0.Add(clk.SC1).AddInt(1)
	newSC0 := d.SC0.Add(edge)
	newSC1 := d.SC1.Add(edge)

	changed := false
	if newSC0 < q.SC0 {
		q.SC0 = newSC0
		changed = true
	}
	if newSC1 < q.SC1 {
		q.SC1 = newSC1
		changed = true
	}
	return changed
}

// sequentialIterationCap bounds fixpoint rounds at a multiple of the
// flip-flop count and circuit depth, a defensive bound generous enough
// that no real circuit's fixpoint should ever need it.
func sequentialIterationCap(c *Circuit) int {
	maxLevel := 0
	for _, n := range c.nets {
		if n.Level > maxLevel {
			maxLevel = n.Level
		}
	}
	n := (len(c.flipflops) + 1) * (maxLevel + 2)
	if n < 64 {
		n = 64
	}
	return n
}
