package scoap

import "sort"

// ComputeLevels assigns a topological Level to every net reachable from
// a primary input or a flip-flop output, using a breadth-first
// algorithm: each gate has a remaining-fan-in counter initialized to
// its input count; a net's loads have their counters decremented as
// the net is dequeued, and a gate's output is leveled (and enqueued)
// the moment its counter reaches zero.
//
// Nets unreachable from any PI/FF-output keep LevelUndefined, whether
// because nothing drives them or because they sit in a purely
// combinational feedback loop whose gates never see their counter
// reach zero.
//
// ComputeLevels also builds the level-ordered gate sequence used by the
// controllability and observability engines (computed once here and
// reused), and runs the feedback detector, returning its findings.
func ComputeLevels(c *Circuit) []FeedbackReport {
	remaining := make([]int, len(c.gates))
	for i, g := range c.gates {
		remaining[i] = len(g.Inputs)
	}

	for i := range c.nets {
		c.nets[i].Level = LevelUndefined
	}

	queue := make([]NetID, 0, len(c.nets))
	enqueue := func(id NetID, level int) {
		c.nets[id].Level = level
		queue = append(queue, id)
	}

	for _, id := range c.primaryInputs {
		if c.nets[id].Level == LevelUndefined {
			enqueue(id, 0)
		}
	}
	for i := range c.nets {
		if c.nets[i].DrivenByFlipFlop && c.nets[i].Level == LevelUndefined {
			enqueue(NetID(i), 0)
		}
	}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		for _, gid := range c.nets[n].Loads {
			remaining[gid]--
			if remaining[gid] != 0 {
				continue
			}
			g := &c.gates[gid]
			maxIn := 0
			for _, in := range g.Inputs {
				if lv := c.nets[in].Level; lv > maxIn {
					maxIn = lv
				}
			}
			out := g.Output
			if c.nets[out].Level == LevelUndefined {
				enqueue(out, maxIn+1)
			}
		}
	}

	c.levelOrder = levelOrderedGates(c)
	c.levelOrderSet = true

	recordUnreachableNets(c)

	return detectFeedback(c)
}

// recordUnreachableNets flags declared nets with no driver and no load
// at all (S6: an orphaned wire the BFS never had a reason to visit).
// Nets that are merely stuck inside a combinational feedback loop still
// have drivers and loads; those are surfaced by detectFeedback instead,
// not here, so the two diagnostics don't double up on the same net.
func recordUnreachableNets(c *Circuit) {
	for i := range c.nets {
		n := &c.nets[i]
		if n.Level != LevelUndefined {
			continue
		}
		if len(n.Drivers) == 0 && len(n.Loads) == 0 && n.Role != PrimaryInput {
			c.addDiagnostic(Diagnostic{
				Kind:   UnreachableNet,
				Detail: "net " + n.Name + " has no driver and no load",
			})
		}
	}
}

// levelOrderedGates returns gate indices sorted ascending by output net
// level, excluding gates whose output never received a level (Undefined
// gates can't contribute to or receive a finite metric, and including
// them would just mean skipping them again in every pass).
func levelOrderedGates(c *Circuit) []GateID {
	order := make([]GateID, 0, len(c.gates))
	for i, g := range c.gates {
		if c.nets[g.Output].Level != LevelUndefined {
			order = append(order, GateID(i))
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return c.nets[c.gates[order[i]].Output].Level < c.nets[c.gates[order[j]].Output].Level
	})
	return order
}

// ascendingGateOrder returns the cached level-ordered gate sequence,
// computing it on demand if ComputeLevels has not run yet (so
// ComputeControllability/ComputeObservability can be called directly in
// tests without going through RunAll).
func ascendingGateOrder(c *Circuit) []GateID {
	if !c.levelOrderSet {
		c.levelOrder = levelOrderedGates(c)
		c.levelOrderSet = true
	}
	return c.levelOrder
}
