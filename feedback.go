package scoap

// detectFeedback runs in two passes.
//
// The first pass checks every gate whose output received a finite
// level against its inputs: any input with a strictly higher level
// than the output is evidence of a combinational loop that pure level
// order could not resolve cleanly.
//
// That pass alone misses the common case: a gate sitting directly on a
// cycle never gets a defined output level at all (its fan-in counter
// never reaches zero), so it never reaches the first pass's check. The
// second pass catches exactly that: a depth-first walk over the
// subgraph of nets the leveler left Undefined, following each net
// forward to the gates it loads. A net revisited while still on the
// walk's current path (gray) closes a cycle; the gate whose output
// closes it is reported. Nets the leveler did level are never visited
// here, since they provably can't be part of an unresolved cycle, so
// the two passes never double-report the same gate.
func detectFeedback(c *Circuit) []FeedbackReport {
	var reports []FeedbackReport
	reported := make(map[GateID]bool)

	for i := range c.gates {
		g := &c.gates[i]
		outLevel := c.nets[g.Output].Level
		if outLevel == LevelUndefined {
			continue
		}
		for _, in := range g.Inputs {
			inLevel := c.nets[in].Level
			if inLevel == LevelUndefined || inLevel <= outLevel {
				continue
			}
			reports = append(reports, FeedbackReport{
				Gate:        g.Name,
				Output:      c.nets[g.Output].Name,
				OutputLevel: outLevel,
				Input:       c.nets[in].Name,
				InputLevel:  inLevel,
			})
			reported[GateID(i)] = true
			break
		}
	}

	const (
		white = iota
		gray
		black
	)
	color := make(map[NetID]int)

	var visit func(n NetID)
	visit = func(n NetID) {
		color[n] = gray
		for _, gid := range c.nets[n].Loads {
			g := &c.gates[gid]
			out := g.Output
			if c.nets[out].Level != LevelUndefined {
				continue
			}
			switch color[out] {
			case gray:
				if !reported[gid] {
					reports = append(reports, FeedbackReport{
						Gate:        g.Name,
						Output:      c.nets[out].Name,
						OutputLevel: LevelUndefined,
						Input:       c.nets[n].Name,
						InputLevel:  LevelUndefined,
					})
					reported[gid] = true
				}
			case white:
				visit(out)
			}
		}
		color[n] = black
	}

	for i := range c.nets {
		n := NetID(i)
		if c.nets[n].Level == LevelUndefined && color[n] == white {
			visit(n)
		}
	}

	return reports
}
