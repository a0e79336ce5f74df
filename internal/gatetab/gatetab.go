// Package gatetab holds the per-gate-type SCOAP formula tables, shared
// by the combinational/sequential controllability pass and the
// combinational/sequential observability pass so the eight-case switch
// on gate type is written once, not four times.
//
// The combinational and sequential variants of each formula are
// identical except for an additive constant (the "+1" level/tick
// addend, present for CC and CO, absent for SC and SO) and which of a
// net's two metrics (CC/CO vs SC/SO) the caller reads and writes, so
// every function here takes that addend as a parameter instead of the
// table being duplicated per mode.
package gatetab

import "github.com/dm47h/scoap/internal/satmath"

// Kind mirrors scoap.GateType's closed set of combinational element
// types, numbered identically, so callers can convert with a plain
// int(typ) cast at the package boundary.
type Kind int

const (
	AND Kind = iota
	NAND
	OR
	NOR
	XOR
	XNOR
	NOT
	BUF
)

// Controllability returns (out0, out1), the two output controllability
// values for a gate of kind k, given the combinational or sequential
// controllability of its inputs and the mode's level/tick addend (1 for
// CC, 0 for SC). in0 and in1 must be the same length and ordered the
// same as the gate's input list; xor/xnor require exactly two inputs.
// An unrecognized kind returns (Infinity, Infinity): the builder accepts
// gate types outside the closed set (with a diagnostic), and this is
// how no metrics propagate through them.
func Controllability(k Kind, in0, in1 []satmath.Metric, addend int) (out0, out1 satmath.Metric) {
	switch k {
	case AND:
		return satmath.Least(in0...).AddInt(addend), satmath.Sum(in1, -1).AddInt(addend)
	case NAND:
		return satmath.Sum(in1, -1).AddInt(addend), satmath.Least(in0...).AddInt(addend)
	case OR:
		return satmath.Sum(in0, -1).AddInt(addend), satmath.Least(in1...).AddInt(addend)
	case NOR:
		return satmath.Least(in1...).AddInt(addend), satmath.Sum(in0, -1).AddInt(addend)
	case XOR:
		return satmath.Least(in0[0].Add(in0[1]), in1[0].Add(in1[1])).AddInt(addend),
			satmath.Least(in0[0].Add(in1[1]), in1[0].Add(in0[1])).AddInt(addend)
	case XNOR:
		return satmath.Least(in0[0].Add(in1[1]), in1[0].Add(in0[1])).AddInt(addend),
			satmath.Least(in0[0].Add(in0[1]), in1[0].Add(in1[1])).AddInt(addend)
	case NOT:
		return in1[0].AddInt(addend), in0[0].AddInt(addend)
	case BUF:
		return in0[0].AddInt(addend), in1[0].AddInt(addend)
	default:
		return satmath.Infinity(), satmath.Infinity()
	}
}

// ObservabilityContribution returns the observability this gate
// contributes to the input at position i, given the gate's own output
// observability outObs, the combinational or sequential controllability
// of its other inputs (cc0/cc1, or SC0/SC1 for the sequential pass),
// and the mode's addend (1 for CO, 0 for SO). xorXnorSupported gates
// the xor/xnor case: it is defined for CO but reserved for SO, so when
// it is false, xor/xnor contribute nothing (Infinity, meaning "no
// update"). outObs == Infinity short-circuits to Infinity without
// inspecting the rest, since an unobservable output can't make
// anything upstream of it observable.
func ObservabilityContribution(k Kind, i int, cc0, cc1 []satmath.Metric, outObs satmath.Metric, addend int, xorXnorSupported bool) satmath.Metric {
	if outObs.IsInfinite() {
		return satmath.Infinity()
	}
	switch k {
	case AND, NAND:
		return outObs.AddInt(addend).Add(satmath.Sum(cc1, i))
	case OR, NOR:
		return outObs.AddInt(addend).Add(satmath.Sum(cc0, i))
	case NOT, BUF:
		return outObs.AddInt(addend)
	case XOR, XNOR:
		if !xorXnorSupported || len(cc0) != 2 {
			return satmath.Infinity()
		}
		other := 1 - i
		return outObs.AddInt(addend).Add(satmath.Least(cc0[other], cc1[other]))
	default:
		return satmath.Infinity()
	}
}
