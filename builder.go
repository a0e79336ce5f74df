package scoap

import "github.com/pkg/errors"

// Builder accumulates incremental declarations from an external netlist
// parser (parsing itself is out of scope for this package) and
// produces a validated, indexed Circuit on Finalize. A Builder has
// exclusive mutation rights over the graph it is building; once
// Finalize returns, the resulting Circuit's topology is immutable.
//
// The zero value is not usable; construct one with NewBuilder.
type Builder struct {
	nets      []Net
	netIndex  map[string]NetID
	gateNames map[string]GateID
	ffNames   map[string]FlipFlopID

	gates     []Gate
	flipflops []FlipFlop

	primaryInputs  []NetID
	primaryOutputs []NetID

	diagnostics []Diagnostic

	done bool
}

// NewBuilder returns an empty Builder ready to accept declarations.
func NewBuilder() *Builder {
	return &Builder{
		netIndex:  make(map[string]NetID),
		gateNames: make(map[string]GateID),
		ffNames:   make(map[string]FlipFlopID),
	}
}

// netOrNew returns the NetID for name, creating it as an InternalWire if
// it has not been seen before: any referenced net not yet declared is
// created as an internal wire.
func (b *Builder) netOrNew(name string) NetID {
	if id, ok := b.netIndex[name]; ok {
		return id
	}
	id := NetID(len(b.nets))
	b.nets = append(b.nets, Net{Name: name, Role: InternalWire})
	b.netIndex[name] = id
	return id
}

// declare sets or reaffirms a net's role. A net declared twice with the
// same role is fine (parsers may re-emit declarations); declaring it
// with conflicting roles is not something the spec asks us to reject,
// so the second declaration simply wins, matching the builder's
// generally permissive stance on redeclaration.
func (b *Builder) declare(name string, role NetRole) NetID {
	id := b.netOrNew(name)
	b.nets[id].Role = role
	return id
}

// DeclareInput declares name as a primary input net.
func (b *Builder) DeclareInput(name string) error {
	if b.done {
		return errors.New("scoap: builder already finalized")
	}
	id := b.declare(name, PrimaryInput)
	b.primaryInputs = append(b.primaryInputs, id)
	return nil
}

// DeclareOutput declares name as a primary output net.
func (b *Builder) DeclareOutput(name string) error {
	if b.done {
		return errors.New("scoap: builder already finalized")
	}
	id := b.declare(name, PrimaryOutput)
	b.primaryOutputs = append(b.primaryOutputs, id)
	return nil
}

// DeclareWire declares name as a plain internal wire. This is mostly
// useful for pre-creating nets that end up with no driver and no load
// (S6): without an explicit declaration such a net would simply never
// come to exist, which is also a legal (if useless) outcome.
func (b *Builder) DeclareWire(name string) error {
	if b.done {
		return errors.New("scoap: builder already finalized")
	}
	b.netOrNew(name)
	return nil
}

// AddGate adds a combinational gate instance. inputNets must satisfy
// typ's arity rule (xor/xnor exactly 2, not/buf exactly 1, the rest at
// least 1); violations are reported as ArityError. Reusing an instance
// name already used by another gate is reported as DuplicateInstance;
// the flip-flop namespace is independent.
func (b *Builder) AddGate(typ GateType, instanceName, outputNet string, inputNets ...string) error {
	if b.done {
		return errors.New("scoap: builder already finalized")
	}
	if _, ok := b.gateNames[instanceName]; ok {
		return duplicateInstanceError("gate", instanceName)
	}

	known := typ >= AND && typ <= BUF
	if known && !typ.checkArity(len(inputNets)) {
		return arityError(typ, instanceName, len(inputNets), typ.arity())
	}
	if !known {
		b.diagnostics = append(b.diagnostics, Diagnostic{
			Kind:   UnknownGateType,
			Detail: "gate " + instanceName + " has unrecognized type; no metrics will propagate through it",
		})
	}

	out := b.netOrNew(outputNet)
	ins := make([]NetID, len(inputNets))
	for i, n := range inputNets {
		ins[i] = b.netOrNew(n)
	}

	id := GateID(len(b.gates))
	b.gates = append(b.gates, Gate{
		Name:   instanceName,
		Type:   typ,
		Inputs: ins,
		Output: out,
	})
	b.gateNames[instanceName] = id

	b.nets[out].Drivers = append(b.nets[out].Drivers, id)
	for _, in := range ins {
		b.nets[in].Loads = append(b.nets[in].Loads, id)
	}
	return nil
}

// AddFlipFlop adds a flip-flop instance. ports binds clk/d/q (and, for
// types not yet propagated, t/j/k/s/r) by role name to net names;
// unbound roles resolve to NoNet.
func (b *Builder) AddFlipFlop(typ FlipFlopType, instanceName string, ports PortBindings) error {
	if b.done {
		return errors.New("scoap: builder already finalized")
	}
	if _, ok := b.ffNames[instanceName]; ok {
		return duplicateInstanceError("flip-flop", instanceName)
	}

	port := func(role string) NetID {
		name, ok := ports[role]
		if !ok || name == "" {
			return NoNet
		}
		return b.netOrNew(name)
	}

	q := port("q")
	ff := FlipFlop{
		Name: instanceName,
		Type: typ,
		Clk:  port("clk"),
		D:    port("d"),
		Q:    q,
		T:    port("t"),
		J:    port("j"),
		K:    port("k"),
		S:    port("s"),
		R:    port("r"),
	}

	id := FlipFlopID(len(b.flipflops))
	b.flipflops = append(b.flipflops, ff)
	b.ffNames[instanceName] = id

	if q != NoNet {
		b.nets[q].DrivenByFlipFlop = true
		b.nets[q].Level = 0
	}

	if int(typ) < 0 || int(typ) >= len(flipFlopTypeNames) {
		b.diagnostics = append(b.diagnostics, Diagnostic{
			Kind:   UnknownFlipFlopType,
			Detail: "flip-flop " + instanceName + " has unrecognized type",
		})
	} else if typ != DFF {
		b.diagnostics = append(b.diagnostics, Diagnostic{
			Kind:   UnknownFlipFlopType,
			Detail: "flip-flop " + instanceName + " (" + typ.String() + ") is reserved; no sequential propagation rule implemented",
		})
	}
	return nil
}

// Finalize freezes the builder's declarations into an immutable
// Circuit. The Builder must not be used afterwards.
func (b *Builder) Finalize() (*Circuit, error) {
	if b.done {
		return nil, errors.New("scoap: builder already finalized")
	}
	b.done = true

	c := &Circuit{
		nets:           b.nets,
		gates:          b.gates,
		flipflops:      b.flipflops,
		netIndex:       b.netIndex,
		primaryInputs:  b.primaryInputs,
		primaryOutputs: b.primaryOutputs,
		diagnostics:    b.diagnostics,
	}
	return c, nil
}
