package scoap_test

import (
	"testing"

	"github.com/dm47h/scoap"
	"github.com/dm47h/scoap/scoaptest"
)

func TestObservabilitySingleAndGate(t *testing.T) {
	c := scoaptest.Build(t, func(b *scoap.Builder) {
		must(t, b.DeclareInput("p"))
		must(t, b.DeclareInput("q"))
		must(t, b.DeclareOutput("y"))
		must(t, b.AddGate(scoap.AND, "g1", "y", "p", "q"))
	})
	scoap.ComputeLevels(c)
	scoap.ComputeControllability(c)
	scoap.ComputeObservability(c)

	scoaptest.AssertCO(t, c, "y", 0)
	scoaptest.AssertCO(t, c, "p", 2)
	scoaptest.AssertCO(t, c, "q", 2)
}

func TestObservabilityInverterChain(t *testing.T) {
	c := scoaptest.Build(t, func(b *scoap.Builder) {
		must(t, b.DeclareInput("p"))
		must(t, b.DeclareOutput("n3"))
		must(t, b.AddGate(scoap.NOT, "g1", "n1", "p"))
		must(t, b.AddGate(scoap.NOT, "g2", "n2", "n1"))
		must(t, b.AddGate(scoap.NOT, "g3", "n3", "n2"))
	})
	scoap.ComputeLevels(c)
	scoap.ComputeControllability(c)
	scoap.ComputeObservability(c)

	scoaptest.AssertCO(t, c, "n3", 0)
	scoaptest.AssertCO(t, c, "n2", 1)
	scoaptest.AssertCO(t, c, "n1", 2)
	scoaptest.AssertCO(t, c, "p", 3)
}

func TestObservabilityXor(t *testing.T) {
	c := scoaptest.Build(t, func(b *scoap.Builder) {
		must(t, b.DeclareInput("a"))
		must(t, b.DeclareInput("b"))
		must(t, b.DeclareOutput("y"))
		must(t, b.AddGate(scoap.XOR, "g1", "y", "a", "b"))
	})
	scoap.ComputeLevels(c)
	scoap.ComputeControllability(c)
	scoap.ComputeObservability(c)

	scoaptest.AssertCO(t, c, "a", 2)
	scoaptest.AssertCO(t, c, "b", 2)
}

// TestPrimaryOutputsAreZero is universal property 3.
func TestPrimaryOutputsAreZero(t *testing.T) {
	c := scoaptest.Build(t, func(b *scoap.Builder) {
		must(t, b.DeclareInput("p"))
		must(t, b.DeclareInput("q"))
		must(t, b.DeclareOutput("y"))
		must(t, b.AddGate(scoap.AND, "g1", "y", "p", "q"))
	})
	result := scoap.RunAll(c)
	scoaptest.AssertCO(t, result.Circuit, "y", 0)
	scoaptest.AssertSO(t, result.Circuit, "y", 0)
}

// TestMonotoneFixpoint is universal property 4: re-running the
// sequential sweeps never increases a stored metric relative to the
// previous run's value (checked here by confirming a second call to
// ComputeControllability, which re-seeds from scratch, reproduces
// identical values, i.e. the sweep is deterministic and each round only
// tightens bounds).
func TestMonotoneFixpoint(t *testing.T) {
	c := scoaptest.Build(t, func(b *scoap.Builder) {
		must(t, b.DeclareInput("clk"))
		must(t, b.DeclareOutput("y"))
		must(t, b.AddFlipFlop(scoap.DFF, "ff1", scoap.PortBindings{
			"clk": "clk", "d": "y", "q": "x",
		}))
		must(t, b.AddGate(scoap.NOT, "g1", "y", "x"))
	})
	scoap.ComputeLevels(c)
	scoap.ComputeControllability(c)
	x1, _ := c.NetByName("x")
	scoap.ComputeControllability(c)
	x2, _ := c.NetByName("x")
	if x1.SC0 != x2.SC0 || x1.SC1 != x2.SC1 {
		t.Errorf("re-running the sequential sweep changed x's SC values: %v vs %v", x1, x2)
	}
}
