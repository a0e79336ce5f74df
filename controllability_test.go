package scoap_test

import (
	"testing"

	"github.com/dm47h/scoap"
	"github.com/dm47h/scoap/scoaptest"
)

func TestControllabilitySingleAndGate(t *testing.T) {
	c := scoaptest.Build(t, func(b *scoap.Builder) {
		must(t, b.DeclareInput("p"))
		must(t, b.DeclareInput("q"))
		must(t, b.DeclareOutput("y"))
		must(t, b.AddGate(scoap.AND, "g1", "y", "p", "q"))
	})
	scoap.ComputeLevels(c)
	scoap.ComputeControllability(c)

	scoaptest.AssertCC(t, c, "p", 1, 1)
	scoaptest.AssertCC(t, c, "q", 1, 1)
	scoaptest.AssertCC(t, c, "y", 2, 3)
}

func TestControllabilityInverterChain(t *testing.T) {
	c := scoaptest.Build(t, func(b *scoap.Builder) {
		must(t, b.DeclareInput("p"))
		must(t, b.DeclareOutput("n3"))
		must(t, b.AddGate(scoap.NOT, "g1", "n1", "p"))
		must(t, b.AddGate(scoap.NOT, "g2", "n2", "n1"))
		must(t, b.AddGate(scoap.NOT, "g3", "n3", "n2"))
	})
	scoap.ComputeLevels(c)
	scoap.ComputeControllability(c)

	scoaptest.AssertCC(t, c, "p", 1, 1)
	scoaptest.AssertCC(t, c, "n1", 2, 2)
	scoaptest.AssertCC(t, c, "n2", 3, 3)
	scoaptest.AssertCC(t, c, "n3", 4, 4)
}

func TestControllabilityXor(t *testing.T) {
	c := scoaptest.Build(t, func(b *scoap.Builder) {
		must(t, b.DeclareInput("a"))
		must(t, b.DeclareInput("b"))
		must(t, b.DeclareOutput("y"))
		must(t, b.AddGate(scoap.XOR, "g1", "y", "a", "b"))
	})
	scoap.ComputeLevels(c)
	scoap.ComputeControllability(c)

	scoaptest.AssertCC(t, c, "y", 3, 3)
}

// TestControllabilityDFFLoop is S4: a dff feeding an inverter feeding
// the dff's own data input must converge to finite, stable SC values
// even though the loop only closes through the flip-flop.
func TestControllabilityDFFLoop(t *testing.T) {
	c := scoaptest.Build(t, func(b *scoap.Builder) {
		must(t, b.DeclareInput("clk"))
		must(t, b.DeclareOutput("y"))
		must(t, b.AddFlipFlop(scoap.DFF, "ff1", scoap.PortBindings{
			"clk": "clk", "d": "y", "q": "x",
		}))
		must(t, b.AddGate(scoap.NOT, "g1", "y", "x"))
	})
	reports := scoap.ComputeLevels(c)
	if len(reports) != 0 {
		t.Fatalf("expected zero combinational feedback reports, got %d", len(reports))
	}
	scoaptest.AssertLevel(t, c, "clk", 0)
	scoaptest.AssertLevel(t, c, "x", 0)
	scoaptest.AssertLevel(t, c, "y", 1)

	rounds := scoap.ComputeControllability(c)
	if rounds <= 0 {
		t.Fatalf("expected at least one sequential round, got %d", rounds)
	}

	x, ok := c.NetByName("x")
	if !ok || x.SC0 < 0 || x.SC1 < 0 {
		t.Fatalf("x should have finite SC values, got %+v", x)
	}
	y, ok := c.NetByName("y")
	if !ok || y.SC0 < 0 || y.SC1 < 0 {
		t.Fatalf("y should have finite SC values, got %+v", y)
	}
}

// TestControllabilityGateTypeSymmetry is universal property 7:
// inverting a gate's type swaps CC0 and CC1 of its output.
func TestControllabilityGateTypeSymmetry(t *testing.T) {
	build := func(typ scoap.GateType) *scoap.Circuit {
		return scoaptest.Build(t, func(b *scoap.Builder) {
			must(t, b.DeclareInput("a"))
			must(t, b.DeclareInput("c"))
			must(t, b.DeclareOutput("y"))
			must(t, b.AddGate(typ, "g1", "y", "a", "c"))
		})
	}
	pairs := [][2]scoap.GateType{
		{scoap.AND, scoap.NAND},
		{scoap.OR, scoap.NOR},
		{scoap.XOR, scoap.XNOR},
	}
	for _, pr := range pairs {
		c1, c2 := build(pr[0]), build(pr[1])
		scoap.ComputeLevels(c1)
		scoap.ComputeLevels(c2)
		scoap.ComputeControllability(c1)
		scoap.ComputeControllability(c2)
		y1, _ := c1.NetByName("y")
		y2, _ := c2.NetByName("y")
		if y1.CC0 != y2.CC1 || y1.CC1 != y2.CC0 {
			t.Errorf("%s/%s: CC0/CC1 not swapped: %v vs %v", pr[0], pr[1], y1, y2)
		}
	}
}
