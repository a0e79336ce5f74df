package scoap_test

import (
	"testing"

	"github.com/dm47h/scoap"
	"github.com/dm47h/scoap/scoaptest"
)

// TestPrimaryInputBaseMetrics is universal property 2.
func TestPrimaryInputBaseMetrics(t *testing.T) {
	c := scoaptest.Build(t, func(b *scoap.Builder) {
		must(t, b.DeclareInput("p"))
		must(t, b.DeclareOutput("y"))
		must(t, b.AddGate(scoap.BUF, "g1", "y", "p"))
	})
	result := scoap.RunAll(c)
	scoaptest.AssertCC(t, result.Circuit, "p", 1, 1)
	scoaptest.AssertSC(t, result.Circuit, "p", 0, 0)
}

// TestRoleExclusivity is universal property 6: a flip-flop output is
// InternalWire with DrivenByFlipFlop set, never PrimaryOutput by
// accident of being driven sequentially.
func TestRoleExclusivity(t *testing.T) {
	c := scoaptest.Build(t, func(b *scoap.Builder) {
		must(t, b.DeclareInput("clk"))
		must(t, b.DeclareInput("d"))
		must(t, b.AddFlipFlop(scoap.DFF, "ff1", scoap.PortBindings{
			"clk": "clk", "d": "d", "q": "x",
		}))
	})
	x, err := c.LookupNet("x")
	if err != nil {
		t.Fatal(err)
	}
	if x.Role != scoap.InternalWire || !x.DrivenByFlipFlop {
		t.Errorf("flip-flop output should be InternalWire+DrivenByFlipFlop, got %+v", x)
	}
}

func TestHalfAdderFixture(t *testing.T) {
	c := scoaptest.Build(t, func(b *scoap.Builder) {
		must(t, b.DeclareInput("a"))
		must(t, b.DeclareInput("b"))
		must(t, b.DeclareOutput("s"))
		must(t, b.DeclareOutput("c"))
		scoaptest.HalfAdder(b, "ha", "a", "b", "s", "c")
	})
	result := scoap.RunAll(c)
	if len(result.FeedbackReports) != 0 {
		t.Fatalf("half adder should have no feedback, got %v", result.FeedbackReports)
	}
	scoaptest.AssertCO(t, result.Circuit, "a", 2)
	scoaptest.AssertCO(t, result.Circuit, "b", 2)
}

func TestFullAdderFixture(t *testing.T) {
	c := scoaptest.Build(t, func(b *scoap.Builder) {
		must(t, b.DeclareInput("a"))
		must(t, b.DeclareInput("b"))
		must(t, b.DeclareInput("cin"))
		must(t, b.DeclareOutput("s"))
		must(t, b.DeclareOutput("cout"))
		scoaptest.FullAdder(b, "fa", "a", "b", "cin", "s", "cout")
	})
	result := scoap.RunAll(c)
	for _, n := range []string{"a", "b", "cin"} {
		v, ok := result.Circuit.NetByName(n)
		if !ok || v.CC0 < 0 || v.CC1 < 0 {
			t.Errorf("input %q should have finite CC, got %+v", n, v)
		}
	}
}

func TestMux2Fixture(t *testing.T) {
	c := scoaptest.Build(t, func(b *scoap.Builder) {
		must(t, b.DeclareInput("a"))
		must(t, b.DeclareInput("b"))
		must(t, b.DeclareInput("sel"))
		must(t, b.DeclareOutput("out"))
		scoaptest.Mux2(b, "mx", "a", "b", "sel", "out")
	})
	result := scoap.RunAll(c)
	scoaptest.AssertCO(t, result.Circuit, "out", 0)
	v, ok := result.Circuit.NetByName("sel")
	if !ok || v.CO < 0 {
		t.Errorf("sel should be observable, got %+v", v)
	}
}
