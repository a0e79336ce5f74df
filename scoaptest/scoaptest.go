// Package scoaptest provides helpers for building test circuits and
// asserting on their computed metrics, kept separate from the scoap
// package so test-only code never ships in the library's own import
// graph.
package scoaptest

import (
	"testing"

	"github.com/dm47h/scoap"
)

// Build runs fn against a fresh Builder and finalizes it, failing the
// test immediately on any builder error so call sites can stay
// single-line.
func Build(t *testing.T, fn func(b *scoap.Builder)) *scoap.Circuit {
	t.Helper()
	b := scoap.NewBuilder()
	fn(b)
	c, err := b.Finalize()
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	return c
}

// AssertCC checks a net's CC0/CC1 pair.
func AssertCC(t *testing.T, c *scoap.Circuit, net string, cc0, cc1 int) {
	t.Helper()
	v, ok := c.NetByName(net)
	if !ok {
		t.Fatalf("no such net %q", net)
	}
	if v.CC0 != cc0 || v.CC1 != cc1 {
		t.Errorf("net %q: CC0=%d CC1=%d, want CC0=%d CC1=%d", net, v.CC0, v.CC1, cc0, cc1)
	}
}

// AssertSC checks a net's SC0/SC1 pair.
func AssertSC(t *testing.T, c *scoap.Circuit, net string, sc0, sc1 int) {
	t.Helper()
	v, ok := c.NetByName(net)
	if !ok {
		t.Fatalf("no such net %q", net)
	}
	if v.SC0 != sc0 || v.SC1 != sc1 {
		t.Errorf("net %q: SC0=%d SC1=%d, want SC0=%d SC1=%d", net, v.SC0, v.SC1, sc0, sc1)
	}
}

// AssertCO checks a net's CO value.
func AssertCO(t *testing.T, c *scoap.Circuit, net string, co int) {
	t.Helper()
	v, ok := c.NetByName(net)
	if !ok {
		t.Fatalf("no such net %q", net)
	}
	if v.CO != co {
		t.Errorf("net %q: CO=%d, want %d", net, v.CO, co)
	}
}

// AssertSO checks a net's SO value.
func AssertSO(t *testing.T, c *scoap.Circuit, net string, so int) {
	t.Helper()
	v, ok := c.NetByName(net)
	if !ok {
		t.Fatalf("no such net %q", net)
	}
	if v.SO != so {
		t.Errorf("net %q: SO=%d, want %d", net, v.SO, so)
	}
}

// AssertLevel checks a net's Level.
func AssertLevel(t *testing.T, c *scoap.Circuit, net string, level int) {
	t.Helper()
	v, ok := c.NetByName(net)
	if !ok {
		t.Fatalf("no such net %q", net)
	}
	if v.Level != level {
		t.Errorf("net %q: Level=%d, want %d", net, v.Level, level)
	}
}

// HalfAdder wires a half adder out of primitive gates under prefix:
// sum = a xor b, cout = a and b. There is no HalfAdder GateType in the
// closed set this engine understands, so fixtures decompose it the way
// a gate-level synthesis tool would.
func HalfAdder(b *scoap.Builder, prefix, a, bIn, sum, cout string) {
	must(b.AddGate(scoap.XOR, prefix+".xor", sum, a, bIn))
	must(b.AddGate(scoap.AND, prefix+".and", cout, a, bIn))
}

// FullAdder wires a full adder out of primitive gates under prefix:
// s0 = a xor b, sum = s0 xor cin, cout = (a and b) or (s0 and cin).
func FullAdder(b *scoap.Builder, prefix, a, bIn, cin, sum, cout string) {
	s0 := prefix + ".s0"
	w1 := prefix + ".w1"
	w2 := prefix + ".w2"
	must(b.AddGate(scoap.XOR, prefix+".xor0", s0, a, bIn))
	must(b.AddGate(scoap.XOR, prefix+".xor1", sum, s0, cin))
	must(b.AddGate(scoap.AND, prefix+".and0", w1, a, bIn))
	must(b.AddGate(scoap.AND, prefix+".and1", w2, s0, cin))
	must(b.AddGate(scoap.OR, prefix+".or", cout, w1, w2))
}

// Mux2 wires a 2-to-1 multiplexer out of primitive gates under prefix:
// out = sel ? b : a.
func Mux2(b *scoap.Builder, prefix, a, bIn, sel, out string) {
	nsel := prefix + ".nsel"
	w1 := prefix + ".w1"
	w2 := prefix + ".w2"
	must(b.AddGate(scoap.NOT, prefix+".not", nsel, sel))
	must(b.AddGate(scoap.AND, prefix+".and0", w1, a, nsel))
	must(b.AddGate(scoap.AND, prefix+".and1", w2, bIn, sel))
	must(b.AddGate(scoap.OR, prefix+".or", out, w1, w2))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
