// Command scoapstat builds a small demonstration circuit and prints its
// SCOAP metrics. Netlist parsing (Verilog or otherwise) is out of
// scope; this exists to exercise the engine end to end against a
// hand-wired gate network.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/dm47h/scoap"
)

func main() {
	verbose := flag.Bool("v", false, "log build diagnostics")
	flag.Parse()

	c := buildDemoCircuit()

	if *verbose {
		for _, d := range c.Diagnostics() {
			log.Print(d)
		}
	}

	result := scoap.RunAll(c)
	for _, r := range result.FeedbackReports {
		log.Print(r)
	}

	fmt.Printf("%-8s %-6s %4s %4s %4s %4s %4s %4s %5s\n",
		"net", "role", "cc0", "cc1", "sc0", "sc1", "co", "so", "level")
	for _, n := range c.Nets() {
		fmt.Printf("%-8s %-6s %4d %4d %4d %4d %4d %4d %5d\n",
			n.Name, n.Role, n.CC0, n.CC1, n.SC0, n.SC1, n.CO, n.SO, n.Level)
	}
	fmt.Printf("controllability converged in %d rounds, observability in %d rounds\n",
		result.ControllabilityRounds, result.ObservabilityRounds)
}

// buildDemoCircuit wires an xor gate from primitives feeding a dff, so
// the printed report shows both combinational and sequential metrics.
func buildDemoCircuit() *scoap.Circuit {
	b := scoap.NewBuilder()
	check := func(err error) {
		if err != nil {
			log.Fatal(err)
		}
	}

	check(b.DeclareInput("a"))
	check(b.DeclareInput("b"))
	check(b.DeclareInput("clk"))
	check(b.DeclareOutput("q"))

	check(b.AddGate(scoap.NOT, "g1", "nota", "a"))
	check(b.AddGate(scoap.NOT, "g2", "notb", "b"))
	check(b.AddGate(scoap.AND, "g3", "w1", "a", "notb"))
	check(b.AddGate(scoap.AND, "g4", "w2", "b", "nota"))
	check(b.AddGate(scoap.OR, "g5", "xorOut", "w1", "w2"))

	check(b.AddFlipFlop(scoap.DFF, "ff1", scoap.PortBindings{
		"clk": "clk",
		"d":   "xorOut",
		"q":   "q",
	}))

	c, err := b.Finalize()
	if err != nil {
		log.Fatal(err)
	}
	return c
}
