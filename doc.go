/*
Package scoap computes SCOAP testability metrics over a gate-level
combinational/sequential netlist: combinational and sequential
controllability (CC0, CC1, SC0, SC1) and observability (CO, SO) for every
net in a circuit.

A circuit is assembled incrementally through a Builder, then frozen into
an immutable Circuit by Finalize. RunAll drives the full analysis
pipeline: levelization, combinational controllability, sequential
controllability to a fixed point, combinational observability, and
sequential observability to a fixed point.

This package does not parse netlists and does not simulate logic values;
it only analyzes topology.
*/
package scoap
