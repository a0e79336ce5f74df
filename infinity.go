package scoap

import "github.com/dm47h/scoap/internal/satmath"

// Metric is an extended non-negative integer used for every SCOAP
// measure (CC0, CC1, SC0, SC1, CO, SO). It is a type alias for
// satmath.Metric so the arithmetic (Add, Min, saturation at Infinity)
// lives in one place, shared with the internal/gatetab formula tables.
type Metric = satmath.Metric

// Infinity returns the Infinity sentinel metric.
func Infinity() Metric { return satmath.Infinity() }

// Finite returns a finite metric of value n.
func Finite(n int) Metric { return satmath.Finite(n) }
