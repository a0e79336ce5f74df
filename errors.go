package scoap

import "github.com/pkg/errors"

// Sentinel errors for the builder-phase error kinds in the error handling
// design. Wrap these with errors.Wrap/errors.Wrapf to attach a stack
// trace and context, and compare with errors.Is.
var (
	// ErrDuplicateInstance is returned when a gate or flip-flop instance
	// name collides with one already declared in the same collection
	// (gates and flip-flops have independent namespaces).
	ErrDuplicateInstance = errors.New("duplicate instance name")

	// ErrArityError is returned when a gate's input count is
	// incompatible with its type (xor/xnor require exactly 2, not/buf
	// require exactly 1, the remaining types require at least 1).
	ErrArityError = errors.New("gate arity error")

	// ErrUnknownNet is returned by LookupNet for a name that was never
	// declared.
	ErrUnknownNet = errors.New("unknown net")
)

// duplicateInstanceError builds a wrapped ErrDuplicateInstance naming the
// offending instance and collection.
func duplicateInstanceError(kind, name string) error {
	return errors.Wrapf(ErrDuplicateInstance, "%s instance %q already declared", kind, name)
}

// arityError builds a wrapped ErrArityError naming the gate type, its
// instance name, and the arity mismatch.
func arityError(typ GateType, name string, got, want int) error {
	if want < 0 {
		return errors.Wrapf(ErrArityError, "gate %q (%s): expected at least %d input(s), got %d", name, typ, -want, got)
	}
	return errors.Wrapf(ErrArityError, "gate %q (%s): expected exactly %d input(s), got %d", name, typ, want, got)
}
