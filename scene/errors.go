package scene

import "errors"

// ErrStackUnderflow is returned when a clip/opacity/mask stack is popped
// while empty (or, for opacity, popped down past its required initial
// element).
var ErrStackUnderflow = errors.New("scene: stack underflow")

// ErrInvariantViolation names the condition of a PackedScene failing one
// of its structural invariants. No function in this package returns it.
var ErrInvariantViolation = errors.New("scene: invariant violation")
