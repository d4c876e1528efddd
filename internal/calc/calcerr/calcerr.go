// Package calcerr defines the error taxonomy shared by the calculation
// packages. All of them are terminal: the engine is a pure computation with
// no transient failure source, so nothing here is ever worth retrying.
package calcerr

import "fmt"

// InputError marks physically impossible or degenerate input: zero flow
// area, non-positive viscosity, coincident route points and the like.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string { return "invalid input: " + e.Msg }

// Inputf builds an InputError with a formatted message.
func Inputf(format string, args ...any) error {
	return &InputError{Msg: fmt.Sprintf(format, args...)}
}

// RangeError reports a query point outside a data table's validated domain.
// It applies only to table-backed property paths; closed-form correlations
// extrapolate instead of failing.
type RangeError struct {
	Quantity string
	Value    float64
	Min      float64
	Max      float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %g outside table range [%g, %g]", e.Quantity, e.Value, e.Min, e.Max)
}

// LookupError reports an id with no entry in the active catalog.
type LookupError struct {
	Kind string
	ID   string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.ID)
}

// ConsistencyError reports a cross-segment precondition violation, raised
// before any per-segment computation proceeds.
type ConsistencyError struct {
	Segment      int
	DeviationPct float64
	Msg          string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("segment %d: %s (deviation %.2f%%)", e.Segment, e.Msg, e.DeviationPct)
}
