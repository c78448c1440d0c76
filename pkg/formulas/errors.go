// Package formulas provides stateless financial metric computations over
// in-memory price series and portfolio maps. Every function is a pure
// function of its arguments and is safe for concurrent use.
package formulas

import "errors"

// Sentinel errors returned by the computations in this package. Callers
// match them with errors.Is; the wrapped message carries the offending
// argument.
var (
	// ErrInvalidArgument reports an empty or undersized series, a
	// non-positive period, or a period exceeding the series length.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDivisionByZero reports a zero denominator in a ratio or average
	// computation. Divisions are guarded up front so no arithmetic fault
	// escapes to the caller.
	ErrDivisionByZero = errors.New("division by zero")
)
