package evmdd

import "errors"

// Error kinds surfaced by the evmdd engine. Callers should compare with
// errors.Is; each error returned by this package wraps one of these
// sentinels with additional context via fmt.Errorf("%w: ...", ...).
var (
	// ErrIllegalExpression indicates a term uses an operator or construct
	// outside the supported set (+, -, *, unary -, constants, variables).
	ErrIllegalExpression = errors.New("illegal expression")

	// ErrUnknownVariable indicates a variable referenced in a term or API
	// call is not registered with the manager.
	ErrUnknownVariable = errors.New("unknown variable")

	// ErrDomainMismatch indicates the variable list and domain-size list
	// differ in length, contain a non-positive domain size, or a
	// variable referenced by a term lacks a declared domain size.
	ErrDomainMismatch = errors.New("domain mismatch")

	// ErrModeMismatch indicates Apply was called with operands that do
	// not both belong to this manager (and therefore may not share a
	// reduction mode).
	ErrModeMismatch = errors.New("mode mismatch")

	// ErrOutOfDomain indicates an evaluation assignment gives a variable
	// a value outside its declared domain.
	ErrOutOfDomain = errors.New("value out of domain")

	// ErrMissingValue indicates an evaluation assignment omits a
	// variable required along the traversed path.
	ErrMissingValue = errors.New("missing value")

	// ErrNegativeExponent indicates Pow was called with a negative
	// exponent.
	ErrNegativeExponent = errors.New("negative exponent")

	// ErrInvariantViolation indicates an internal consistency check
	// failed. This should never happen in normal operation; it signals
	// a bug rather than bad caller input.
	ErrInvariantViolation = errors.New("invariant violation")
)
