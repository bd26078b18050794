// Package errs provides standardized error types for the order service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error kind follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - A struct type carrying the error details
//   - Constructor functions, with and without an underlying cause
//   - Error() for formatting and Unwrap() for classification
//
// Beyond the generic validation kinds, the package defines the domain error
// kinds of the order lifecycle: ErrProductInactive, ErrInsufficientInventory,
// ErrInvalidTransition, ErrInvalidState, ErrIntegrityViolation, and
// ErrConcurrentModification. All of them propagate to callers unmodified;
// only audit-logging failures are ever swallowed, and that happens in the
// application layer, not here.
package errs
