// Package errs provides standardized error types for the fulfillment core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: For when a parcel, token, courier, or order cannot be found
//   - InvalidStateError: For rejected state mutations (illegal status transition,
//     reused delivery token, operations against a terminal parcel)
//   - TokenExpiredError: For delivery tokens validated past their expiry window
//   - ForbiddenError: For actor/ownership mismatches
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     For input validation failures such as malformed coordinates
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Invariant violations are always surfaced through these types synchronously;
// best-effort side effects never produce caller-visible errors of any kind.
package errs
