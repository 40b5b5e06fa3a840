// Package errs provides standardized error types for the pizzeria ordering
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes error types for the common failure scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is malformed or out of policy
//   - ValueIsOutOfRangeError: for numeric bounds violations
//   - ObjectNotFoundError: for when an entity cannot be found
//   - AuthenticationRequiredError: for operations attempted anonymously
//   - PermissionDeniedError: for operations an actor's role does not allow
//   - IllegalTransitionError: for forbidden order status transitions
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions, with and without an underlying cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify by sentinel
//
// Transports rely on the sentinels to map failures onto status codes without
// inspecting message text.
package errs
