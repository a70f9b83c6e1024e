// Package errs provides the standardized error types of the drone fleet service.
// It implements one pattern for error creation, formatting, and unwrapping
// that is used by every layer from the domain model to the HTTP boundary.
//
// The package covers the application-level failure kinds:
//   - ObjectNotFoundError: a drone (or other record) does not exist
//   - ObjectAlreadyExistsError: a unique key such as a drone serial is taken
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: input
//     validation failures
//   - StorageUnavailableError: the store failed or the caller's deadline passed
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works on wrapped chains
//
// Callers classify failures with errors.Is against the sentinels and never by
// comparing messages.
package errs
