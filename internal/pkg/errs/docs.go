// Package errs provides standardized error types for the platform API.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type carrying the error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is support
//
// Domain errors that must surface to API clients with a stable error code
// (status guards, deletions, authorization denials) have dedicated types here
// so the HTTP adapter can translate them without string matching.
package errs
