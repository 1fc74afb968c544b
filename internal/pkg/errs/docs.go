// Package errs provides the typed errors shared by the storefront domain,
// application and adapter layers.
//
// Every error type follows the same shape:
//   - a sentinel (ErrObjectNotFound, ErrValueIsInvalid, ...) that callers match with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - NewXError / NewXErrorWithCause constructors
//   - Unwrap returning the sentinel
//
// The HTTP adapter maps the sentinels onto status codes, so domain code only
// has to pick the right family.
package errs
