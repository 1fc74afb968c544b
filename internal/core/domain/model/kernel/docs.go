// Package kernel provides the shared domain primitives of the storefront:
//   - UUID: identifier value object for aggregates
//   - Money: non-negative decimal amount for prices and totals
//   - Clock: time source injected into handlers so tests control "now"
//   - DomainEvent: contract for events raised by aggregates
//
// All value objects are immutable and safe for concurrent use.
package kernel
