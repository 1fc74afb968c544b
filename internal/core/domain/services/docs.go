// Package services provides domain services that span more than one aggregate.
//
// The package includes:
//   - RiderBalancer: ranks available riders by their load for the current day
package services
