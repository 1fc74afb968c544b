// Package order implements the Order aggregate and its lifecycle.
//
// The package includes:
//   - Order: aggregate root owning items, payment, delivery and status
//   - Status and CanTransition: the transition table
//   - Delivery, Payment, Item: value objects
//   - StatusChangedEvent, RiderAssignedEvent: domain events
//
// Business rules:
//   - pending -> paid | cancelled; paid -> out_for_delivery | cancelled | refunded;
//     out_for_delivery -> delivered | refunded; everything else is rejected
//   - delivered, cancelled and refunded are terminal and hand the rider back
//   - accept and reject are delivery sub-states, not statuses
//   - a rejected delivery with no replacement falls back to paid with no rider
package order
