// Package commands contains the write side of the storefront: every
// operation that changes an order or a rider. Each command is validated at
// construction, and each handler runs inside one unit of work so rider locks,
// rider releases and the guarded order write commit or roll back together.
package commands

import (
	"context"

	"storefront/internal/core/ports"
)

// Unit of Work interfaces, narrowed per handler so tests only mock what a
// handler touches.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides the order repository bound to the transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RiderRepoFactory provides the rider repository bound to the transaction.
	RiderRepoFactory interface {
		RiderRepository() ports.RiderRepository
	}

	// OrderUoW is used by commands that only touch orders (create, accept).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// RiderUoW is used by rider provisioning.
	RiderUoW interface {
		TxManager
		RiderRepoFactory
	}

	RiderUoWFactory interface {
		Create() RiderUoW
	}

	// UoW spans orders and riders: dispatch, release and reassignment.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   riders := uow.RiderRepository()
	//   orders := uow.OrderRepository()
	//   // ... lock a rider, update the order
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		RiderRepoFactory
		OrderRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
