// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"catering/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// BulkOrderRepoFactory provides access to the bulk order repository
	// within a transaction.
	BulkOrderRepoFactory interface {
		BulkOrderRepository() ports.BulkOrderRepository
	}

	// CollaborationRequestRepoFactory provides access to the collaboration
	// request repository within a transaction.
	CollaborationRequestRepoFactory interface {
		CollaborationRequestRepository() ports.CollaborationRequestRepository
	}

	// BulkOrderUoW manages transactions for order-only operations.
	// Used when commands only modify bulk order aggregates.
	BulkOrderUoW interface {
		TxManager
		BulkOrderRepoFactory
	}

	// BulkOrderUoWFactory creates new order unit of work instances.
	BulkOrderUoWFactory interface {
		Create() BulkOrderUoW
	}

	// CollaborationRequestUoW manages transactions for request-only operations.
	// Used when commands only modify collaboration request aggregates.
	CollaborationRequestUoW interface {
		TxManager
		CollaborationRequestRepoFactory
	}

	// CollaborationRequestUoWFactory creates new request unit of work instances.
	CollaborationRequestUoWFactory interface {
		Create() CollaborationRequestUoW
	}

	// UoW manages transactions across both order and request aggregates.
	// Used for commands that coordinate changes between multiple aggregate types,
	// such as accepting a collaboration request.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.BulkOrderRepository()
	//   requestRepo := uow.CollaborationRequestRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		BulkOrderRepoFactory
		CollaborationRequestRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
