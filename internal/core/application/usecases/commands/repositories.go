// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/ports"
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

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// TokenRepoFactory provides access to the delivery token repository within a transaction.
	TokenRepoFactory interface {
		DeliveryTokenRepository() ports.DeliveryTokenRepository
	}

	// LocationRepoFactory provides access to the courier location repository within a transaction.
	LocationRepoFactory interface {
		CourierLocationRepository() ports.CourierLocationRepository
	}

	// EventRepoFactory provides access to the parcel event repository within a transaction.
	EventRepoFactory interface {
		EventRepository() ports.EventRepository
	}

	// ParcelUoW manages transactions touching the parcel aggregate and its
	// event log only. Used by creation and soft deletion.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
		EventRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// AssignUoW manages transactions for courier assignment, which reads the
	// courier aggregate and recomputes routes across the courier's parcels.
	AssignUoW interface {
		TxManager
		ParcelRepoFactory
		CourierRepoFactory
		EventRepoFactory
	}

	// AssignUoWFactory creates new assignment unit of work instances.
	AssignUoWFactory interface {
		Create() AssignUoW
	}

	// TokenUoW manages transactions for QR token issuance and redemption.
	TokenUoW interface {
		TxManager
		ParcelRepoFactory
		TokenRepoFactory
		EventRepoFactory
	}

	// TokenUoWFactory creates new token unit of work instances.
	TokenUoWFactory interface {
		Create() TokenUoW
	}

	// TrackingUoW manages transactions for status updates and GPS pings,
	// which touch the parcel, its courier, the location trail and the event
	// log together.
	TrackingUoW interface {
		TxManager
		ParcelRepoFactory
		CourierRepoFactory
		LocationRepoFactory
		EventRepoFactory
	}

	// TrackingUoWFactory creates new tracking unit of work instances.
	TrackingUoWFactory interface {
		Create() TrackingUoW
	}

	// CleanupUoW manages transactions for the expired token sweep.
	CleanupUoW interface {
		TxManager
		TokenRepoFactory
	}

	// CleanupUoWFactory creates new cleanup unit of work instances.
	CleanupUoWFactory interface {
		Create() CleanupUoW
	}
)
