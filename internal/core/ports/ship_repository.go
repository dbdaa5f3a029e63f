// Package ports defines repository interfaces for the fleet domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/ship"
)

// ShipRepository defines the persistence contract for ship aggregates.
// Provides methods for storing, retrieving, and querying ships with the
// containers currently on board.
type ShipRepository interface {
	// Add persists a new ship aggregate to storage.
	// The ship must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *ship.Ship) error

	// Update persists changes to an existing ship aggregate, including
	// container membership changes from boarding, unloading and transfers.
	Update(ctx context.Context, aggregate *ship.Ship) error

	// Get retrieves a ship aggregate by its unique identifier.
	// Returns the complete ship with all boarded containers in boarding order.
	Get(ctx context.Context, id kernel.UUID) (*ship.Ship, error)

	// GetAll retrieves every ship in the fleet with its boarded containers.
	GetAll(ctx context.Context) ([]*ship.Ship, error)
}
