package ports

import (
	"context"

	"fleet/internal/core/domain/model/container"
	"fleet/internal/core/domain/model/kernel"
)

// ContainerRepository defines the persistence contract for containers.
// Containers are persisted independently of ships; ship membership is a
// nullable reference maintained by the ship repository.
type ContainerRepository interface {
	// Add persists a newly registered container.
	// The container must be valid and its serial must not already exist.
	Add(ctx context.Context, aggregate container.Container) error

	// Update persists changes to an existing container's cargo state.
	Update(ctx context.Context, aggregate container.Container) error

	// Get retrieves a container by its serial number.
	Get(ctx context.Context, serial kernel.SerialNumber) (container.Container, error)

	// GetUnboarded retrieves every container that is not on any ship.
	GetUnboarded(ctx context.Context) ([]container.Container, error)
}
