// Package queries contains read operations for retrieving fleet state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrGetAllShipsQueryIsNotConstructed = errors.New(
	"GetAllShipsQuery must be created via NewGetAllShipsQuery constructor",
)

// GetAllShipsQuery retrieves every ship in the fleet with its aggregate
// load figures, for monitoring and dispatching.
type GetAllShipsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllShipsQuery creates a query to retrieve all ships.
// This is a parameterless query that fetches the complete fleet list.
func NewGetAllShipsQuery() GetAllShipsQuery {
	return GetAllShipsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllShipsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllShipsQueryIsNotConstructed)
}

// GetAllShipsQueryResponse represents ship information in the read model.
type GetAllShipsQueryResponse struct {
	ID                kernel.UUID
	Name              string
	MaxContainers     int
	MaxWeightCapacity float64
	ContainerCount    int
	TotalLoad         float64
}
