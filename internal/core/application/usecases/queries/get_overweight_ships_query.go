package queries

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrGetOverweightShipsQueryIsNotConstructed = errors.New(
	"GetOverweightShipsQuery must be created via NewGetOverweightShipsQuery constructor",
)

// GetOverweightShipsQuery retrieves ships whose summed cargo load exceeds
// their weight capacity. Boarding only checks the load carried at that
// moment, so cargo loaded afterwards can push a ship over its ceiling; this
// query is how operators find those ships.
type GetOverweightShipsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOverweightShipsQuery creates a query to retrieve overweight ships.
func NewGetOverweightShipsQuery() GetOverweightShipsQuery {
	return GetOverweightShipsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOverweightShipsQuery) Validate() error {
	return q.guard.Validate(ErrGetOverweightShipsQueryIsNotConstructed)
}

// GetOverweightShipsQueryResponse represents an overweight ship read model.
type GetOverweightShipsQueryResponse struct {
	ID                kernel.UUID
	Name              string
	MaxWeightCapacity float64
	TotalLoad         float64
}
