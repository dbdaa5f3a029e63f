package queries

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrGetShipManifestQueryIsNotConstructed = errors.New(
	"GetShipManifestQuery must be created via NewGetShipManifestQuery constructor",
)

// GetShipManifestQuery retrieves a single ship's summary together with one
// row per boarded container, in boarding order.
type GetShipManifestQuery struct { //nolint:recvcheck //using for validation
	shipID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipManifestQuery creates a query for the manifest of the ship with
// the given ID.
func NewGetShipManifestQuery(shipID string) (GetShipManifestQuery, error) {
	query := GetShipManifestQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setShipID(shipID); err != nil {
		return GetShipManifestQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipManifestQuery) Validate() error {
	return q.guard.Validate(ErrGetShipManifestQueryIsNotConstructed)
}

// ShipID returns the ship to build the manifest for.
func (q GetShipManifestQuery) ShipID() kernel.UUID {
	return q.shipID
}

func (q *GetShipManifestQuery) setShipID(shipID string) error {
	parsed, err := kernel.UUIDFromString(shipID)
	if err != nil {
		return err
	}

	q.shipID = parsed
	return nil
}

// GetShipManifestQueryResponse represents the ship manifest read model.
type GetShipManifestQueryResponse struct {
	ID                kernel.UUID
	Name              string
	MaxContainers     int
	MaxWeightCapacity float64
	TotalLoad         float64
	Containers        []ManifestContainerResponse
}

// ManifestContainerResponse represents one boarded container on a manifest.
type ManifestContainerResponse struct {
	Serial    string
	Kind      string
	LoadMass  float64
	MaxWeight float64
}
