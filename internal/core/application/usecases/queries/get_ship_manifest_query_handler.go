package queries

import (
	"context"

	"fleet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipManifestQueryHandler retrieves one ship's manifest from the database.
type GetShipManifestQueryHandler struct {
	db *gorm.DB
}

// NewGetShipManifestQueryHandler creates a handler for ship manifest queries.
func NewGetShipManifestQueryHandler(db *gorm.DB) GetShipManifestQueryHandler {
	return GetShipManifestQueryHandler{db: db}
}

// Handle executes the manifest query. The containers appear in boarding
// order. Returns ErrObjectNotFound when the ship does not exist.
func (h GetShipManifestQueryHandler) Handle(
	ctx context.Context,
	query GetShipManifestQuery,
) (GetShipManifestQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipManifestQueryResponse{}, err
	}

	response := GetShipManifestQueryResponse{
		ID:         query.ShipID(),
		Containers: make([]ManifestContainerResponse, 0),
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT name, max_containers, max_weight_capacity
		FROM ships
		WHERE id = ?
	`, query.ShipID().Bytes()).Row()

	if err := row.Scan(&response.Name, &response.MaxContainers, &response.MaxWeightCapacity); err != nil {
		return GetShipManifestQueryResponse{}, errs.NewObjectNotFoundErrorWithCause("shipId", query.ShipID(), err)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT serial, kind, load_mass, max_weight
		FROM containers
		WHERE ship_id = ?
		ORDER BY position
	`, query.ShipID().Bytes()).Rows()
	if err != nil {
		return GetShipManifestQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry ManifestContainerResponse

		err = rows.Scan(&entry.Serial, &entry.Kind, &entry.LoadMass, &entry.MaxWeight)
		if err != nil {
			return GetShipManifestQueryResponse{}, err
		}

		response.TotalLoad += entry.LoadMass
		response.Containers = append(response.Containers, entry)
	}

	if err = rows.Err(); err != nil {
		return GetShipManifestQueryResponse{}, err
	}

	return response, nil
}
