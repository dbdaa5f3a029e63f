package queries

import (
	"context"

	"fleet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllShipsQueryHandler retrieves fleet information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllShipsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllShipsQueryHandler creates a handler for fleet retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllShipsQueryHandler(db *gorm.DB) GetAllShipsQueryHandler {
	return GetAllShipsQueryHandler{db: db}
}

// Handle executes the query to retrieve all ships with their container count
// and summed cargo load, sorted by name.
func (h GetAllShipsQueryHandler) Handle(
	ctx context.Context,
	query GetAllShipsQuery,
) ([]GetAllShipsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ships := make([]GetAllShipsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.name,
			s.max_containers,
			s.max_weight_capacity,
			COUNT(c.serial),
			COALESCE(SUM(c.load_mass), 0)
		FROM ships s
		LEFT JOIN containers c ON c.ship_id = s.id
		GROUP BY s.id, s.name, s.max_containers, s.max_weight_capacity
		ORDER BY s.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetAllShipsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&response.Name,
			&response.MaxContainers,
			&response.MaxWeightCapacity,
			&response.ContainerCount,
			&response.TotalLoad,
		)
		if err != nil {
			return nil, err
		}

		shipID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = shipID
		ships = append(ships, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ships, nil
}
