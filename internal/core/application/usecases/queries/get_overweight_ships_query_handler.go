package queries

import (
	"context"

	"fleet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOverweightShipsQueryHandler retrieves overweight ships from the database.
type GetOverweightShipsQueryHandler struct {
	db *gorm.DB
}

// NewGetOverweightShipsQueryHandler creates a handler for overweight-ship queries.
func NewGetOverweightShipsQueryHandler(db *gorm.DB) GetOverweightShipsQueryHandler {
	return GetOverweightShipsQueryHandler{db: db}
}

// Handle executes the query. Only ships whose summed container load is
// strictly above their capacity are returned, heaviest overload first.
func (h GetOverweightShipsQueryHandler) Handle(
	ctx context.Context,
	query GetOverweightShipsQuery,
) ([]GetOverweightShipsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ships := make([]GetOverweightShipsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.name,
			s.max_weight_capacity,
			SUM(c.load_mass) AS total_load
		FROM ships s
		JOIN containers c ON c.ship_id = s.id
		GROUP BY s.id, s.name, s.max_weight_capacity
		HAVING SUM(c.load_mass) > s.max_weight_capacity
		ORDER BY SUM(c.load_mass) - s.max_weight_capacity DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetOverweightShipsQueryResponse
		var id uuid.UUID

		err = rows.Scan(&id, &response.Name, &response.MaxWeightCapacity, &response.TotalLoad)
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
