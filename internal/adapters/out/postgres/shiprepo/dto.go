// Package shiprepo provides data transfer objects and mapping functions for
// ship persistence. Ship membership of containers is stored as a nullable
// reference on the containers table together with a position column that
// preserves boarding order.
package shiprepo

import (
	"fleet/internal/adapters/out/postgres/containerrepo"
	"fleet/internal/core/domain/model/container"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/ship"

	"github.com/google/uuid"
)

// ShipDTO represents the database structure for persisting ship aggregates.
type ShipDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string    `gorm:"type:varchar(255);not null"`
	MaxContainers     int       `gorm:"type:int;not null"`
	MaxWeightCapacity float64   `gorm:"not null"`
}

// TableName specifies the database table name for ship entities.
func (ShipDTO) TableName() string {
	return "ships"
}

// fromDomain converts a ship domain aggregate to its database representation.
// Container membership is synced separately against the containers table.
func fromDomain(aggregate *ship.Ship) ShipDTO {
	return ShipDTO{
		ID:                aggregate.ID().Bytes(),
		Name:              aggregate.Name(),
		MaxContainers:     aggregate.MaxContainers(),
		MaxWeightCapacity: aggregate.MaxWeightCapacity(),
	}
}

// toDomain converts a database DTO and its boarded containers to a ship
// aggregate, wiring in the report sink restored ships write to.
func toDomain(dto ShipDTO, containers []container.Container, sink ship.ReportSink) (*ship.Ship, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return ship.RestoreShip(id, dto.Name, dto.MaxContainers, dto.MaxWeightCapacity, containers, sink)
}

// containersToDomain maps boarded container DTOs, already sorted by
// position, to domain containers.
func containersToDomain(
	dtos []containerrepo.ContainerDTO,
	notifier container.HazardNotifier,
) ([]container.Container, error) {
	containers := make([]container.Container, 0, len(dtos))
	for _, dto := range dtos {
		c, err := containerrepo.ToDomain(dto, notifier)
		if err != nil {
			return nil, err
		}
		containers = append(containers, c)
	}
	return containers, nil
}
