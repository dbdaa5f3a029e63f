// Package containerrepo provides data transfer objects and mapping functions
// for container persistence. It implements the repository pattern for
// containers, handling the conversion between the domain variants and their
// single-table database representation.
package containerrepo

import (
	"fleet/internal/core/domain/model/container"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"

	"github.com/google/uuid"
)

// ContainerDTO represents the database structure for persisting containers.
// All variants share one table with a kind discriminator; variant-specific
// columns are zero for the variants that do not carry them. Ship membership
// is a nullable reference owned by the ship repository.
type ContainerDTO struct {
	Serial      string     `gorm:"type:varchar(32);primaryKey"`
	Kind        string     `gorm:"type:varchar(16);not null"`
	LoadMass    float64    `gorm:"not null"`
	MaxWeight   float64    `gorm:"not null"`
	Height      float64    `gorm:"not null"`
	Depth       float64    `gorm:"not null"`
	Hazardous   bool       `gorm:"not null;default:false"`
	Pressure    float64    `gorm:"not null;default:0"`
	ProductType string     `gorm:"type:varchar(64)"`
	Temperature float64    `gorm:"not null;default:0"`
	ShipID      *uuid.UUID `gorm:"type:uuid;index"`
	Position    int        `gorm:"not null;default:0"`
}

// TableName specifies the database table name for container entities.
func (ContainerDTO) TableName() string {
	return "containers"
}

// FromDomain converts a container to its database representation.
// Ship membership (ShipID, Position) is owned by the ship repository and is
// left unset here.
func FromDomain(c container.Container) ContainerDTO {
	dto := ContainerDTO{
		Serial:    c.SerialNumber().String(),
		Kind:      c.Kind().String(),
		LoadMass:  c.LoadMass(),
		MaxWeight: c.MaxWeight(),
		Height:    c.Height(),
		Depth:     c.Depth(),
	}

	switch v := c.(type) {
	case *container.LiquidContainer:
		dto.Hazardous = v.IsHazardous()
	case *container.GasContainer:
		dto.Pressure = v.Pressure()
	case *container.RefrigeratedContainer:
		dto.ProductType = v.ProductType()
		dto.Temperature = v.Temperature()
	}

	return dto
}

// ToDomain converts a database DTO to the matching container variant.
// Restore constructors skip construction-time hazard checks, so reading a
// container back does not re-emit its hazards.
func ToDomain(dto ContainerDTO, notifier container.HazardNotifier) (container.Container, error) {
	serial, err := kernel.SerialNumberFromString(dto.Serial)
	if err != nil {
		return nil, err
	}

	kind, err := container.KindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}

	switch kind {
	case container.KindBasic:
		return container.RestoreBasicContainer(serial, dto.LoadMass, dto.MaxWeight, dto.Height, dto.Depth)
	case container.KindLiquid:
		return container.RestoreLiquidContainer(
			serial, dto.LoadMass, dto.MaxWeight, dto.Height, dto.Depth, dto.Hazardous, notifier)
	case container.KindGas:
		return container.RestoreGasContainer(
			serial, dto.LoadMass, dto.MaxWeight, dto.Height, dto.Depth, dto.Pressure, notifier)
	case container.KindRefrigerated:
		return container.RestoreRefrigeratedContainer(
			serial, dto.LoadMass, dto.MaxWeight, dto.Height, dto.Depth, dto.ProductType, dto.Temperature, notifier)
	default:
		return nil, errs.NewValueIsInvalidError("kind is invalid")
	}
}
