package shiprepo

import (
	"context"
	"errors"

	"fleet/internal/adapters/out/postgres/containerrepo"
	"fleet/internal/core/domain/model/container"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/ship"
	"fleet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipRepository implements ShipRepository using GORM.
type GormShipRepository struct {
	db       *gorm.DB
	tracker  aggregateTracker
	notifier container.HazardNotifier
	sink     ship.ReportSink
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormShipRepository creates a new GORM ship repository. The notifier and
// sink are injected into restored aggregates so their report lines keep
// flowing after a round-trip through the database.
func NewGormShipRepository(
	db *gorm.DB,
	tracker aggregateTracker,
	notifier container.HazardNotifier,
	sink ship.ReportSink,
) *GormShipRepository {
	return &GormShipRepository{
		db:       db,
		tracker:  tracker,
		notifier: notifier,
		sink:     sink,
	}
}

// Add saves a new ship to the database and records the membership of any
// containers it already carries.
func (r *GormShipRepository) Add(ctx context.Context, aggregate *ship.Ship) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := r.syncMembership(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update saves an existing ship and reconciles container membership:
// containers that left the ship are detached, boarded ones are attached in
// boarding order.
func (r *GormShipRepository) Update(ctx context.Context, aggregate *ship.Ship) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.syncMembership(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves a ship by ID with its boarded containers in boarding order.
func (r *GormShipRepository) Get(ctx context.Context, id kernel.UUID) (*ship.Ship, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ship", id.String())
		}
		return nil, err
	}

	containers, err := r.boardedContainers(ctx, dto)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, containers, r.sink)
}

// GetAll retrieves every ship with its boarded containers.
func (r *GormShipRepository) GetAll(ctx context.Context) ([]*ship.Ship, error) {
	var dtos []ShipDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	ships := make([]*ship.Ship, 0, len(dtos))
	for _, dto := range dtos {
		containers, err := r.boardedContainers(ctx, dto)
		if err != nil {
			return nil, err
		}

		aggregate, err := toDomain(dto, containers, r.sink)
		if err != nil {
			return nil, err
		}
		ships = append(ships, aggregate)
	}

	return ships, nil
}

// boardedContainers loads the ship's containers sorted by boarding position.
func (r *GormShipRepository) boardedContainers(ctx context.Context, dto ShipDTO) ([]container.Container, error) {
	var containerDTOs []containerrepo.ContainerDTO
	if err := r.db.WithContext(ctx).
		Where("ship_id = ?", dto.ID).
		Order("position").
		Find(&containerDTOs).Error; err != nil {
		return nil, err
	}

	return containersToDomain(containerDTOs, r.notifier)
}

// syncMembership reconciles the containers table with the aggregate's
// current boarding state. Containers that left the ship get a NULL ship_id;
// boarded ones are stamped with the ship and their boarding position.
func (r *GormShipRepository) syncMembership(ctx context.Context, aggregate *ship.Ship) error {
	boarded := aggregate.Containers()
	serials := make([]string, 0, len(boarded))
	for _, c := range boarded {
		serials = append(serials, c.SerialNumber().String())
	}

	detach := r.db.WithContext(ctx).
		Model(&containerrepo.ContainerDTO{}).
		Where("ship_id = ?", aggregate.ID().Bytes())
	if len(serials) > 0 {
		detach = detach.Where("serial NOT IN ?", serials)
	}
	if err := detach.
		Updates(map[string]any{"ship_id": nil, "position": 0}).Error; err != nil {
		return err
	}

	for position, c := range boarded {
		if err := r.db.WithContext(ctx).
			Model(&containerrepo.ContainerDTO{}).
			Where("serial = ?", c.SerialNumber().String()).
			Updates(map[string]any{
				"ship_id":  aggregate.ID().Bytes(),
				"position": position,
			}).Error; err != nil {
			return err
		}
	}

	return nil
}
