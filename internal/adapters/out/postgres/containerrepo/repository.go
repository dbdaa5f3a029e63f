package containerrepo

import (
	"context"
	"errors"

	"fleet/internal/core/domain/model/container"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormContainerRepository implements ContainerRepository using GORM.
type GormContainerRepository struct {
	db       *gorm.DB
	tracker  aggregateTracker
	notifier container.HazardNotifier
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormContainerRepository creates a new GORM container repository.
// The notifier is injected into every restored container so hazards keep
// flowing to the fleet's report sink.
func NewGormContainerRepository(
	db *gorm.DB,
	tracker aggregateTracker,
	notifier container.HazardNotifier,
) *GormContainerRepository {
	return &GormContainerRepository{
		db:       db,
		tracker:  tracker,
		notifier: notifier,
	}
}

// Add saves a newly registered container to the database.
func (r *GormContainerRepository) Add(ctx context.Context, aggregate container.Container) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(dto.Serial, aggregate)
	return nil
}

// Update saves a container's cargo state. Ship membership columns are owned
// by the ship repository and are deliberately not written here.
func (r *GormContainerRepository) Update(ctx context.Context, aggregate container.Container) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ContainerDTO{}).
		Where("serial = ?", dto.Serial).
		Select("load_mass", "max_weight", "height", "depth", "hazardous", "pressure", "product_type", "temperature").
		Updates(dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(dto.Serial, aggregate)
	return nil
}

// Get retrieves a container by serial number.
func (r *GormContainerRepository) Get(ctx context.Context, serial kernel.SerialNumber) (container.Container, error) {
	if err := serial.Validate(); err != nil {
		return nil, err
	}

	var dto ContainerDTO
	if err := r.db.WithContext(ctx).First(&dto, "serial = ?", serial.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("container", serial.String())
		}
		return nil, err
	}

	return ToDomain(dto, r.notifier)
}

// GetUnboarded retrieves every container that is not on any ship, in serial order.
func (r *GormContainerRepository) GetUnboarded(ctx context.Context) ([]container.Container, error) {
	var dtos []ContainerDTO
	if err := r.db.WithContext(ctx).
		Where("ship_id IS NULL").
		Order("serial").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	containers := make([]container.Container, 0, len(dtos))
	for _, dto := range dtos {
		c, err := ToDomain(dto, r.notifier)
		if err != nil {
			return nil, err
		}
		containers = append(containers, c)
	}

	return containers, nil
}
