package commands

import (
	"context"

	"fleet/internal/core/domain/model/container"
)

// RegisterContainerCommandHandler handles container registration.
// It builds the requested variant through the fleet's container registry,
// which allocates the serial number, and persists it unboarded.
type RegisterContainerCommandHandler struct {
	uowFactory ContainerUoWFactory
	registry   *container.Registry
}

// NewRegisterContainerCommandHandler creates a handler for container
// registration over the given registry.
func NewRegisterContainerCommandHandler(
	uowFactory ContainerUoWFactory,
	registry *container.Registry,
) RegisterContainerCommandHandler {
	return RegisterContainerCommandHandler{
		uowFactory: uowFactory,
		registry:   registry,
	}
}

// Handle processes the container registration command. The built container
// is returned so callers can report the allocated serial number.
func (h *RegisterContainerCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterContainerCommand,
) (container.Container, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.buildContainer(cmd)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ContainerRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// buildContainer dispatches to the registry factory matching the requested kind.
func (h *RegisterContainerCommandHandler) buildContainer(cmd RegisterContainerCommand) (container.Container, error) {
	switch cmd.Kind() {
	case container.KindBasic:
		return h.registry.NewBasicContainer(cmd.MaxWeight(), cmd.Height(), cmd.Depth())
	case container.KindLiquid:
		return h.registry.NewLiquidContainer(cmd.MaxWeight(), cmd.Height(), cmd.Depth(), cmd.Hazardous())
	case container.KindGas:
		return h.registry.NewGasContainer(cmd.MaxWeight(), cmd.Height(), cmd.Depth(), cmd.Pressure())
	case container.KindRefrigerated:
		return h.registry.NewRefrigeratedContainer(
			cmd.MaxWeight(), cmd.Height(), cmd.Depth(), cmd.ProductType(), cmd.Temperature())
	default:
		return nil, cmd.Kind().Validate()
	}
}
