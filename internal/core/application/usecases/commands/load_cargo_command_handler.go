package commands

import (
	"context"

	"fleet/internal/core/domain/model/container"
)

// LoadCargoCommandHandler handles cargo loading. The container's own load
// policy decides the outcome: variants warn and reject over their ceiling,
// the basic container fails hard with an OverfillError.
type LoadCargoCommandHandler struct {
	uowFactory ContainerUoWFactory
}

// NewLoadCargoCommandHandler creates a handler for cargo loading.
func NewLoadCargoCommandHandler(uowFactory ContainerUoWFactory) LoadCargoCommandHandler {
	return LoadCargoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cargo loading command and returns the container's
// load result. A rejected load is not an error; the container has already
// reported the hazard and kept its mass unchanged.
func (h *LoadCargoCommandHandler) Handle(ctx context.Context, cmd LoadCargoCommand) (container.LoadResult, error) {
	if err := cmd.Validate(); err != nil {
		return container.LoadResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return container.LoadResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	containerRepo := uow.ContainerRepository()
	aggregate, err := containerRepo.Get(ctx, cmd.Serial())
	if err != nil {
		return container.LoadResult{}, err
	}

	result, err := aggregate.Load(cmd.Mass())
	if err != nil {
		return container.LoadResult{}, err
	}

	if result.Rejected() {
		return result, nil
	}

	if err = containerRepo.Update(ctx, aggregate); err != nil {
		return container.LoadResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return container.LoadResult{}, err
	}

	return result, nil
}
