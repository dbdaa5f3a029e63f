package commands

import (
	"context"
)

// UnloadContainerCommandHandler handles taking a container off a ship.
// A serial that is not on board is reported to the ship's sink and surfaces
// here as removed == false, not as an error.
type UnloadContainerCommandHandler struct {
	uowFactory ShipUoWFactory
}

// NewUnloadContainerCommandHandler creates a handler for container removal.
func NewUnloadContainerCommandHandler(uowFactory ShipUoWFactory) UnloadContainerCommandHandler {
	return UnloadContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command and reports whether the container
// was on board.
func (h *UnloadContainerCommandHandler) Handle(ctx context.Context, cmd UnloadContainerCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipRepo := uow.ShipRepository()
	aggregate, err := shipRepo.Get(ctx, cmd.ShipID())
	if err != nil {
		return false, err
	}

	if !aggregate.UnloadContainer(cmd.Serial()) {
		return false, nil
	}

	if err = shipRepo.Update(ctx, aggregate); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
