package commands

import (
	"context"
)

// UnloadCargoCommandHandler handles cargo unloading.
type UnloadCargoCommandHandler struct {
	uowFactory ContainerUoWFactory
}

// NewUnloadCargoCommandHandler creates a handler for cargo unloading.
func NewUnloadCargoCommandHandler(uowFactory ContainerUoWFactory) UnloadCargoCommandHandler {
	return UnloadCargoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cargo unloading command.
func (h *UnloadCargoCommandHandler) Handle(ctx context.Context, cmd UnloadCargoCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	containerRepo := uow.ContainerRepository()
	aggregate, err := containerRepo.Get(ctx, cmd.Serial())
	if err != nil {
		return err
	}

	aggregate.Unload()

	if err = containerRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
