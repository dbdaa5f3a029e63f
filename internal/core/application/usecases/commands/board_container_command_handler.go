package commands

import (
	"context"
)

// BoardContainerCommandHandler handles boarding a container onto a ship.
// The ship decides acceptance; a capacity rejection is reported to the
// ship's sink and surfaces here as accepted == false, not as an error.
type BoardContainerCommandHandler struct {
	uowFactory UoWFactory
}

// NewBoardContainerCommandHandler creates a handler for container boarding.
// Boarding touches both aggregates, so it needs the cross-aggregate factory.
func NewBoardContainerCommandHandler(uowFactory UoWFactory) BoardContainerCommandHandler {
	return BoardContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the boarding command and reports whether the ship
// accepted the container.
func (h *BoardContainerCommandHandler) Handle(ctx context.Context, cmd BoardContainerCommand) (bool, error) {
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

	boarded, err := uow.ContainerRepository().Get(ctx, cmd.Serial())
	if err != nil {
		return false, err
	}

	accepted, err := aggregate.LoadContainer(boarded)
	if err != nil {
		return false, err
	}
	if !accepted {
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
