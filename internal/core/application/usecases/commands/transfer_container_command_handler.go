package commands

import (
	"context"
)

// TransferContainerCommandHandler handles moving a container between ships.
//
// In legacy mode the transfer removes the container from the source ship
// before offering it to the target; when the target rejects it, the
// container ends up on neither ship. The two-phase mode removes it from the
// source only after the target accepts. Both outcomes are persisted exactly
// as the domain produced them.
type TransferContainerCommandHandler struct {
	uowFactory UoWFactory
	twoPhase   bool
}

// NewTransferContainerCommandHandler creates a handler for container
// transfers. twoPhase selects the safe reserve-then-commit variant.
func NewTransferContainerCommandHandler(uowFactory UoWFactory, twoPhase bool) TransferContainerCommandHandler {
	return TransferContainerCommandHandler{
		uowFactory: uowFactory,
		twoPhase:   twoPhase,
	}
}

// Handle processes the transfer command and reports whether the container
// ended up on the target ship.
func (h *TransferContainerCommandHandler) Handle(ctx context.Context, cmd TransferContainerCommand) (bool, error) {
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
	source, err := shipRepo.Get(ctx, cmd.SourceShipID())
	if err != nil {
		return false, err
	}

	target, err := shipRepo.Get(ctx, cmd.TargetShipID())
	if err != nil {
		return false, err
	}

	var moved bool
	if h.twoPhase {
		moved, err = source.TransferContainerTwoPhase(cmd.Serial(), target)
	} else {
		moved, err = source.TransferContainer(cmd.Serial(), target)
	}
	if err != nil {
		return false, err
	}

	if err = shipRepo.Update(ctx, source); err != nil {
		return false, err
	}

	if err = shipRepo.Update(ctx, target); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return moved, nil
}
