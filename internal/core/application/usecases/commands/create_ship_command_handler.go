package commands

import (
	"context"

	"fleet/internal/core/domain/model/ship"
)

// CreateShipCommandHandler handles the business logic for ship registration.
// Creates and persists new ship aggregates wired to the fleet's report sink.
type CreateShipCommandHandler struct {
	uowFactory ShipUoWFactory
	sink       ship.ReportSink
}

// NewCreateShipCommandHandler creates a handler for ship registration.
// Requires a ShipUoWFactory for transactional persistence and the report
// sink new ships will write their lines to.
func NewCreateShipCommandHandler(uowFactory ShipUoWFactory, sink ship.ReportSink) CreateShipCommandHandler {
	return CreateShipCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
	}
}

// Handle processes the ship creation command.
// Creates a new ship aggregate and persists it within a transaction.
// Automatically rolls back on any error to prevent partial data.
func (h *CreateShipCommandHandler) Handle(ctx context.Context, cmd CreateShipCommand) error {
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

	shipRepo := uow.ShipRepository()
	aggregate, err := ship.NewShip(cmd.ShipID(), cmd.Name(), cmd.MaxContainers(), cmd.CapacityTonnes(), h.sink)
	if err != nil {
		return err
	}

	if err = shipRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
