package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrBoardContainerCommandIsNotConstructed = errors.New(
	"BoardContainerCommand must be created via NewBoardContainerCommand constructor",
)

// BoardContainerCommand represents a request to board a container onto a ship.
type BoardContainerCommand struct { //nolint:recvcheck //using for validation
	shipID kernel.UUID
	serial kernel.SerialNumber

	guard guard.ConstructorGuard
}

// NewBoardContainerCommand creates a command to board the container with the
// given serial onto the ship with the given ID.
func NewBoardContainerCommand(shipID, serial string) (BoardContainerCommand, error) {
	command := BoardContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipID(shipID),
		command.setSerial(serial),
	); err != nil {
		return BoardContainerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c BoardContainerCommand) Validate() error {
	return c.guard.Validate(ErrBoardContainerCommandIsNotConstructed)
}

// ShipID returns the target ship ID.
func (c BoardContainerCommand) ShipID() kernel.UUID {
	return c.shipID
}

// Serial returns the container serial number to board.
func (c BoardContainerCommand) Serial() kernel.SerialNumber {
	return c.serial
}

func (c *BoardContainerCommand) setShipID(shipID string) error {
	parsed, err := kernel.UUIDFromString(shipID)
	if err != nil {
		return err
	}

	c.shipID = parsed
	return nil
}

func (c *BoardContainerCommand) setSerial(serial string) error {
	parsed, err := kernel.SerialNumberFromString(serial)
	if err != nil {
		return err
	}

	c.serial = parsed
	return nil
}
