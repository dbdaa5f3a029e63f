package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrUnloadContainerCommandIsNotConstructed = errors.New(
	"UnloadContainerCommand must be created via NewUnloadContainerCommand constructor",
)

// UnloadContainerCommand represents a request to take a container off a ship.
// It removes ship membership only; the container keeps its cargo.
type UnloadContainerCommand struct { //nolint:recvcheck //using for validation
	shipID kernel.UUID
	serial kernel.SerialNumber

	guard guard.ConstructorGuard
}

// NewUnloadContainerCommand creates a command to remove the container with
// the given serial from the ship with the given ID.
func NewUnloadContainerCommand(shipID, serial string) (UnloadContainerCommand, error) {
	command := UnloadContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipID(shipID),
		command.setSerial(serial),
	); err != nil {
		return UnloadContainerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UnloadContainerCommand) Validate() error {
	return c.guard.Validate(ErrUnloadContainerCommandIsNotConstructed)
}

// ShipID returns the ship to take the container from.
func (c UnloadContainerCommand) ShipID() kernel.UUID {
	return c.shipID
}

// Serial returns the container serial number to remove.
func (c UnloadContainerCommand) Serial() kernel.SerialNumber {
	return c.serial
}

func (c *UnloadContainerCommand) setShipID(shipID string) error {
	parsed, err := kernel.UUIDFromString(shipID)
	if err != nil {
		return err
	}

	c.shipID = parsed
	return nil
}

func (c *UnloadContainerCommand) setSerial(serial string) error {
	parsed, err := kernel.SerialNumberFromString(serial)
	if err != nil {
		return err
	}

	c.serial = parsed
	return nil
}
