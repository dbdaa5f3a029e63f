package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var (
	ErrTransferContainerCommandIsNotConstructed = errors.New(
		"TransferContainerCommand must be created via NewTransferContainerCommand constructor",
	)
	ErrShipsMustDiffer = errors.New("source and target ship must differ")
)

// TransferContainerCommand represents a request to move a container between
// two ships.
type TransferContainerCommand struct { //nolint:recvcheck //using for validation
	sourceShipID kernel.UUID
	targetShipID kernel.UUID
	serial       kernel.SerialNumber

	guard guard.ConstructorGuard
}

// NewTransferContainerCommand creates a command to transfer the container
// with the given serial from the source ship to the target ship.
func NewTransferContainerCommand(sourceShipID, targetShipID, serial string) (TransferContainerCommand, error) {
	command := TransferContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSourceShipID(sourceShipID),
		command.setTargetShipID(targetShipID),
		command.setSerial(serial),
	); err != nil {
		return TransferContainerCommand{}, err
	}

	if command.sourceShipID.IsEqual(command.targetShipID) {
		return TransferContainerCommand{}, ErrShipsMustDiffer
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c TransferContainerCommand) Validate() error {
	return c.guard.Validate(ErrTransferContainerCommandIsNotConstructed)
}

// SourceShipID returns the ship the container leaves.
func (c TransferContainerCommand) SourceShipID() kernel.UUID {
	return c.sourceShipID
}

// TargetShipID returns the ship the container should board.
func (c TransferContainerCommand) TargetShipID() kernel.UUID {
	return c.targetShipID
}

// Serial returns the container serial number to transfer.
func (c TransferContainerCommand) Serial() kernel.SerialNumber {
	return c.serial
}

func (c *TransferContainerCommand) setSourceShipID(shipID string) error {
	parsed, err := kernel.UUIDFromString(shipID)
	if err != nil {
		return err
	}

	c.sourceShipID = parsed
	return nil
}

func (c *TransferContainerCommand) setTargetShipID(shipID string) error {
	parsed, err := kernel.UUIDFromString(shipID)
	if err != nil {
		return err
	}

	c.targetShipID = parsed
	return nil
}

func (c *TransferContainerCommand) setSerial(serial string) error {
	parsed, err := kernel.SerialNumberFromString(serial)
	if err != nil {
		return err
	}

	c.serial = parsed
	return nil
}
