package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrUnloadCargoCommandIsNotConstructed = errors.New(
	"UnloadCargoCommand must be created via NewUnloadCargoCommand constructor",
)

// UnloadCargoCommand represents a request to empty a container's cargo.
// Gas containers keep their residue; everything else empties completely.
type UnloadCargoCommand struct { //nolint:recvcheck //using for validation
	serial kernel.SerialNumber

	guard guard.ConstructorGuard
}

// NewUnloadCargoCommand creates a command to unload the container with the
// given serial number.
func NewUnloadCargoCommand(serial string) (UnloadCargoCommand, error) {
	command := UnloadCargoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setSerial(serial); err != nil {
		return UnloadCargoCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UnloadCargoCommand) Validate() error {
	return c.guard.Validate(ErrUnloadCargoCommandIsNotConstructed)
}

// Serial returns the target container serial number.
func (c UnloadCargoCommand) Serial() kernel.SerialNumber {
	return c.serial
}

func (c *UnloadCargoCommand) setSerial(serial string) error {
	parsed, err := kernel.SerialNumberFromString(serial)
	if err != nil {
		return err
	}

	c.serial = parsed
	return nil
}
