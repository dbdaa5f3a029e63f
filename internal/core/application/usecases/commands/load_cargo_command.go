package commands

import (
	"errors"
	"math"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var (
	ErrLoadCargoCommandIsNotConstructed = errors.New(
		"LoadCargoCommand must be created via NewLoadCargoCommand constructor",
	)
	ErrMassIsInvalid = errors.New("mass must be finite and not negative")
)

// LoadCargoCommand represents a request to load cargo mass into a container,
// whether or not it is currently on a ship. A ship's weight ceiling is only
// checked at boarding time, never here.
type LoadCargoCommand struct { //nolint:recvcheck //using for validation
	serial kernel.SerialNumber
	mass   float64

	guard guard.ConstructorGuard
}

// NewLoadCargoCommand creates a command to load cargo into the container
// with the given serial number.
func NewLoadCargoCommand(serial string, mass float64) (LoadCargoCommand, error) {
	command := LoadCargoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSerial(serial),
		command.setMass(mass),
	); err != nil {
		return LoadCargoCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c LoadCargoCommand) Validate() error {
	return c.guard.Validate(ErrLoadCargoCommandIsNotConstructed)
}

// Serial returns the target container serial number.
func (c LoadCargoCommand) Serial() kernel.SerialNumber {
	return c.serial
}

// Mass returns the cargo mass in kilograms.
func (c LoadCargoCommand) Mass() float64 {
	return c.mass
}

func (c *LoadCargoCommand) setSerial(serial string) error {
	parsed, err := kernel.SerialNumberFromString(serial)
	if err != nil {
		return err
	}

	c.serial = parsed
	return nil
}

func (c *LoadCargoCommand) setMass(mass float64) error {
	if math.IsNaN(mass) || math.IsInf(mass, 0) || mass < 0 {
		return ErrMassIsInvalid
	}

	c.mass = mass
	return nil
}
