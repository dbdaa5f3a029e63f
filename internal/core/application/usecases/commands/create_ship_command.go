package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var (
	ErrCreateShipCommandIsNotConstructed = errors.New(
		"CreateShipCommand must be created via NewCreateShipCommand constructor",
	)
	ErrNameIsRequired          = errors.New("name is required")
	ErrMaxContainersIsInvalid  = errors.New("maxContainers must be greater than 0")
	ErrCapacityTonnesIsInvalid = errors.New("capacityTonnes must be greater than 0")
)

// CreateShipCommand represents a request to register a new ship in the fleet.
// The weight capacity is given in tonnes, as it appears on the vessel papers;
// the domain stores kilograms.
type CreateShipCommand struct { //nolint:recvcheck //using for validation
	shipID         kernel.UUID
	name           string
	maxContainers  int
	capacityTonnes float64

	guard guard.ConstructorGuard
}

// NewCreateShipCommand creates a command to register a new ship.
// Automatically generates a unique ID for the ship.
func NewCreateShipCommand(name string, maxContainers int, capacityTonnes float64) (CreateShipCommand, error) {
	command := CreateShipCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipID(kernel.NewUUID()),
		command.setName(name),
		command.setMaxContainers(maxContainers),
		command.setCapacityTonnes(capacityTonnes),
	); err != nil {
		return CreateShipCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipCommandIsNotConstructed)
}

// ShipID returns the generated ship ID.
func (c CreateShipCommand) ShipID() kernel.UUID {
	return c.shipID
}

// Name returns the ship name from the command.
func (c CreateShipCommand) Name() string {
	return c.name
}

// MaxContainers returns the container-count limit from the command.
func (c CreateShipCommand) MaxContainers() int {
	return c.maxContainers
}

// CapacityTonnes returns the weight capacity in tonnes from the command.
func (c CreateShipCommand) CapacityTonnes() float64 {
	return c.capacityTonnes
}

func (c *CreateShipCommand) setShipID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shipID = id
	return nil
}

func (c *CreateShipCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateShipCommand) setMaxContainers(maxContainers int) error {
	if maxContainers <= 0 {
		return ErrMaxContainersIsInvalid
	}

	c.maxContainers = maxContainers
	return nil
}

func (c *CreateShipCommand) setCapacityTonnes(capacityTonnes float64) error {
	if capacityTonnes <= 0 {
		return ErrCapacityTonnesIsInvalid
	}

	c.capacityTonnes = capacityTonnes
	return nil
}
