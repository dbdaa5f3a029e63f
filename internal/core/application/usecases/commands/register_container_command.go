package commands

import (
	"errors"

	"fleet/internal/core/domain/model/container"
	"fleet/internal/pkg/guard"
)

var (
	ErrRegisterContainerCommandIsNotConstructed = errors.New(
		"RegisterContainerCommand must be created via NewRegisterContainerCommand constructor",
	)
	ErrMaxWeightIsInvalid   = errors.New("maxWeight must be greater than 0")
	ErrDimensionsAreInvalid = errors.New("height and depth must not be negative")
	ErrPressureIsInvalid    = errors.New("pressure must not be negative")
)

// RegisterContainerCommand represents a request to register a new container.
// The kind selects the variant; hazardous, pressure, productType and
// temperature apply only to the variants that carry them and are ignored for
// the others.
type RegisterContainerCommand struct { //nolint:recvcheck //using for validation
	kind        container.Kind
	maxWeight   float64
	height      float64
	depth       float64
	hazardous   bool
	pressure    float64
	productType string
	temperature float64

	guard guard.ConstructorGuard
}

// NewRegisterContainerCommand creates a command to register a container of
// the given kind. The serial number is allocated by the registry at handling
// time, not here, so sequence numbers follow actual construction order.
func NewRegisterContainerCommand(
	kind string,
	maxWeight, height, depth float64,
	hazardous bool,
	pressure float64,
	productType string,
	temperature float64,
) (RegisterContainerCommand, error) {
	command := RegisterContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setKind(kind),
		command.setMaxWeight(maxWeight),
		command.setDimensions(height, depth),
		command.setPressure(pressure),
	); err != nil {
		return RegisterContainerCommand{}, err
	}

	command.hazardous = hazardous
	command.productType = productType
	command.temperature = temperature
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterContainerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterContainerCommandIsNotConstructed)
}

// Kind returns the container variant from the command.
func (c RegisterContainerCommand) Kind() container.Kind {
	return c.kind
}

// MaxWeight returns the structural capacity in kilograms.
func (c RegisterContainerCommand) MaxWeight() float64 {
	return c.maxWeight
}

// Height returns the container height.
func (c RegisterContainerCommand) Height() float64 {
	return c.height
}

// Depth returns the container depth.
func (c RegisterContainerCommand) Depth() float64 {
	return c.depth
}

// Hazardous reports whether a liquid container carries hazardous cargo.
func (c RegisterContainerCommand) Hazardous() bool {
	return c.hazardous
}

// Pressure returns the gas container pressure.
func (c RegisterContainerCommand) Pressure() float64 {
	return c.pressure
}

// ProductType returns the refrigerated cargo product name.
func (c RegisterContainerCommand) ProductType() string {
	return c.productType
}

// Temperature returns the refrigerated cargo temperature in °C.
func (c RegisterContainerCommand) Temperature() float64 {
	return c.temperature
}

func (c *RegisterContainerCommand) setKind(kind string) error {
	parsed, err := container.KindFromString(kind)
	if err != nil {
		return err
	}

	c.kind = parsed
	return nil
}

func (c *RegisterContainerCommand) setMaxWeight(maxWeight float64) error {
	if maxWeight <= 0 {
		return ErrMaxWeightIsInvalid
	}

	c.maxWeight = maxWeight
	return nil
}

func (c *RegisterContainerCommand) setDimensions(height, depth float64) error {
	if height < 0 || depth < 0 {
		return ErrDimensionsAreInvalid
	}

	c.height = height
	c.depth = depth
	return nil
}

func (c *RegisterContainerCommand) setPressure(pressure float64) error {
	if pressure < 0 {
		return ErrPressureIsInvalid
	}

	c.pressure = pressure
	return nil
}
