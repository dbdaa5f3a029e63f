package container

import (
	"errors"
	"fmt"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

// ErrBasicContainerIsNotConstructed is returned when using an improperly
// initialized BasicContainer.
var ErrBasicContainerIsNotConstructed = errors.New(
	"BasicContainer must be created via NewBasicContainer constructor")

// BasicContainer provides the shared container mechanics: identity, physical
// dimensions, cargo accounting, and the fallback load policy. Every shipped
// variant embeds it and shadows Load with its own total policy; the basic
// policy itself fails hard with *OverfillError when the structural capacity
// would be exceeded.
//
// Invariants:
//   - loadMass >= 0 at all times
//   - loadMass <= maxWeight after any successful basic Load
//   - serial number and dimensions are immutable after construction
type BasicContainer struct {
	// serial uniquely identifies the container fleet-wide
	serial kernel.SerialNumber

	// loadMass is the current cargo mass in kilograms
	loadMass float64

	// maxWeight is the structural capacity ceiling in kilograms
	maxWeight float64

	// height and depth are informational physical dimensions
	height float64
	depth  float64

	// guard ensures the container was properly constructed
	guard guard.ConstructorGuard
}

// NewBasicContainer creates an empty basic container.
// Serial numbers are allocated by the Registry; the serial's type code must
// be the basic code. Capacity must be positive, dimensions non-negative.
func NewBasicContainer(serial kernel.SerialNumber, maxWeight, height, depth float64) (*BasicContainer, error) {
	base, err := newBase(serial, kernel.TypeCodeBasic, maxWeight, height, depth)
	if err != nil {
		return nil, err
	}
	return &base, nil
}

// RestoreBasicContainer reconstructs a basic container from persistent
// storage, including its current cargo mass.
func RestoreBasicContainer(serial kernel.SerialNumber, loadMass, maxWeight, height, depth float64) (*BasicContainer, error) {
	base, err := restoreBase(serial, kernel.TypeCodeBasic, loadMass, maxWeight, height, depth)
	if err != nil {
		return nil, err
	}
	return &base, nil
}

// newBase builds the shared container state for a fresh container of the
// given type code. Used by NewBasicContainer and the variant constructors.
func newBase(serial kernel.SerialNumber, code kernel.TypeCode, maxWeight, height, depth float64) (BasicContainer, error) {
	c := BasicContainer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setSerial(serial, code),
		c.setMaxWeight(maxWeight),
		c.setDimensions(height, depth),
	); err != nil {
		return BasicContainer{}, err
	}

	return c, nil
}

// restoreBase rebuilds the shared container state from persisted values.
func restoreBase(serial kernel.SerialNumber, code kernel.TypeCode, loadMass, maxWeight, height, depth float64) (BasicContainer, error) {
	c, err := newBase(serial, code, maxWeight, height, depth)
	if err != nil {
		return BasicContainer{}, err
	}

	if err := c.setLoadMass(loadMass); err != nil {
		return BasicContainer{}, err
	}

	return c, nil
}

// SerialNumber returns the container's immutable identity.
func (c *BasicContainer) SerialNumber() kernel.SerialNumber {
	return c.serial
}

// Kind reports the container variant.
func (c *BasicContainer) Kind() Kind {
	return KindBasic
}

// LoadMass returns the current cargo mass in kilograms.
func (c *BasicContainer) LoadMass() float64 {
	return c.loadMass
}

// MaxWeight returns the structural capacity ceiling in kilograms.
func (c *BasicContainer) MaxWeight() float64 {
	return c.maxWeight
}

// Height returns the container height.
func (c *BasicContainer) Height() float64 {
	return c.height
}

// Depth returns the container depth.
func (c *BasicContainer) Depth() float64 {
	return c.depth
}

// IsEqual compares two containers by serial number.
func (c *BasicContainer) IsEqual(other Container) bool {
	return other != nil && c.serial.IsEqual(other.SerialNumber())
}

// Load applies the fallback load policy: the mass is added unless it would
// push the container past its structural capacity, in which case the
// operation aborts with *OverfillError. Shipped variants replace this policy
// entirely; it is only reachable on a BasicContainer used directly.
func (c *BasicContainer) Load(mass float64) (LoadResult, error) {
	if err := validateMass(mass); err != nil {
		return LoadResult{}, err
	}

	if c.loadMass+mass > c.maxWeight {
		return LoadResult{}, NewOverfillError(c.serial, c.loadMass+mass, c.maxWeight)
	}

	c.addMass(mass)
	return LoadAccepted(), nil
}

// Unload empties the container.
func (c *BasicContainer) Unload() {
	c.loadMass = 0
}

// Describe returns the cargo summary line, e.g. "KON-B-1: Load 500/1000 kg".
// The format is part of the observable reporting contract.
func (c *BasicContainer) Describe() string {
	return fmt.Sprintf("%s: Load %s/%s kg", c.serial, formatMass(c.loadMass), formatMass(c.maxWeight))
}

// Validate checks that the container was built via its constructor.
func (c *BasicContainer) Validate() error {
	if c == nil {
		return ErrBasicContainerIsNotConstructed
	}
	return c.guard.Validate(ErrBasicContainerIsNotConstructed)
}

// addMass increases the cargo mass. Callers have already validated the mass
// and checked their policy ceiling.
func (c *BasicContainer) addMass(mass float64) {
	c.loadMass += mass
}

func (c *BasicContainer) setSerial(serial kernel.SerialNumber, code kernel.TypeCode) error {
	if err := serial.Validate(); err != nil {
		return err
	}

	if serial.Code() != code {
		return errs.NewValueIsInvalidErrorWithCause(
			"serialNumber is invalid",
			fmt.Errorf("%s does not carry type code %s", serial, code),
		)
	}

	c.serial = serial
	return nil
}

func (c *BasicContainer) setMaxWeight(maxWeight float64) error {
	if maxWeight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxWeight is invalid",
			fmt.Errorf("%v is not greater than 0", maxWeight),
		)
	}

	c.maxWeight = maxWeight
	return nil
}

func (c *BasicContainer) setDimensions(height, depth float64) error {
	if height < 0 || depth < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"dimensions are invalid",
			fmt.Errorf("height %v and depth %v must not be negative", height, depth),
		)
	}

	c.height = height
	c.depth = depth
	return nil
}

// setLoadMass sets the cargo mass directly. Used during restoration and by
// the gas residue rule.
func (c *BasicContainer) setLoadMass(loadMass float64) error {
	if err := validateMass(loadMass); err != nil {
		return err
	}
	if loadMass > c.maxWeight {
		return errs.NewValueIsOutOfRangeError("loadMass", loadMass, 0, c.maxWeight)
	}

	c.loadMass = loadMass
	return nil
}
