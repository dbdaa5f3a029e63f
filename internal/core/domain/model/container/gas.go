package container

import (
	"fmt"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
)

// gasResidueFactor is the share of the cargo that cannot be purged from a
// gas container on unload.
const gasResidueFactor = 0.05

// GasContainer carries pressurized gas cargo. Its load ceiling equals the
// structural capacity, but overfilling is reported through the hazard
// notifier and rejected rather than failing hard. Unloading leaves 5% of the
// prior load behind as un-purgeable residue.
type GasContainer struct {
	BasicContainer

	// pressure is the nominal operating pressure. Informational only.
	pressure float64

	// notifier receives the danger signal on rejected loads
	notifier HazardNotifier
}

// NewGasContainer creates an empty gas container. The serial must carry the
// gas type code; pressure must not be negative.
func NewGasContainer(
	serial kernel.SerialNumber,
	maxWeight, height, depth, pressure float64,
	notifier HazardNotifier,
) (*GasContainer, error) {
	base, err := newBase(serial, kernel.TypeCodeGas, maxWeight, height, depth)
	if err != nil {
		return nil, err
	}

	if notifier == nil {
		return nil, errs.NewValueIsRequiredError("hazard notifier is required")
	}

	c := &GasContainer{
		BasicContainer: base,
		notifier:       notifier,
	}
	if err := c.setPressure(pressure); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreGasContainer reconstructs a gas container from persistent storage,
// including its current cargo mass.
func RestoreGasContainer(
	serial kernel.SerialNumber,
	loadMass, maxWeight, height, depth, pressure float64,
	notifier HazardNotifier,
) (*GasContainer, error) {
	base, err := restoreBase(serial, kernel.TypeCodeGas, loadMass, maxWeight, height, depth)
	if err != nil {
		return nil, err
	}

	if notifier == nil {
		return nil, errs.NewValueIsRequiredError("hazard notifier is required")
	}

	c := &GasContainer{
		BasicContainer: base,
		notifier:       notifier,
	}
	if err := c.setPressure(pressure); err != nil {
		return nil, err
	}

	return c, nil
}

// Kind reports the container variant.
func (c *GasContainer) Kind() Kind {
	return KindGas
}

// Pressure returns the nominal operating pressure.
func (c *GasContainer) Pressure() float64 {
	return c.pressure
}

// Load applies the gas policy. The ceiling equals the structural capacity;
// exceeding it is reported as a hazard (with the serial-number suffix) and
// the load attempt is discarded.
func (c *GasContainer) Load(mass float64) (LoadResult, error) {
	if err := validateMass(mass); err != nil {
		return LoadResult{}, err
	}

	if c.LoadMass()+mass > c.MaxWeight() {
		message := fmt.Sprintf(
			"Danger! Gas container overfill attempt - Container Serial Number: %s",
			c.SerialNumber(),
		)
		c.notifier.NotifyDanger(message)
		return LoadRejected(message), nil
	}

	c.addMass(mass)
	return LoadAccepted(), nil
}

// Unload empties the container down to the un-purgeable residue: 5% of the
// load present at the moment of unloading.
func (c *GasContainer) Unload() {
	// setLoadMass cannot fail here: the residue is a fraction of a mass that
	// already satisfied the capacity invariant.
	_ = c.setLoadMass(c.LoadMass() * gasResidueFactor)
}

func (c *GasContainer) setPressure(pressure float64) error {
	if pressure < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"pressure is invalid",
			fmt.Errorf("%v is negative", pressure),
		)
	}

	c.pressure = pressure
	return nil
}
