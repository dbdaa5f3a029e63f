package container

import (
	"fmt"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
)

const (
	// liquidHazardousLoadFactor caps hazardous liquid cargo at half the
	// structural capacity.
	liquidHazardousLoadFactor = 0.5

	// liquidStandardLoadFactor caps ordinary liquid cargo at 90% of the
	// structural capacity, leaving expansion headroom.
	liquidStandardLoadFactor = 0.9
)

// LiquidContainer carries liquid cargo under a reduced load ceiling.
// A hazardous liquid may fill at most half of the structural capacity,
// an ordinary liquid at most 90% of it. Exceeding the ceiling never fails
// hard: the attempt is reported through the hazard notifier and discarded.
type LiquidContainer struct {
	BasicContainer

	// hazardous marks cargo that forces the reduced 50% ceiling
	hazardous bool

	// notifier receives the danger signal on rejected loads
	notifier HazardNotifier
}

// NewLiquidContainer creates an empty liquid container. The serial must
// carry the liquid type code, and a hazard notifier is required because
// the variant's load policy reports instead of failing.
func NewLiquidContainer(
	serial kernel.SerialNumber,
	maxWeight, height, depth float64,
	hazardous bool,
	notifier HazardNotifier,
) (*LiquidContainer, error) {
	base, err := newBase(serial, kernel.TypeCodeLiquid, maxWeight, height, depth)
	if err != nil {
		return nil, err
	}

	if notifier == nil {
		return nil, errs.NewValueIsRequiredError("hazard notifier is required")
	}

	return &LiquidContainer{
		BasicContainer: base,
		hazardous:      hazardous,
		notifier:       notifier,
	}, nil
}

// RestoreLiquidContainer reconstructs a liquid container from persistent
// storage, including its current cargo mass.
func RestoreLiquidContainer(
	serial kernel.SerialNumber,
	loadMass, maxWeight, height, depth float64,
	hazardous bool,
	notifier HazardNotifier,
) (*LiquidContainer, error) {
	base, err := restoreBase(serial, kernel.TypeCodeLiquid, loadMass, maxWeight, height, depth)
	if err != nil {
		return nil, err
	}

	if notifier == nil {
		return nil, errs.NewValueIsRequiredError("hazard notifier is required")
	}

	return &LiquidContainer{
		BasicContainer: base,
		hazardous:      hazardous,
		notifier:       notifier,
	}, nil
}

// Kind reports the container variant.
func (c *LiquidContainer) Kind() Kind {
	return KindLiquid
}

// IsHazardous reports whether the cargo forces the reduced ceiling.
func (c *LiquidContainer) IsHazardous() bool {
	return c.hazardous
}

// LoadCeiling returns the effective load limit for this container:
// 50% of capacity for hazardous cargo, 90% otherwise.
func (c *LiquidContainer) LoadCeiling() float64 {
	if c.hazardous {
		return c.MaxWeight() * liquidHazardousLoadFactor
	}
	return c.MaxWeight() * liquidStandardLoadFactor
}

// Load applies the liquid policy. A mass that would exceed the effective
// ceiling is reported as a hazard and silently rejected; the message carries
// no serial-number suffix. Reaching the ceiling exactly is allowed.
func (c *LiquidContainer) Load(mass float64) (LoadResult, error) {
	if err := validateMass(mass); err != nil {
		return LoadResult{}, err
	}

	if c.LoadMass()+mass > c.LoadCeiling() {
		message := fmt.Sprintf(
			"Danger! Attempt to load %s kg exceeds the safety limit of this liquid container",
			formatMass(mass),
		)
		c.notifier.NotifyDanger(message)
		return LoadRejected(message), nil
	}

	c.addMass(mass)
	return LoadAccepted(), nil
}
