package container

import (
	"fmt"
	"strconv"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
)

// minimumSafeTemperatures maps known product types to the minimum
// temperature (°C) their cargo must be kept at. A setting below the minimum,
// or an unknown product type, is a hazard condition.
var minimumSafeTemperatures = map[string]float64{
	"Bananas":    10,
	"Sausages":   4,
	"FrozenFood": -18,
}

// RefrigeratedContainer carries temperature-controlled cargo. Construction
// validates the configured temperature against the per-product minimum;
// a violation emits a hazard signal but never blocks construction, so an
// out-of-policy container is created, flagged, and remains usable. The load
// ceiling equals the structural capacity with warn-and-reject overfill
// handling, like the gas variant.
type RefrigeratedContainer struct {
	BasicContainer

	// productType names the cargo, e.g. "Bananas"
	productType string

	// temperature is the configured cargo temperature in °C
	temperature float64

	// notifier receives danger signals for temperature-policy violations
	// and rejected loads
	notifier HazardNotifier
}

// NewRefrigeratedContainer creates an empty refrigerated container and runs
// the one-time temperature-policy check. The serial must carry the
// refrigerated type code.
func NewRefrigeratedContainer(
	serial kernel.SerialNumber,
	maxWeight, height, depth float64,
	productType string,
	temperature float64,
	notifier HazardNotifier,
) (*RefrigeratedContainer, error) {
	c, err := RestoreRefrigeratedContainer(serial, 0, maxWeight, height, depth, productType, temperature, notifier)
	if err != nil {
		return nil, err
	}

	c.checkTemperaturePolicy()
	return c, nil
}

// RestoreRefrigeratedContainer reconstructs a refrigerated container from
// persistent storage. The temperature-policy check is not repeated; it is a
// one-time construction concern.
func RestoreRefrigeratedContainer(
	serial kernel.SerialNumber,
	loadMass, maxWeight, height, depth float64,
	productType string,
	temperature float64,
	notifier HazardNotifier,
) (*RefrigeratedContainer, error) {
	base, err := restoreBase(serial, kernel.TypeCodeRefrigerated, loadMass, maxWeight, height, depth)
	if err != nil {
		return nil, err
	}

	if notifier == nil {
		return nil, errs.NewValueIsRequiredError("hazard notifier is required")
	}

	return &RefrigeratedContainer{
		BasicContainer: base,
		productType:    productType,
		temperature:    temperature,
		notifier:       notifier,
	}, nil
}

// Kind reports the container variant.
func (c *RefrigeratedContainer) Kind() Kind {
	return KindRefrigerated
}

// ProductType returns the cargo product name.
func (c *RefrigeratedContainer) ProductType() string {
	return c.productType
}

// Temperature returns the configured cargo temperature in °C.
func (c *RefrigeratedContainer) Temperature() float64 {
	return c.temperature
}

// Load applies the refrigerated policy. The ceiling equals the structural
// capacity; exceeding it is reported as a hazard (with the serial-number
// suffix) and the load attempt is discarded.
func (c *RefrigeratedContainer) Load(mass float64) (LoadResult, error) {
	if err := validateMass(mass); err != nil {
		return LoadResult{}, err
	}

	if c.LoadMass()+mass > c.MaxWeight() {
		message := fmt.Sprintf(
			"Danger! Refrigerated container overfill attempt - Container Serial Number: %s",
			c.SerialNumber(),
		)
		c.notifier.NotifyDanger(message)
		return LoadRejected(message), nil
	}

	c.addMass(mass)
	return LoadAccepted(), nil
}

// checkTemperaturePolicy signals a hazard when the product type is unknown
// or the configured temperature is below the product's required minimum.
// It never blocks construction.
func (c *RefrigeratedContainer) checkTemperaturePolicy() {
	required, known := minimumSafeTemperatures[c.productType]
	if !known {
		c.notifier.NotifyDanger(fmt.Sprintf(
			"Danger! Unknown product type %q - Container Serial Number: %s",
			c.productType, c.SerialNumber(),
		))
		return
	}

	if c.temperature < required {
		c.notifier.NotifyDanger(fmt.Sprintf(
			"Danger! Temperature %s is below the required %s for %s - Container Serial Number: %s",
			formatDegrees(c.temperature), formatDegrees(required), c.productType, c.SerialNumber(),
		))
	}
}

// formatDegrees renders a temperature without trailing zeros.
func formatDegrees(t float64) string {
	return strconv.FormatFloat(t, 'f', -1, 64)
}
