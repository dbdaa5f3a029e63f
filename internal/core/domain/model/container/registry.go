package container

import (
	"sync/atomic"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
)

// Registry allocates container serial numbers and constructs containers.
// It owns the monotonic sequence counter shared by every variant: the Nth
// container built through a registry carries sequence N regardless of its
// type. The counter is atomic, so concurrent construction stays safe.
//
// The registry also carries the default hazard notifier handed to every
// container it builds, wiring the fleet's report sink in one place.
type Registry struct {
	counter  atomic.Uint64
	notifier HazardNotifier
}

// NewRegistry creates a registry whose containers report hazards to the
// given notifier. The sequence starts at 1 for the first container.
func NewRegistry(notifier HazardNotifier) (*Registry, error) {
	if notifier == nil {
		return nil, errs.NewValueIsRequiredError("hazard notifier is required")
	}

	return &Registry{notifier: notifier}, nil
}

// NewBasicContainer builds a basic container with the next serial number.
func (r *Registry) NewBasicContainer(maxWeight, height, depth float64) (*BasicContainer, error) {
	serial, err := r.allocate(kernel.TypeCodeBasic)
	if err != nil {
		return nil, err
	}
	return NewBasicContainer(serial, maxWeight, height, depth)
}

// NewLiquidContainer builds a liquid container with the next serial number.
func (r *Registry) NewLiquidContainer(maxWeight, height, depth float64, hazardous bool) (*LiquidContainer, error) {
	serial, err := r.allocate(kernel.TypeCodeLiquid)
	if err != nil {
		return nil, err
	}
	return NewLiquidContainer(serial, maxWeight, height, depth, hazardous, r.notifier)
}

// NewGasContainer builds a gas container with the next serial number.
func (r *Registry) NewGasContainer(maxWeight, height, depth, pressure float64) (*GasContainer, error) {
	serial, err := r.allocate(kernel.TypeCodeGas)
	if err != nil {
		return nil, err
	}
	return NewGasContainer(serial, maxWeight, height, depth, pressure, r.notifier)
}

// NewRefrigeratedContainer builds a refrigerated container with the next
// serial number, running the one-time temperature-policy check.
func (r *Registry) NewRefrigeratedContainer(
	maxWeight, height, depth float64,
	productType string,
	temperature float64,
) (*RefrigeratedContainer, error) {
	serial, err := r.allocate(kernel.TypeCodeRefrigerated)
	if err != nil {
		return nil, err
	}
	return NewRefrigeratedContainer(serial, maxWeight, height, depth, productType, temperature, r.notifier)
}

// allocate hands out the next sequence number. The counter advances even
// when the subsequent constructor rejects its parameters, so sequence gaps
// can appear; uniqueness is what matters.
func (r *Registry) allocate(code kernel.TypeCode) (kernel.SerialNumber, error) {
	return kernel.NewSerialNumber(code, r.counter.Add(1))
}
