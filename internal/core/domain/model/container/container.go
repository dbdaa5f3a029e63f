package container

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
)

// ErrOverfill is the sentinel error behind OverfillError.
// Use errors.Is against it to detect hard overfill failures.
var ErrOverfill = errors.New("container overfill")

// Container is the contract every cargo unit satisfies. Implementations
// differ only in their load policy and hazard reporting; identity,
// dimensions, and unload mechanics are shared.
type Container interface {
	// SerialNumber returns the immutable container identity.
	SerialNumber() kernel.SerialNumber

	// Kind reports the container variant.
	Kind() Kind

	// LoadMass returns the current cargo mass in kilograms. Never negative.
	LoadMass() float64

	// MaxWeight returns the structural capacity ceiling in kilograms.
	MaxWeight() float64

	// Height returns the container height. Informational only.
	Height() float64

	// Depth returns the container depth. Informational only.
	Depth() float64

	// Load attempts to add mass to the container. The mass must be finite
	// and non-negative, otherwise an input validation error is returned.
	// A policy violation either yields a rejected LoadResult (warn-and-reject
	// variants) or a *OverfillError (basic containers).
	Load(mass float64) (LoadResult, error)

	// Unload empties the container. Gas containers retain a residue.
	Unload()

	// Describe returns the human-readable cargo summary line.
	Describe() string

	// Validate checks that the container was built via its constructor.
	Validate() error
}

// HazardNotifier is the narrow capability for emitting a danger signal to
// the external report sink. Containers that can be dangerous hold one and
// invoke it instead of failing hard.
type HazardNotifier interface {
	NotifyDanger(message string)
}

// LoadResult is the explicit outcome of a Load call: accepted, or rejected
// with the hazard message that was emitted. Rejection is not an error; the
// load attempt is simply discarded.
type LoadResult struct {
	accepted bool
	reason   string
}

// LoadAccepted marks a load attempt as applied to the container.
func LoadAccepted() LoadResult {
	return LoadResult{accepted: true}
}

// LoadRejected marks a load attempt as discarded, carrying the reason that
// was reported through the hazard notifier.
func LoadRejected(reason string) LoadResult {
	return LoadResult{reason: reason}
}

// Accepted reports whether the mass was added to the container.
func (r LoadResult) Accepted() bool {
	return r.accepted
}

// Rejected reports whether the load attempt was silently discarded.
func (r LoadResult) Rejected() bool {
	return !r.accepted
}

// Reason returns the rejection reason. Empty for accepted loads.
func (r LoadResult) Reason() string {
	return r.reason
}

// OverfillError is the hard failure returned by the basic load policy when
// the requested mass would push the container past its structural capacity.
type OverfillError struct {
	Serial    kernel.SerialNumber
	Attempted float64
	MaxWeight float64
}

// NewOverfillError creates an OverfillError for the given container and the
// total mass the rejected load would have produced.
func NewOverfillError(serial kernel.SerialNumber, attempted, maxWeight float64) *OverfillError {
	return &OverfillError{Serial: serial, Attempted: attempted, MaxWeight: maxWeight}
}

func (e *OverfillError) Error() string {
	return fmt.Sprintf("%s: %s cannot hold %s kg (max %s kg)",
		ErrOverfill, e.Serial, formatMass(e.Attempted), formatMass(e.MaxWeight))
}

func (e *OverfillError) Unwrap() error {
	return ErrOverfill
}

// validateMass guards every load operation: cargo mass must be a finite,
// non-negative number.
func validateMass(mass float64) error {
	if math.IsNaN(mass) || math.IsInf(mass, 0) || mass < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"mass is invalid",
			fmt.Errorf("%v is negative or not finite", mass),
		)
	}
	return nil
}

// formatMass renders a mass without trailing zeros or exponent notation, so
// report lines read "Load 125/5000 kg" rather than "Load 125.000000/5e+03 kg".
func formatMass(mass float64) string {
	return strconv.FormatFloat(mass, 'f', -1, 64)
}
