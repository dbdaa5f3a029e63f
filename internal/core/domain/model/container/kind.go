package container

import (
	"fmt"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
)

// Kind identifies the container variant. It is a value object used for
// persistence discriminators and API payloads.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	// This value (0) helps catch uninitialized Kind values.
	KindUnknown Kind = iota

	// KindBasic is a plain container with the hard-failure load policy.
	KindBasic

	// KindLiquid is a liquid container with a reduced load ceiling.
	KindLiquid

	// KindGas is a gas container with residue-on-unload behavior.
	KindGas

	// KindRefrigerated is a temperature-controlled container.
	KindRefrigerated
)

// getKindStrings returns a map of Kind values to their string representations.
func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:      "unknown",
		KindBasic:        "basic",
		KindLiquid:       "liquid",
		KindGas:          "gas",
		KindRefrigerated: "refrigerated",
	}
}

// getValidKindStrings returns a map of only valid Kind values.
func getValidKindStrings() map[Kind]string {
	//nolint:exhaustive // KindUnknown is intentionally excluded as it's invalid
	return map[Kind]string{
		KindBasic:        "basic",
		KindLiquid:       "liquid",
		KindGas:          "gas",
		KindRefrigerated: "refrigerated",
	}
}

// KindFromString parses a kind from its lowercase string form, as used by
// the HTTP API and the persistence layer.
func KindFromString(s string) (Kind, error) {
	for kind, str := range getValidKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause(
		"kind is invalid",
		fmt.Errorf("%q is not a valid container kind", s),
	)
}

// Validate checks if the Kind value is valid.
// Valid kinds are: basic, liquid, gas, refrigerated.
func (k Kind) Validate() error {
	if _, ok := getValidKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"kind is invalid",
			fmt.Errorf("%d is not a valid container kind", k),
		)
	}
	return nil
}

// String returns the lowercase name of the kind.
// It implements the fmt.Stringer interface and is safe to call on any Kind
// value, including invalid ones.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

// TypeCode returns the serial-number type code for this kind.
func (k Kind) TypeCode() (kernel.TypeCode, error) {
	switch k {
	case KindBasic:
		return kernel.TypeCodeBasic, nil
	case KindLiquid:
		return kernel.TypeCodeLiquid, nil
	case KindGas:
		return kernel.TypeCodeGas, nil
	case KindRefrigerated:
		return kernel.TypeCodeRefrigerated, nil
	default:
		return "", k.Validate()
	}
}
