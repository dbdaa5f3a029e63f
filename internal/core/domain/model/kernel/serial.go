package kernel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

// serialPrefix is the fixed prefix of every container serial number.
const serialPrefix = "KON"

// TypeCode identifies the container variant inside a serial number.
type TypeCode string

const (
	// TypeCodeBasic marks a plain container without a variant-specific load policy.
	TypeCodeBasic TypeCode = "B"
	// TypeCodeLiquid marks a liquid container.
	TypeCodeLiquid TypeCode = "L"
	// TypeCodeGas marks a gas container.
	TypeCodeGas TypeCode = "G"
	// TypeCodeRefrigerated marks a refrigerated container.
	TypeCodeRefrigerated TypeCode = "C"
)

// Validate checks that the type code is one of the known container codes.
func (c TypeCode) Validate() error {
	switch c {
	case TypeCodeBasic, TypeCodeLiquid, TypeCodeGas, TypeCodeRefrigerated:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"typeCode is invalid",
			fmt.Errorf("%q is not a known container type code", string(c)),
		)
	}
}

// ErrSerialNumberIsNotConstructed is returned when attempting to use an
// improperly initialized SerialNumber. Serial numbers must be created via
// NewSerialNumber or SerialNumberFromString.
var ErrSerialNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"serial number must be created via NewSerialNumber or SerialNumberFromString constructors")

// SerialNumber is the human-readable identity of a container, rendered as
// "KON-<type-code>-<sequence>". It is an immutable value object; the zero
// value is invalid and fails validation.
//
// Sequence numbers are allocated process-wide in construction order across
// all container variants, so the Nth container constructed in a run carries
// sequence N regardless of its type.
//
// Example:
//
//	serial, err := kernel.NewSerialNumber(kernel.TypeCodeGas, 7)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(serial) // Output: KON-G-7
type SerialNumber struct { //nolint:recvcheck //using for validation
	code     TypeCode
	sequence uint64
	guard    guard.ConstructorGuard
}

// NewSerialNumber creates a SerialNumber from a type code and a sequence
// number. The sequence must be at least 1; sequence numbers are handed out
// by the container registry, never chosen by callers.
func NewSerialNumber(code TypeCode, sequence uint64) (SerialNumber, error) {
	serial := SerialNumber{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(serial.setCode(code), serial.setSequence(sequence)); err != nil {
		return SerialNumber{}, err
	}

	return serial, nil
}

// SerialNumberFromString parses a serial number from its canonical
// "KON-<type-code>-<sequence>" form. It is used when reconstructing
// containers from persistence or parsing identifiers from the API.
func SerialNumberFromString(s string) (SerialNumber, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || parts[0] != serialPrefix {
		return SerialNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"serialNumber is invalid",
			fmt.Errorf("%q does not match the KON-<type>-<sequence> format", s),
		)
	}

	sequence, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil {
		return SerialNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"serialNumber is invalid",
			fmt.Errorf("%q does not carry a numeric sequence: %w", s, err),
		)
	}

	return NewSerialNumber(TypeCode(parts[1]), sequence)
}

// Code returns the container type code embedded in the serial number.
func (s SerialNumber) Code() TypeCode {
	return s.code
}

// Sequence returns the process-wide construction sequence number.
func (s SerialNumber) Sequence() uint64 {
	return s.sequence
}

// String renders the canonical "KON-<type-code>-<sequence>" form.
// It implements fmt.Stringer.
func (s SerialNumber) String() string {
	return fmt.Sprintf("%s-%s-%d", serialPrefix, s.code, s.sequence)
}

// IsEqual compares two serial numbers by value.
func (s SerialNumber) IsEqual(other SerialNumber) bool {
	return s.code == other.code && s.sequence == other.sequence
}

// Validate checks that the serial number was created through a constructor.
func (s SerialNumber) Validate() error {
	return s.guard.Validate(ErrSerialNumberIsNotConstructed)
}

func (s *SerialNumber) setCode(code TypeCode) error {
	if err := code.Validate(); err != nil {
		return err
	}

	s.code = code
	return nil
}

func (s *SerialNumber) setSequence(sequence uint64) error {
	if sequence == 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"sequence is invalid",
			fmt.Errorf("%d is not greater than 0", sequence),
		)
	}

	s.sequence = sequence
	return nil
}
