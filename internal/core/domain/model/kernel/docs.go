// Package kernel provides core domain primitives for the fleet system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for ship identifiers with validation and comparison capabilities
//   - SerialNumber: A value object for human-readable container serial numbers
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are designed to be
// immutable and thread-safe, making them suitable for concurrent use.
package kernel
