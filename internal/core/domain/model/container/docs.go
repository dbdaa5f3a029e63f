// Package container implements the typed shipping container model of the
// fleet system.
//
// A container is a cargo unit with a fixed structural capacity (MaxWeight)
// and a variant-specific load policy. The package provides four variants:
//
//   - BasicContainer: plain mechanics; overfilling is a hard failure
//     (*OverfillError)
//   - LiquidContainer: reduced ceiling (50% of capacity when hazardous,
//     90% otherwise); overfilling emits a hazard signal and silently
//     rejects the load
//   - GasContainer: full-capacity ceiling with hazard-and-reject overfill
//     handling; unloading leaves a 5% un-purgeable residue
//   - RefrigeratedContainer: full-capacity ceiling with hazard-and-reject
//     overfill handling; construction validates the cargo temperature
//     against per-product minimums and signals a hazard without blocking
//     construction
//
// Two failure philosophies deliberately coexist. The basic container
// aborts with an error on overfill; every shipped variant replaces that
// policy with a warn-and-reject one: the hazard is reported through a
// HazardNotifier and the load attempt is discarded without an error.
// Load returns an explicit LoadResult so callers can distinguish the two
// outcomes without inspecting masses.
//
// Serial numbers are allocated by the Registry, which owns the
// process-wide construction counter shared across all variants.
package container
