// Package ship contains the Ship aggregate root.
//
// A ship carries containers under two boarding limits: a container-count
// limit and a weight-capacity limit given in tonnes at construction and
// tracked in kilograms. Boarding, unloading and transfers never fail with
// business errors; rejections degrade to a no-op plus a line written to the
// ship's ReportSink, and the exact wording of those lines is part of the
// observable contract.
package ship
