// Package conv provides safe integer conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow
// when converting between signed/unsigned integer types or when multiplying
// host-supplied element counts by a dimensionality.
//
// Use cases:
//   - Validating counts received across the host boundary
//   - Converting between Go's int (platform-dependent) and fixed-width types
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices bounded by a validated count), use direct type casts instead.
package conv
