// Package kernel provides shared value objects used across the domain model.
//
// The package includes:
//   - UUID: identity for orders, users, and audit entries
//   - Money: exact cent-based monetary amounts for prices, fees, and totals
//
// Value objects in this package are immutable and validated at construction,
// so domain aggregates can rely on them without re-checking.
package kernel
