// Package services provides domain services that implement business rules
// spanning multiple domain entities in the ordering system.
//
// The package includes:
//   - AccessPolicy: role-gated read and mutation rights over orders
//
// Domain services hold logic that does not naturally belong to a single
// aggregate root, following Domain-Driven Design principles.
package services
