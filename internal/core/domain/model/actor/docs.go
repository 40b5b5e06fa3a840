// Package actor models the authenticated identity attempting an operation.
// An Actor carries an id and a Role from the closed set customer, admin,
// admin_master; the zero value is the anonymous actor. Authorization rules
// over actors live in the services package.
package actor
