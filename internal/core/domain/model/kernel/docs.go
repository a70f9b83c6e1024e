// Package kernel holds the identifier primitive shared by the fleet domain.
//
// Drones are keyed by their human-readable serial; every other record
// (medications, delivery attachments, battery log entries) gets a generated
// UUID from this package so identifiers are produced in one place and a zero
// value can never slip into storage.
package kernel
