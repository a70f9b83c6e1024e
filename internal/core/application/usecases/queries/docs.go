// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read the store directly with SQL and return flat read models; they
// never load the drone aggregate and never mutate anything.
package queries
