// Package services provides domain services that apply the fleet's rules
// across many drones at once.
//
// The package includes:
//   - LoadableSelector: decides, from a drone's summary numbers, whether the
//     loading rules would admit a request of a given weight right now
//
// The selector is built only from the predicates of package drone
// (State.IsLoadable, BatteryAllowsLoading, FitsWeight), so the fleet query
// and the loading command cannot drift apart.
package services
