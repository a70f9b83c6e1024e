// Package drone provides the Drone aggregate and the loading rules of the
// fleet.
//
// The package includes:
//   - Drone: the aggregate root keyed by serial, owning its delivery attachments
//   - State: the lifecycle state machine and the loadable set
//   - Model: the weight class a drone was registered with
//   - Medication and Shipment: what a load request carries
//   - Attachment: the link between a drone and one loaded medication
//   - Admission predicates (BatteryAllowsLoading, FitsWeight) shared by the
//     loading command and the fleet query so both decide the same way
//
// Key business rules:
//   - On-board weight (attachments not yet DELIVERED) never exceeds the weight limit
//   - Loading requires a loadable state and a battery of at least MinLoadableBattery
//   - A drone that is found full, or whose load request would overflow it, is
//     latched to LOADED
//   - LOADED is entered only by loading, never by a manual state change
package drone
