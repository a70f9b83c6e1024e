package drone

import (
	"errors"
	"slices"
	"time"

	"dronefleet/internal/pkg/errs"
	"dronefleet/internal/pkg/guard"
)

const maxSerialLength = 100

// Drone is the aggregate root of the fleet. It owns its delivery attachments
// and enforces the loading rules against them.
//
// Business rules:
//   - Serial is non-empty and at most 100 characters
//   - Weight limit is in (0, MaxWeightLimit], battery in [0, MaxBattery]
//   - On-board weight never exceeds the weight limit
//
// Example:
//
//	d, err := drone.NewDrone("DRONE-001", drone.Lightweight, 500, drone.DefaultBattery, drone.Idle)
//	if err != nil {
//	    return err
//	}
//	loaded, err := d.Load(shipments)
type Drone struct {
	serial      string
	model       Model
	weightLimit int
	battery     int
	state       State
	attachments []*Attachment
	createdAt   time.Time
	updatedAt   time.Time

	guard guard.ConstructorGuard
}

// NewDrone registers a new drone. LOADED cannot be an initial state because
// it is only reached by loading.
func NewDrone(serial string, model Model, weightLimit, battery int, state State) (*Drone, error) {
	if state == Loaded {
		return nil, errs.NewValueIsInvalidErrorWithCause("state", NewInvalidTransitionError(Idle, Loaded))
	}

	now := time.Now().UTC()
	return newDrone(serial, model, weightLimit, battery, state, nil, now, now)
}

// RestoreDrone rebuilds a stored drone together with its attachments.
func RestoreDrone(
	serial string,
	model Model,
	weightLimit, battery int,
	state State,
	attachments []*Attachment,
	createdAt, updatedAt time.Time,
) (*Drone, error) {
	return newDrone(serial, model, weightLimit, battery, state, attachments, createdAt, updatedAt)
}

func newDrone(
	serial string,
	model Model,
	weightLimit, battery int,
	state State,
	attachments []*Attachment,
	createdAt, updatedAt time.Time,
) (*Drone, error) {
	d := &Drone{
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setSerial(serial),
		d.setModel(model),
		d.setWeightLimit(weightLimit),
		d.setBattery(battery),
		d.setState(state),
		d.setAttachments(attachments),
	); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Drone) Serial() string       { return d.serial }
func (d *Drone) Model() Model         { return d.model }
func (d *Drone) WeightLimit() int     { return d.weightLimit }
func (d *Drone) Battery() int         { return d.battery }
func (d *Drone) State() State         { return d.state }
func (d *Drone) CreatedAt() time.Time { return d.createdAt }
func (d *Drone) UpdatedAt() time.Time { return d.updatedAt }

// Attachments returns every attachment, delivered ones included.
func (d *Drone) Attachments() []*Attachment {
	return slices.Clone(d.attachments)
}

// Validate ensures the drone was built by a constructor.
func (d *Drone) Validate() error {
	return d.guard.Validate(ErrDroneIsNotConstructed)
}

// OnBoardWeight sums the weights of attachments that are not yet delivered.
func (d *Drone) OnBoardWeight() int {
	total := 0
	for _, a := range d.attachments {
		if a.IsOnBoard() {
			total += a.Weight()
		}
	}
	return total
}

// Load runs the admission gates in order and, when all pass, attaches every
// shipment with status LOADED. The first failing gate aborts without
// attaching anything.
//
// Gates:
//  1. the state must be loadable, else *InvalidStateError
//  2. the battery must allow loading, else ErrBatteryTooLow
//  3. the drone must not be full already, else ErrCapacityReached
//  4. the shipments must fit, else *CapacityExceededError
//
// Gates 3 and 4 latch the drone to LOADED before failing; callers that want
// the latch durable must persist the drone even on those errors. A load that
// fills the drone exactly also latches LOADED.
func (d *Drone) Load(shipments []Shipment) ([]*Attachment, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	if !d.state.IsLoadable() {
		return nil, NewInvalidStateError(d.state)
	}

	if !BatteryAllowsLoading(d.battery) {
		return nil, ErrBatteryTooLow
	}

	now := time.Now().UTC()
	onBoard := d.OnBoardWeight()
	if IsFull(onBoard, d.weightLimit) {
		d.latchLoaded(now)
		return nil, ErrCapacityReached
	}

	incoming := 0
	for _, s := range shipments {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		incoming += s.Weight()
	}

	if !FitsWeight(onBoard, incoming, d.weightLimit) {
		d.latchLoaded(now)
		return nil, &CapacityExceededError{Current: onBoard, Incoming: incoming, Limit: d.weightLimit}
	}

	added := make([]*Attachment, 0, len(shipments))
	for _, s := range shipments {
		added = append(added, newAttachment(s, now))
	}
	d.attachments = append(d.attachments, added...)

	if len(added) > 0 {
		d.updatedAt = now
	}
	if IsFull(onBoard+incoming, d.weightLimit) {
		d.latchLoaded(now)
	}

	return added, nil
}

// ChangeState applies a manual lifecycle transition. Entering DELIVERING
// moves LOADED attachments along with the drone; entering DELIVERED marks
// DELIVERING attachments delivered, which frees their weight.
func (d *Drone) ChangeState(target State) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}
	if target == d.state {
		return nil
	}
	if !d.state.CanTransitionTo(target) {
		return NewInvalidTransitionError(d.state, target)
	}

	now := time.Now().UTC()
	for _, a := range d.attachments {
		switch target {
		case Delivering:
			a.advance(Loaded, Delivering, now)
		case Delivered:
			a.advance(Delivering, Delivered, now)
		}
	}

	d.state = target
	d.updatedAt = now
	return nil
}

// ReportBattery records a new battery reading.
func (d *Drone) ReportBattery(level int) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := d.setBattery(level); err != nil {
		return err
	}
	d.updatedAt = time.Now().UTC()
	return nil
}

// latchLoaded is the one-way loadable -> LOADED transition.
func (d *Drone) latchLoaded(now time.Time) {
	if d.state.IsLoadable() {
		d.state = Loaded
		d.updatedAt = now
	}
}

func (d *Drone) setSerial(serial string) error {
	if serial == "" {
		return errs.NewValueIsRequiredError("serial")
	}
	if len(serial) > maxSerialLength {
		return errs.NewValueIsOutOfRangeError("serial length", len(serial), 1, maxSerialLength)
	}
	d.serial = serial
	return nil
}

func (d *Drone) setModel(model Model) error {
	if err := model.Validate(); err != nil {
		return err
	}
	d.model = model
	return nil
}

func (d *Drone) setWeightLimit(limit int) error {
	if limit < 1 || limit > MaxWeightLimit {
		return errs.NewValueIsOutOfRangeError("weightLimit", limit, 1, MaxWeightLimit)
	}
	d.weightLimit = limit
	return nil
}

func (d *Drone) setBattery(level int) error {
	if level < 0 || level > MaxBattery {
		return errs.NewValueIsOutOfRangeError("batteryCapacity", level, 0, MaxBattery)
	}
	d.battery = level
	return nil
}

func (d *Drone) setState(state State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	d.state = state
	return nil
}

func (d *Drone) setAttachments(attachments []*Attachment) error {
	for _, a := range attachments {
		if a == nil {
			return errs.NewValueIsRequiredError("attachment")
		}
		if err := a.Validate(); err != nil {
			return err
		}
	}
	d.attachments = slices.Clone(attachments)
	return nil
}
