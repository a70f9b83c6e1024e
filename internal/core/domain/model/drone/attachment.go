package drone

import (
	"errors"
	"time"

	"dronefleet/internal/core/domain/model/kernel"
	"dronefleet/internal/pkg/errs"
	"dronefleet/internal/pkg/guard"
)

var ErrAttachmentIsNotConstructed = errors.New("Attachment must be created via Drone.Load or RestoreAttachment")

// Attachment links a drone to one medication for one delivery order. Its
// status follows the item through LOADED, DELIVERING and DELIVERED.
type Attachment struct {
	id             kernel.UUID
	medication     *Medication
	pickupNumber   string
	deliveryNumber string
	address        string
	status         State
	createdAt      time.Time
	updatedAt      time.Time

	guard guard.ConstructorGuard
}

func newAttachment(s Shipment, now time.Time) *Attachment {
	return &Attachment{
		id:             kernel.NewUUID(),
		medication:     s.Medication(),
		pickupNumber:   s.PickupNumber(),
		deliveryNumber: s.DeliveryNumber(),
		address:        s.Address(),
		status:         Loaded,
		createdAt:      now,
		updatedAt:      now,
		guard:          guard.NewConstructorGuard(),
	}
}

// RestoreAttachment rebuilds a stored attachment.
func RestoreAttachment(
	id kernel.UUID,
	medication *Medication,
	pickupNumber, deliveryNumber, address string,
	status State,
	createdAt, updatedAt time.Time,
) (*Attachment, error) {
	if medication == nil {
		return nil, errs.NewValueIsRequiredError("medication")
	}
	if err := errors.Join(id.Validate(), medication.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Attachment{
		id:             id,
		medication:     medication,
		pickupNumber:   pickupNumber,
		deliveryNumber: deliveryNumber,
		address:        address,
		status:         status,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (a *Attachment) ID() kernel.UUID         { return a.id }
func (a *Attachment) Medication() *Medication { return a.medication }
func (a *Attachment) PickupNumber() string    { return a.pickupNumber }
func (a *Attachment) DeliveryNumber() string  { return a.deliveryNumber }
func (a *Attachment) Address() string         { return a.address }
func (a *Attachment) Status() State           { return a.status }
func (a *Attachment) CreatedAt() time.Time    { return a.createdAt }
func (a *Attachment) UpdatedAt() time.Time    { return a.updatedAt }

// Weight is the weight of the attached medication in grams.
func (a *Attachment) Weight() int {
	return a.medication.Weight()
}

// IsOnBoard reports whether the item still counts against the drone's capacity.
func (a *Attachment) IsOnBoard() bool {
	return a.status != Delivered
}

func (a *Attachment) Validate() error {
	return a.guard.Validate(ErrAttachmentIsNotConstructed)
}

func (a *Attachment) advance(from, to State, now time.Time) {
	if a.status == from {
		a.status = to
		a.updatedAt = now
	}
}
