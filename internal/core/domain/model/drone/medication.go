package drone

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"dronefleet/internal/core/domain/model/kernel"
	"dronefleet/internal/pkg/errs"
	"dronefleet/internal/pkg/guard"
)

const (
	maxContactNumberLength = 14
	minAddressLength       = 5
	maxAddressLength       = 200
)

var (
	medicationNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	medicationCodePattern = regexp.MustCompile(`^[A-Z0-9_]+$`)

	ErrMedicationIsNotConstructed = errors.New("Medication must be created via NewMedication or RestoreMedication")
)

// Medication is one deliverable package. It is created fresh for every load
// call and never changes afterwards.
type Medication struct {
	id        kernel.UUID
	name      string
	weight    int
	code      string
	image     string
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewMedication validates a medication described by a load request and
// assigns it a new identifier.
func NewMedication(name string, weight int, code, image string) (*Medication, error) {
	return newMedication(kernel.NewUUID(), name, weight, code, image, time.Now().UTC())
}

// RestoreMedication rebuilds a stored medication.
func RestoreMedication(id kernel.UUID, name string, weight int, code, image string, createdAt time.Time) (*Medication, error) {
	return newMedication(id, name, weight, code, image, createdAt)
}

func newMedication(id kernel.UUID, name string, weight int, code, image string, createdAt time.Time) (*Medication, error) {
	m := &Medication{createdAt: createdAt, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setWeight(weight),
		m.setCode(code),
		m.setImage(image),
	); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Medication) ID() kernel.UUID      { return m.id }
func (m *Medication) Name() string         { return m.name }
func (m *Medication) Weight() int          { return m.weight }
func (m *Medication) Code() string         { return m.code }
func (m *Medication) Image() string        { return m.image }
func (m *Medication) CreatedAt() time.Time { return m.createdAt }

func (m *Medication) Validate() error {
	return m.guard.Validate(ErrMedicationIsNotConstructed)
}

func (m *Medication) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Medication) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if !medicationNamePattern.MatchString(name) {
		return errs.NewValueIsInvalidErrorWithCause("name",
			errors.New("only letters, numbers, underscores, and hyphens are allowed"))
	}
	m.name = name
	return nil
}

func (m *Medication) setWeight(weight int) error {
	if weight < 1 || weight > MaxWeightLimit {
		return errs.NewValueIsOutOfRangeError("weight", weight, 1, MaxWeightLimit)
	}
	m.weight = weight
	return nil
}

func (m *Medication) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	if !medicationCodePattern.MatchString(code) {
		return errs.NewValueIsInvalidErrorWithCause("code",
			errors.New("only upper case letters, underscore and numbers are allowed"))
	}
	m.code = code
	return nil
}

func (m *Medication) setImage(image string) error {
	if image == "" {
		return errs.NewValueIsRequiredError("medicationImage")
	}
	u, err := url.Parse(image)
	if err != nil || u.Scheme == "" {
		return errs.NewValueIsInvalidErrorWithCause("medicationImage", fmt.Errorf("%q is not a URI", image))
	}
	m.image = image
	return nil
}

// Shipment is one item of a load request: the medication plus the delivery
// order metadata that ends up on its attachment.
type Shipment struct {
	medication     *Medication
	pickupNumber   string
	deliveryNumber string
	address        string

	guard guard.ConstructorGuard
}

// NewShipment validates the delivery metadata of one load item.
func NewShipment(medication *Medication, pickupNumber, deliveryNumber, address string) (Shipment, error) {
	s := Shipment{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		s.setMedication(medication),
		s.setPickupNumber(pickupNumber),
		s.setDeliveryNumber(deliveryNumber),
		s.setAddress(address),
	); err != nil {
		return Shipment{}, err
	}

	return s, nil
}

func (s Shipment) Medication() *Medication { return s.medication }
func (s Shipment) PickupNumber() string    { return s.pickupNumber }
func (s Shipment) DeliveryNumber() string  { return s.deliveryNumber }
func (s Shipment) Address() string         { return s.address }

// Weight is the medication weight in grams.
func (s Shipment) Weight() int {
	return s.medication.Weight()
}

func (s Shipment) Validate() error {
	return s.guard.Validate(nil)
}

func (s *Shipment) setMedication(m *Medication) error {
	if m == nil {
		return errs.NewValueIsRequiredError("medication")
	}
	if err := m.Validate(); err != nil {
		return err
	}
	s.medication = m
	return nil
}

func (s *Shipment) setPickupNumber(number string) error {
	if err := validateContactNumber("pickupNumber", number); err != nil {
		return err
	}
	s.pickupNumber = number
	return nil
}

func (s *Shipment) setDeliveryNumber(number string) error {
	if err := validateContactNumber("deliveryNumber", number); err != nil {
		return err
	}
	s.deliveryNumber = number
	return nil
}

func (s *Shipment) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	if n := len(address); n < minAddressLength || n > maxAddressLength {
		return errs.NewValueIsOutOfRangeError("address length", n, minAddressLength, maxAddressLength)
	}
	s.address = address
	return nil
}

func validateContactNumber(param, number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError(param)
	}
	if len(number) > maxContactNumberLength {
		return errs.NewValueIsOutOfRangeError(param+" length", len(number), 1, maxContactNumberLength)
	}
	return nil
}
