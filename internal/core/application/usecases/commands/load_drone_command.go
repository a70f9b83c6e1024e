package commands

import (
	"errors"
	"fmt"

	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/pkg/errs"
	"dronefleet/internal/pkg/guard"
)

var ErrLoadDroneCommandIsNotConstructed = errors.New(
	"LoadDroneCommand must be created via NewLoadDroneCommand constructor",
)

// LoadItem is one medication of a load request as received from a client.
type LoadItem struct {
	Name           string
	Weight         int
	Code           string
	Image          string
	PickupNumber   string
	DeliveryNumber string
	Address        string
}

// LoadDroneCommand represents a request to put medications on a drone. The
// items are validated into shipments up front, so the handler only runs the
// admission gates. An empty item list is allowed and still goes through them.
//
// Example:
//
//	cmd, err := NewLoadDroneCommand("DRONE-001", []LoadItem{{
//	    Name: "Paracetamol", Weight: 100, Code: "PARA_01",
//	    Image: "https://cdn.example.com/para.png",
//	    PickupNumber: "08031234567", DeliveryNumber: "08037654321",
//	    Address: "12 Marina Road, Lagos",
//	}})
type LoadDroneCommand struct { //nolint:recvcheck //using for validation
	serial    string
	shipments []drone.Shipment

	guard guard.ConstructorGuard
}

func NewLoadDroneCommand(serial string, items []LoadItem) (LoadDroneCommand, error) {
	cmd := LoadDroneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSerial(serial),
		cmd.setItems(items),
	); err != nil {
		return LoadDroneCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LoadDroneCommand) Validate() error {
	return c.guard.Validate(ErrLoadDroneCommandIsNotConstructed)
}

func (c LoadDroneCommand) Serial() string {
	return c.serial
}

// Shipments returns a copy of the validated items.
func (c LoadDroneCommand) Shipments() []drone.Shipment {
	out := make([]drone.Shipment, len(c.shipments))
	copy(out, c.shipments)
	return out
}

// Weight is the total incoming weight in grams.
func (c LoadDroneCommand) Weight() int {
	total := 0
	for _, s := range c.shipments {
		total += s.Weight()
	}
	return total
}

func (c *LoadDroneCommand) setSerial(serial string) error {
	if serial == "" {
		return errs.NewValueIsRequiredError("serial")
	}
	c.serial = serial
	return nil
}

func (c *LoadDroneCommand) setItems(items []LoadItem) error {
	shipments := make([]drone.Shipment, 0, len(items))
	var errList []error

	for i, item := range items {
		m, err := drone.NewMedication(item.Name, item.Weight, item.Code, item.Image)
		if err != nil {
			errList = append(errList, fmt.Errorf("item %d: %w", i, err))
			continue
		}
		s, err := drone.NewShipment(m, item.PickupNumber, item.DeliveryNumber, item.Address)
		if err != nil {
			errList = append(errList, fmt.Errorf("item %d: %w", i, err))
			continue
		}
		shipments = append(shipments, s)
	}

	if err := errors.Join(errList...); err != nil {
		return err
	}
	c.shipments = shipments
	return nil
}
