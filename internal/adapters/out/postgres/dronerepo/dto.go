// Package dronerepo provides data transfer objects and mapping functions for drone persistence.
// This package implements the repository pattern for the drone aggregate, handling
// the conversion between the drone with its attachments and the relational tables
// drones, medications and drone_medications.
package dronerepo

import (
	"time"

	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DroneDTO represents the database structure for persisting drone aggregates.
// State and battery are indexed for the fleet query.
type DroneDTO struct {
	Serial          string          `gorm:"type:varchar(100);primaryKey"`
	Model           string          `gorm:"type:varchar(20);not null;index"`
	WeightLimit     int             `gorm:"type:int;not null"`
	BatteryCapacity int             `gorm:"type:int;not null;index"`
	State           string          `gorm:"type:varchar(20);not null;index"`
	Attachments     []AttachmentDTO `gorm:"foreignKey:DroneSerial;references:Serial"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for drone entities.
func (DroneDTO) TableName() string {
	return "drones"
}

// MedicationDTO represents a medication row. Medications are created once per
// load item and never updated.
type MedicationDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"type:varchar(100);not null;index"`
	Weight          int       `gorm:"type:int;not null"`
	Code            string    `gorm:"type:varchar(100);not null;index"`
	MedicationImage string    `gorm:"type:text;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for medication entities.
func (MedicationDTO) TableName() string {
	return "medications"
}

// AttachmentDTO represents the drone to medication link with its delivery status.
type AttachmentDTO struct {
	ID             uuid.UUID     `gorm:"type:uuid;primaryKey"`
	DroneSerial    string        `gorm:"type:varchar(100);not null;index"`
	MedicationID   uuid.UUID     `gorm:"type:uuid;not null"`
	Medication     MedicationDTO `gorm:"foreignKey:MedicationID"`
	PickupNumber   string        `gorm:"type:varchar(14);not null;index"`
	DeliveryNumber string        `gorm:"type:varchar(14);not null;index"`
	Address        string        `gorm:"type:text;not null"`
	Status         string        `gorm:"type:varchar(20);not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the database table name for attachment entities.
func (AttachmentDTO) TableName() string {
	return "drone_medications"
}

// fromDomain converts a drone aggregate to its database representation,
// attachments and medications included.
func fromDomain(d *drone.Drone) DroneDTO {
	attachments := make([]AttachmentDTO, 0, len(d.Attachments()))
	for _, a := range d.Attachments() {
		attachments = append(attachments, attachmentFromDomain(d.Serial(), a))
	}

	return DroneDTO{
		Serial:          d.Serial(),
		Model:           d.Model().String(),
		WeightLimit:     d.WeightLimit(),
		BatteryCapacity: d.Battery(),
		State:           d.State().String(),
		Attachments:     attachments,
		CreatedAt:       d.CreatedAt(),
		UpdatedAt:       d.UpdatedAt(),
	}
}

func attachmentFromDomain(serial string, a *drone.Attachment) AttachmentDTO {
	m := a.Medication()
	return AttachmentDTO{
		ID:           a.ID().Bytes(),
		DroneSerial:  serial,
		MedicationID: m.ID().Bytes(),
		Medication: MedicationDTO{
			ID:              m.ID().Bytes(),
			Name:            m.Name(),
			Weight:          m.Weight(),
			Code:            m.Code(),
			MedicationImage: m.Image(),
			CreatedAt:       m.CreatedAt(),
			UpdatedAt:       m.CreatedAt(),
		},
		PickupNumber:   a.PickupNumber(),
		DeliveryNumber: a.DeliveryNumber(),
		Address:        a.Address(),
		Status:         a.Status().String(),
		CreatedAt:      a.CreatedAt(),
		UpdatedAt:      a.UpdatedAt(),
	}
}

// toDomain converts a database DTO with preloaded attachments to a drone aggregate.
func toDomain(dto DroneDTO) (*drone.Drone, error) {
	attachments := make([]*drone.Attachment, 0, len(dto.Attachments))
	for _, a := range dto.Attachments {
		attachment, err := attachmentToDomain(a)
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, attachment)
	}

	return drone.RestoreDrone(
		dto.Serial,
		drone.Model(dto.Model),
		dto.WeightLimit,
		dto.BatteryCapacity,
		drone.State(dto.State),
		attachments,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func attachmentToDomain(dto AttachmentDTO) (*drone.Attachment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	medicationID, err := kernel.UUIDFromBytes(dto.Medication.ID[:])
	if err != nil {
		return nil, err
	}

	m, err := drone.RestoreMedication(
		medicationID,
		dto.Medication.Name,
		dto.Medication.Weight,
		dto.Medication.Code,
		dto.Medication.MedicationImage,
		dto.Medication.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return drone.RestoreAttachment(
		id,
		m,
		dto.PickupNumber,
		dto.DeliveryNumber,
		dto.Address,
		drone.State(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
