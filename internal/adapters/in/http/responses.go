package http

import (
	"time"

	"dronefleet/internal/core/application/usecases/queries"
	"dronefleet/internal/core/domain/model/drone"
)

const (
	statusSuccess = "success"
	statusFailed  = "failed"
)

// Envelope wraps every JSON response.
type Envelope struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func ok(data any) Envelope {
	return Envelope{Success: true, Status: statusSuccess, Data: data}
}

func failed(message string) Envelope {
	return Envelope{Success: false, Status: statusFailed, Error: message}
}

type RegisterDroneRequest struct {
	Serial          string  `json:"serial"`
	Model           string  `json:"model"`
	WeightLimit     int     `json:"weightLimit"`
	BatteryCapacity *int    `json:"batteryCapacity,omitempty"`
	State           *string `json:"state,omitempty"`
}

type LoadItemRequest struct {
	Name            string `json:"name"`
	Weight          int    `json:"weight"`
	Code            string `json:"code"`
	MedicationImage string `json:"medicationImage"`
	PickupNumber    string `json:"pickupNumber"`
	DeliveryNumber  string `json:"deliveryNumber"`
	Address         string `json:"address"`
}

type ChangeStateRequest struct {
	State string `json:"state"`
}

type ReportBatteryRequest struct {
	Battery int `json:"battery"`
}

type DroneResponse struct {
	Serial          string               `json:"serial"`
	Model           string               `json:"model"`
	WeightLimit     int                  `json:"weightLimit"`
	BatteryCapacity int                  `json:"batteryCapacity"`
	State           string               `json:"state"`
	Medications     []AttachmentResponse `json:"medications,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

type MedicationResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Weight          int       `json:"weight"`
	Code            string    `json:"code"`
	MedicationImage string    `json:"medicationImage"`
	CreatedAt       time.Time `json:"createdAt"`
}

type AttachmentResponse struct {
	ID             string             `json:"id"`
	PickupNumber   string             `json:"pickupNumber"`
	DeliveryNumber string             `json:"deliveryNumber"`
	Address        string             `json:"address"`
	Status         string             `json:"status"`
	Medication     MedicationResponse `json:"medication"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

type BatteryLevelResponse struct {
	Serial          string    `json:"serial"`
	BatteryCapacity int       `json:"batteryCapacity"`
	State           string    `json:"state"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type BatteryLogResponse struct {
	ID           string    `json:"id"`
	DroneSerial  string    `json:"droneSerial"`
	BatteryLevel int       `json:"batteryLevel"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"createdAt"`
}

func droneResponse(d *drone.Drone) DroneResponse {
	attachments := d.Attachments()
	medications := make([]AttachmentResponse, 0, len(attachments))
	for _, a := range attachments {
		m := a.Medication()
		medications = append(medications, AttachmentResponse{
			ID:             a.ID().String(),
			PickupNumber:   a.PickupNumber(),
			DeliveryNumber: a.DeliveryNumber(),
			Address:        a.Address(),
			Status:         a.Status().String(),
			Medication: MedicationResponse{
				ID:              m.ID().String(),
				Name:            m.Name(),
				Weight:          m.Weight(),
				Code:            m.Code(),
				MedicationImage: m.Image(),
				CreatedAt:       m.CreatedAt(),
			},
			CreatedAt: a.CreatedAt(),
			UpdatedAt: a.UpdatedAt(),
		})
	}

	return DroneResponse{
		Serial:          d.Serial(),
		Model:           d.Model().String(),
		WeightLimit:     d.WeightLimit(),
		BatteryCapacity: d.Battery(),
		State:           d.State().String(),
		Medications:     medications,
		CreatedAt:       d.CreatedAt(),
		UpdatedAt:       d.UpdatedAt(),
	}
}

func summaryResponses(summaries []queries.DroneSummary) []DroneResponse {
	out := make([]DroneResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, DroneResponse{
			Serial:          s.Serial,
			Model:           s.Model.String(),
			WeightLimit:     s.WeightLimit,
			BatteryCapacity: s.BatteryCapacity,
			State:           s.State.String(),
			CreatedAt:       s.CreatedAt,
			UpdatedAt:       s.UpdatedAt,
		})
	}
	return out
}

func loadResponses(loads []queries.DroneLoad) []AttachmentResponse {
	out := make([]AttachmentResponse, 0, len(loads))
	for _, l := range loads {
		out = append(out, AttachmentResponse{
			ID:             l.ID.String(),
			PickupNumber:   l.PickupNumber,
			DeliveryNumber: l.DeliveryNumber,
			Address:        l.Address,
			Status:         l.Status.String(),
			Medication: MedicationResponse{
				ID:              l.Medication.ID.String(),
				Name:            l.Medication.Name,
				Weight:          l.Medication.Weight,
				Code:            l.Medication.Code,
				MedicationImage: l.Medication.Image,
				CreatedAt:       l.Medication.CreatedAt,
			},
			CreatedAt: l.CreatedAt,
			UpdatedAt: l.UpdatedAt,
		})
	}
	return out
}

func batteryLogResponses(entries []queries.BatteryLogEntry) []BatteryLogResponse {
	out := make([]BatteryLogResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, BatteryLogResponse{
			ID:           e.ID.String(),
			DroneSerial:  e.DroneSerial,
			BatteryLevel: e.BatteryLevel,
			Description:  e.Description,
			CreatedAt:    e.CreatedAt,
		})
	}
	return out
}
