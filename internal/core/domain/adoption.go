package domain

import "time"

// AdoptionStatus is the backend's state for an adoption request.
type AdoptionStatus string

const (
	AdoptionPending   AdoptionStatus = "PENDIENTE"
	AdoptionCompleted AdoptionStatus = "COMPLETADO"
	AdoptionRejected  AdoptionStatus = "RECHAZADO"
)

// Adoption is a request by an adopter to take a pet home.
type Adoption struct {
	ID             int            `json:"id"`
	Pet            Pet            `json:"pet"`
	Estado         AdoptionStatus `json:"estado"`
	MotivoAdopcion string         `json:"motivoAdopcion,omitempty"`
	FechaSolicitud time.Time      `json:"fechaSolicitud,omitempty"`
}

// AdoptionRequest submits a new adoption request.
type AdoptionRequest struct {
	PetID          int    `json:"petId" validate:"required"`
	MotivoAdopcion string `json:"motivoAdopcion" validate:"required"`
}
