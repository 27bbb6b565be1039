package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateAppointmentRequest struct {
	Name             string           `json:"name" validate:"required,min=2"`
	Email            string           `json:"email" validate:"required,email"`
	Phone            string           `json:"phone" validate:"omitempty"`
	State            string           `json:"state" validate:"omitempty"`
	Age              *int             `json:"age" validate:"omitempty,gte=0,lte=150"`
	AuthMethod       string           `json:"auth_method" validate:"omitempty"`
	PractitionerID   *int             `json:"practitioner_id" validate:"omitempty,gte=1"`
	PractitionerName string           `json:"practitioner_name" validate:"omitempty"`
	Start            string           `json:"start" validate:"required"`
	DurationMinutes  int              `json:"duration_minutes" validate:"required,gte=1"`
	Notes            string           `json:"notes" validate:"omitempty"`
	PaymentStatus    string           `json:"payment_status" validate:"omitempty,oneof=pending completed"`
	PaymentID        string           `json:"payment_id" validate:"omitempty"`
	Amount           *decimal.Decimal `json:"amount" validate:"omitempty"`
}

// Response DTOs

type AppointmentResponse struct {
	ID               uuid.UUID        `json:"id"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone,omitempty"`
	State            string           `json:"state,omitempty"`
	Age              *int             `json:"age,omitempty"`
	AuthMethod       string           `json:"auth_method,omitempty"`
	PractitionerID   *int             `json:"practitioner_id,omitempty"`
	PractitionerName string           `json:"practitioner_name,omitempty"`
	StartAt          time.Time        `json:"start_at"`
	EndAt            time.Time        `json:"end_at"`
	DurationMinutes  int              `json:"duration_minutes"`
	Notes            string           `json:"notes,omitempty"`
	PaymentStatus    string           `json:"payment_status"`
	PaymentID        string           `json:"payment_id,omitempty"`
	Amount           *decimal.Decimal `json:"amount,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
}

type CreateAppointmentResponse struct {
	ID          uuid.UUID           `json:"id"`
	Appointment AppointmentResponse `json:"appointment"`
	Letter      string              `json:"letter"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
