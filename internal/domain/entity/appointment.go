package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment state recorded on a booking
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
)

// Appointment records one booking request. Appointments are created once and
// never mutated through the public interface.
type Appointment struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name             string           `gorm:"type:varchar(255);not null" json:"name"`
	Email            string           `gorm:"type:varchar(255);not null;index" json:"email"`
	Phone            string           `gorm:"type:varchar(50)" json:"phone,omitempty"`
	State            string           `gorm:"type:varchar(100)" json:"state,omitempty"`
	Age              *int             `json:"age,omitempty"`
	AuthMethod       string           `gorm:"type:varchar(50)" json:"auth_method,omitempty"`
	PractitionerID   *int             `gorm:"index" json:"practitioner_id,omitempty"`
	PractitionerName string           `gorm:"type:varchar(255)" json:"practitioner_name,omitempty"`
	StartAt          time.Time        `gorm:"not null;index" json:"start_at"`
	DurationMinutes  int              `gorm:"not null" json:"duration_minutes"`
	Notes            string           `gorm:"type:text" json:"notes,omitempty"`
	PaymentStatus    PaymentStatus    `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"`
	PaymentID        string           `gorm:"type:varchar(100)" json:"payment_id,omitempty"`
	Amount           *decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount,omitempty"`
	CreatedAt        time.Time        `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Practitioner *Practitioner `gorm:"foreignKey:PractitionerID" json:"practitioner,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// EndAt derives the end of the booked window from start and duration.
func (a *Appointment) EndAt() time.Time {
	return a.StartAt.Add(time.Duration(a.DurationMinutes) * time.Minute)
}
