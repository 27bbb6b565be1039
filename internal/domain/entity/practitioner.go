package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Practitioner is static directory data, reseeded wholesale by the
// administrative seeding operation and exposed read-only to clients.
type Practitioner struct {
	ID           int             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string          `gorm:"type:varchar(255);not null" json:"name"`
	Title        string          `gorm:"type:varchar(255);not null" json:"title"`
	Specialties  StringList      `gorm:"type:text;not null" json:"specialties"`
	Experience   string          `gorm:"type:varchar(50);not null" json:"experience"`
	Rating       decimal.Decimal `gorm:"type:decimal(3,2);not null;index" json:"rating"`
	ReviewsCount int             `gorm:"not null" json:"reviews_count"`
	Bio          string          `gorm:"type:text;not null" json:"bio"`
	Availability string          `gorm:"type:varchar(100);not null" json:"availability"`
	ImageURL     string          `gorm:"type:text" json:"image_url,omitempty"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`

	// Relationships. The reference from appointments is best-effort: deleting
	// a practitioner (reseed) nulls it out, the snapshot name stays.
	Appointments []Appointment `gorm:"foreignKey:PractitionerID;constraint:OnDelete:SET NULL" json:"appointments,omitempty"`
}

func (Practitioner) TableName() string {
	return "practitioners"
}
