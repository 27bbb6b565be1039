package entity

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
	"time"
)

// ResultProfile is the descriptive record shown for a body-type label.
// At most one profile exists per label.
type ResultProfile struct {
	ID              int        `gorm:"primaryKey;autoIncrement" json:"id"`
	BodyType        string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"body_type"`
	Title           string     `gorm:"type:varchar(255);not null" json:"title"`
	Description     string     `gorm:"type:text;not null" json:"description"`
	Recommendations StringList `gorm:"type:text" json:"recommendations"`
	FoodsToEat      StringList `gorm:"type:text" json:"foods_to_eat"`
	FoodsToAvoid    StringList `gorm:"type:text" json:"foods_to_avoid"`
	LifestyleTips   StringList `gorm:"type:text" json:"lifestyle_tips"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (ResultProfile) TableName() string {
	return "result_profiles"
}

// StringList is an ordered sequence of strings stored as a serialized column.
// Catalog rows seeded by older tooling may hold a JSON array, a plain
// comma-separated string, or nothing at all.
type StringList []string

// Value returns the JSON encoding, implements driver.Valuer interface
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		s = StringList{}
	}
	return json.Marshal(s)
}

// Scan decodes the stored value with a three-tier fallback: JSON array,
// then comma-split with trimming, then an empty list. Malformed catalog
// data degrades to an empty list and never fails the query.
func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = StringList{}
		return nil
	}

	var raw string
	switch v := value.(type) {
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		*s = StringList{}
		return nil
	}

	if strings.TrimSpace(raw) == "" {
		*s = StringList{}
		return nil
	}

	var parsed []string
	if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
		*s = parsed
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make(StringList, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	*s = out
	return nil
}
