package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Submission is an immutable record of one completed quiz attempt. The raw
// answers are preserved verbatim so the computed body type can always be
// reproduced by re-running the scoring rule over them.
type Submission struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email     string    `gorm:"type:varchar(255);not null;index" json:"email"`
	Answers   RawJSON   `gorm:"type:jsonb;not null" json:"answers"`
	BodyType  string    `gorm:"type:varchar(50);not null;index" json:"body_type"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Submission) TableName() string {
	return "submissions"
}

// RawJSON stores a JSON document byte-for-byte as received.
type RawJSON json.RawMessage

// Value returns the document for storage, implements driver.Valuer interface
func (j RawJSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return "[]", nil
	}
	return string(j), nil
}

// Scan reads the document back, implements sql.Scanner interface
func (j *RawJSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		*j = append((*j)[0:0], v...)
	case string:
		*j = RawJSON(v)
	default:
		return errors.New(fmt.Sprint("Failed to scan JSON value:", value))
	}
	return nil
}

func (j RawJSON) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return j, nil
}

func (j *RawJSON) UnmarshalJSON(data []byte) error {
	*j = append((*j)[0:0], data...)
	return nil
}
