package entity

import "time"

// Question represents one quiz question. Questions are written only by the
// seeding tool and read by normal traffic.
type Question struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	QuestionText  string    `gorm:"type:text;not null" json:"question_text"`
	Description   string    `gorm:"type:text" json:"question_description,omitempty"`
	QuestionOrder int       `gorm:"not null;index" json:"question_order"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Options []Option `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

// Option is one selectable answer for a question, tagged with the body-type
// label it counts toward.
type Option struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	QuestionID   int       `gorm:"not null;index" json:"question_id"`
	OptionLetter string    `gorm:"type:varchar(5);not null" json:"letter"`
	OptionText   string    `gorm:"type:text;not null" json:"text"`
	ImageURL     string    `gorm:"type:text" json:"image_url,omitempty"`
	BodyType     string    `gorm:"type:varchar(50);not null;index" json:"body_type"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Option) TableName() string {
	return "options"
}
