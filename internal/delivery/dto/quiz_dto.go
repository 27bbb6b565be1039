package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// SubmitQuizRequest carries the quiz taker's email and the selected answers.
// Answers stay raw JSON so they can be persisted verbatim; only the body_type
// field of each element is inspected for scoring.
type SubmitQuizRequest struct {
	Email   string            `json:"email" validate:"required,email"`
	Answers []json.RawMessage `json:"answers" validate:"required,min=1"`
}

// Response DTOs

type OptionResponse struct {
	ID       int    `json:"id"`
	Letter   string `json:"letter"`
	Text     string `json:"text"`
	ImageURL string `json:"image_url,omitempty"`
	BodyType string `json:"body_type"`
}

type QuestionResponse struct {
	ID            int              `json:"id"`
	QuestionText  string           `json:"question_text"`
	Description   string           `json:"question_description,omitempty"`
	QuestionOrder int              `json:"question_order"`
	Options       []OptionResponse `json:"options"`
}

type QuestionListResponse struct {
	Questions []QuestionResponse `json:"questions"`
	Total     int                `json:"total"`
}

type SubmitQuizResponse struct {
	BodyType        string         `json:"body_type"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Recommendations []string       `json:"recommendations"`
	FoodsToEat      []string       `json:"foods_to_eat"`
	FoodsToAvoid    []string       `json:"foods_to_avoid"`
	LifestyleTips   []string       `json:"lifestyle_tips"`
	BodyTypeCounts  map[string]int `json:"body_type_counts"`
	Saved           bool           `json:"saved"`
	SubmissionID    *uuid.UUID     `json:"submission_id,omitempty"`
}

type SubmissionSummaryResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	BodyType  string    `json:"body_type"`
	CreatedAt time.Time `json:"created_at"`
}

type SubmissionResponse struct {
	ID        uuid.UUID       `json:"id"`
	Email     string          `json:"email"`
	BodyType  string          `json:"body_type"`
	Answers   json.RawMessage `json:"answers"`
	CreatedAt time.Time       `json:"created_at"`
}

type SubmissionListResponse struct {
	Submissions []SubmissionSummaryResponse `json:"submissions"`
	Total       int                         `json:"total"`
}
