package converter

import (
	"encoding/json"

	"tcm-quiz-backend/internal/delivery/dto"
	"tcm-quiz-backend/internal/domain/entity"
)

// SubmissionToResponse converts a Submission entity to the full record DTO
// including the verbatim raw answers.
func SubmissionToResponse(submission *entity.Submission) *dto.SubmissionResponse {
	if submission == nil {
		return nil
	}

	return &dto.SubmissionResponse{
		ID:        submission.ID,
		Email:     submission.Email,
		BodyType:  submission.BodyType,
		Answers:   json.RawMessage(submission.Answers),
		CreatedAt: submission.CreatedAt,
	}
}

// SubmissionsToSummaries converts submissions to listing summaries without
// the raw answer payloads.
func SubmissionsToSummaries(submissions []entity.Submission) []dto.SubmissionSummaryResponse {
	summaries := make([]dto.SubmissionSummaryResponse, len(submissions))
	for i, submission := range submissions {
		summaries[i] = dto.SubmissionSummaryResponse{
			ID:        submission.ID,
			Email:     submission.Email,
			BodyType:  submission.BodyType,
			CreatedAt: submission.CreatedAt,
		}
	}
	return summaries
}
