package converter

import (
	"tcm-quiz-backend/internal/delivery/dto"
	"tcm-quiz-backend/internal/domain/entity"
)

// PractitionersToResponses converts practitioner directory rows to DTOs.
func PractitionersToResponses(practitioners []entity.Practitioner) []dto.PractitionerResponse {
	responses := make([]dto.PractitionerResponse, len(practitioners))
	for i, practitioner := range practitioners {
		responses[i] = dto.PractitionerResponse{
			ID:           practitioner.ID,
			Name:         practitioner.Name,
			Title:        practitioner.Title,
			Specialties:  practitioner.Specialties,
			Experience:   practitioner.Experience,
			Rating:       practitioner.Rating,
			ReviewsCount: practitioner.ReviewsCount,
			Bio:          practitioner.Bio,
			Availability: practitioner.Availability,
			ImageURL:     practitioner.ImageURL,
		}
	}
	return responses
}
