package converter

import (
	"tcm-quiz-backend/internal/delivery/dto"
	"tcm-quiz-backend/internal/domain/entity"
)

// QuestionsToResponses converts quiz questions with their options to DTOs.
// A question without options yields an empty options list, never nil.
func QuestionsToResponses(questions []entity.Question) []dto.QuestionResponse {
	responses := make([]dto.QuestionResponse, len(questions))
	for i, question := range questions {
		options := make([]dto.OptionResponse, 0, len(question.Options))
		for _, option := range question.Options {
			options = append(options, dto.OptionResponse{
				ID:       option.ID,
				Letter:   option.OptionLetter,
				Text:     option.OptionText,
				ImageURL: option.ImageURL,
				BodyType: option.BodyType,
			})
		}
		responses[i] = dto.QuestionResponse{
			ID:            question.ID,
			QuestionText:  question.QuestionText,
			Description:   question.Description,
			QuestionOrder: question.QuestionOrder,
			Options:       options,
		}
	}
	return responses
}
