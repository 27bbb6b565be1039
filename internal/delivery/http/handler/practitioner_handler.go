package handler

import (
	"net/http"

	"tcm-quiz-backend/internal/usecase"
	"tcm-quiz-backend/pkg/response"
)

type PractitionerHandler struct {
	practitionerUsecase usecase.PractitionerUsecase
}

func NewPractitionerHandler(practitionerUsecase usecase.PractitionerUsecase) *PractitionerHandler {
	return &PractitionerHandler{
		practitionerUsecase: practitionerUsecase,
	}
}

// ListPractitioners returns the directory sorted by rating descending.
func (h *PractitionerHandler) ListPractitioners(w http.ResponseWriter, r *http.Request) {
	practitioners, err := h.practitionerUsecase.ListPractitioners(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get practitioners")
		return
	}

	response.Success(w, http.StatusOK, "Practitioners retrieved successfully", practitioners)
}
