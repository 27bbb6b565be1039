package handler

import (
	"encoding/json"
	"net/http"

	"tcm-quiz-backend/internal/delivery/dto"
	"tcm-quiz-backend/internal/usecase"
	"tcm-quiz-backend/pkg/response"
	"tcm-quiz-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type QuizHandler struct {
	quizUsecase usecase.QuizUsecase
	validator   *validator.CustomValidator
}

func NewQuizHandler(quizUsecase usecase.QuizUsecase, validator *validator.CustomValidator) *QuizHandler {
	return &QuizHandler{
		quizUsecase: quizUsecase,
		validator:   validator,
	}
}

// ListQuestions returns all quiz questions with their options, ordered by
// display order.
func (h *QuizHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.quizUsecase.ListQuestions(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get questions")
		return
	}

	response.Success(w, http.StatusOK, "Questions retrieved successfully", questions)
}

// SubmitQuiz scores the submitted answers, persists the submission and
// returns the result profile for the dominant body type.
func (h *QuizHandler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.quizUsecase.Submit(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to save submission")
		return
	}

	response.Success(w, http.StatusOK, "Quiz submitted successfully", result)
}

// ListSubmissions returns submission summaries, newest first.
func (h *QuizHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.quizUsecase.ListSubmissions(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get submissions")
		return
	}

	response.Success(w, http.StatusOK, "Submissions retrieved successfully", submissions)
}

// GetSubmission returns one full submission record including raw answers.
func (h *QuizHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid submission ID", nil)
		return
	}

	submission, err := h.quizUsecase.GetSubmission(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrSubmissionNotFound:
			response.NotFound(w, "Submission not found")
		default:
			response.InternalServerError(w, "Failed to get submission")
		}
		return
	}

	response.Success(w, http.StatusOK, "Submission retrieved successfully", submission)
}
