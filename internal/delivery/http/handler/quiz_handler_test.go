package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tcm-quiz-backend/internal/delivery/dto"
	"tcm-quiz-backend/internal/usecase"
	"tcm-quiz-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type fakeQuizUsecase struct {
	submitResp  *dto.SubmitQuizResponse
	submitErr   error
	submissions map[uuid.UUID]*dto.SubmissionResponse
	lastSubmit  *dto.SubmitQuizRequest
}

func (f *fakeQuizUsecase) ListQuestions(ctx context.Context) (*dto.QuestionListResponse, error) {
	return &dto.QuestionListResponse{Questions: []dto.QuestionResponse{}, Total: 0}, nil
}

func (f *fakeQuizUsecase) Submit(ctx context.Context, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error) {
	f.lastSubmit = req
	return f.submitResp, f.submitErr
}

func (f *fakeQuizUsecase) ListSubmissions(ctx context.Context) (*dto.SubmissionListResponse, error) {
	return &dto.SubmissionListResponse{Submissions: []dto.SubmissionSummaryResponse{}, Total: 0}, nil
}

func (f *fakeQuizUsecase) GetSubmission(ctx context.Context, id uuid.UUID) (*dto.SubmissionResponse, error) {
	if sub, ok := f.submissions[id]; ok {
		return sub, nil
	}
	return nil, usecase.ErrSubmissionNotFound
}

func TestSubmitQuiz(t *testing.T) {
	fake := &fakeQuizUsecase{
		submitResp: &dto.SubmitQuizResponse{
			BodyType:       "qi_deficient",
			Title:          "Qi Deficient",
			BodyTypeCounts: map[string]int{"qi_deficient": 2},
			Saved:          true,
		},
	}
	h := NewQuizHandler(fake, validator.NewValidator())

	body := `{"email":"quiz@example.com","answers":[{"body_type":"qi_deficient"},{"body_type":"qi_deficient"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quiz/submissions", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.SubmitQuiz(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if fake.lastSubmit == nil || fake.lastSubmit.Email != "quiz@example.com" {
		t.Fatal("usecase did not receive the decoded request")
	}
	if !strings.Contains(rec.Body.String(), `"body_type":"qi_deficient"`) {
		t.Errorf("response missing body type: %s", rec.Body.String())
	}
}

func TestSubmitQuizValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{"answers":[{"body_type":"balanced"}]}`},
		{"bad email", `{"email":"not-an-email","answers":[{"body_type":"balanced"}]}`},
		{"empty answers", `{"email":"quiz@example.com","answers":[]}`},
		{"malformed json", `{"email":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeQuizUsecase{}
			h := NewQuizHandler(fake, validator.NewValidator())

			req := httptest.NewRequest(http.MethodPost, "/api/v1/quiz/submissions", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.SubmitQuiz(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
			if fake.lastSubmit != nil {
				t.Error("usecase should not be called for an invalid request")
			}
		})
	}
}

func TestSubmitQuizUsecaseFailure(t *testing.T) {
	fake := &fakeQuizUsecase{submitErr: errors.New("db down")}
	h := NewQuizHandler(fake, validator.NewValidator())

	body := `{"email":"quiz@example.com","answers":[{"body_type":"balanced"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quiz/submissions", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.SubmitQuiz(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestGetSubmission(t *testing.T) {
	id := uuid.New()
	fake := &fakeQuizUsecase{
		submissions: map[uuid.UUID]*dto.SubmissionResponse{
			id: {ID: id, Email: "quiz@example.com", BodyType: "balanced", Answers: json.RawMessage(`[]`)},
		},
	}
	h := NewQuizHandler(fake, validator.NewValidator())

	router := mux.NewRouter()
	router.HandleFunc("/quiz/submissions/{id}", h.GetSubmission).Methods(http.MethodGet)

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/quiz/submissions/"+id.String(), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/quiz/submissions/"+uuid.NewString(), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/quiz/submissions/not-a-uuid", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})
}
