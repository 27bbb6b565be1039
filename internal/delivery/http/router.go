package http

import (
	"net/http"

	"tcm-quiz-backend/internal/delivery/http/handler"
	"tcm-quiz-backend/internal/delivery/http/middleware"
	"tcm-quiz-backend/pkg/response"

	"github.com/gorilla/mux"
)

type RouterConfig struct {
	QuizHandler         *handler.QuizHandler
	PractitionerHandler *handler.PractitionerHandler
	AppointmentHandler  *handler.AppointmentHandler
	AuthHandler         *handler.AuthHandler
	AuthMiddleware      *middleware.AuthMiddleware
	CORSMiddleware      *middleware.CORSMiddleware
}

func NewRouter(cfg *RouterConfig) *mux.Router {
	r := mux.NewRouter()

	r.Use(cfg.CORSMiddleware.Handle)

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, "OK", nil)
	}).Methods(http.MethodGet)

	// Quiz routes (public)
	quiz := api.PathPrefix("/quiz").Subrouter()
	quiz.HandleFunc("/questions", cfg.QuizHandler.ListQuestions).Methods(http.MethodGet)
	quiz.HandleFunc("/submissions", cfg.QuizHandler.SubmitQuiz).Methods(http.MethodPost)
	quiz.HandleFunc("/submissions", cfg.QuizHandler.ListSubmissions).Methods(http.MethodGet)
	quiz.HandleFunc("/submissions/{id}", cfg.QuizHandler.GetSubmission).Methods(http.MethodGet)

	// Practitioner routes (public)
	api.HandleFunc("/practitioners", cfg.PractitionerHandler.ListPractitioners).Methods(http.MethodGet)

	// Appointment routes (public)
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.HandleFunc("", cfg.AppointmentHandler.CreateAppointment).Methods(http.MethodPost)
	appointments.HandleFunc("", cfg.AppointmentHandler.ListAppointments).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", cfg.AppointmentHandler.GetAppointment).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}/letter", cfg.AppointmentHandler.GetLetter).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", cfg.AuthHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", cfg.AuthHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", cfg.AuthHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(cfg.AuthMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", cfg.AuthHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", cfg.AuthHandler.GetCurrentUser).Methods(http.MethodGet)

	return r
}
