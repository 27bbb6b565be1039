package usecase

import (
	"context"
	"errors"
	"time"

	"tcm-quiz-backend/internal/converter"
	"tcm-quiz-backend/internal/delivery/dto"
	"tcm-quiz-backend/internal/domain/entity"
	"tcm-quiz-backend/internal/domain/repository"
	"tcm-quiz-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrPractitionerNotFound = errors.New("practitioner not found")
	ErrInvalidStartTime     = errors.New("invalid start time, use an RFC3339 date-time")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.CreateAppointmentResponse, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	ListAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	RenderLetter(ctx context.Context, id uuid.UUID) (string, error)
}

type appointmentUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	appointmentRepo  repository.AppointmentRepository
	practitionerRepo repository.PractitionerRepository
	letterService    service.LetterService
	auditService     service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	practitionerRepo repository.PractitionerRepository,
	letterService service.LetterService,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:               db,
		log:              log,
		appointmentRepo:  appointmentRepo,
		practitionerRepo: practitionerRepo,
		letterService:    letterService,
		auditService:     auditService,
	}
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.CreateAppointmentResponse, error) {
	startAt, err := time.Parse(time.RFC3339, req.Start)
	if err != nil {
		return nil, ErrInvalidStartTime
	}

	practitionerName := req.PractitionerName
	if req.PractitionerID != nil {
		// Validate the reference before insert instead of relying on the FK
		// alone, so the caller gets a field-level error.
		practitioner, err := u.practitionerRepo.FindByID(u.db.WithContext(ctx), *req.PractitionerID)
		if err != nil {
			u.log.Warnf("Failed to find practitioner: %+v", err)
			return nil, err
		}
		if practitioner == nil {
			return nil, ErrPractitionerNotFound
		}
		if practitionerName == "" {
			practitionerName = practitioner.Name
		}
	}

	paymentStatus := entity.PaymentStatusPending
	if req.PaymentStatus != "" {
		paymentStatus = entity.PaymentStatus(req.PaymentStatus)
	}

	appointment := &entity.Appointment{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		State:            req.State,
		Age:              req.Age,
		AuthMethod:       req.AuthMethod,
		PractitionerID:   req.PractitionerID,
		PractitionerName: practitionerName,
		StartAt:          startAt,
		DurationMinutes:  req.DurationMinutes,
		Notes:            req.Notes,
		PaymentStatus:    paymentStatus,
		PaymentID:        req.PaymentID,
		Amount:           req.Amount,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, nil, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), map[string]interface{}{
		"email":    appointment.Email,
		"start_at": appointment.StartAt,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	letter, err := u.letterService.Render(appointment)
	if err != nil {
		u.log.Warnf("Failed to render confirmation letter: %+v", err)
		return nil, err
	}

	return &dto.CreateAppointmentResponse{
		ID:          appointment.ID,
		Appointment: *converter.AppointmentToResponse(appointment),
		Letter:      letter,
	}, nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	responses := converter.AppointmentsToResponses(appointments)

	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}, nil
}

func (u *appointmentUsecase) RenderLetter(ctx context.Context, id uuid.UUID) (string, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return "", err
	}
	if appointment == nil {
		return "", ErrAppointmentNotFound
	}

	return u.letterService.Render(appointment)
}
