package converter

import (
	"tcm-quiz-backend/internal/delivery/dto"
	"tcm-quiz-backend/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its DTO, deriving
// the end of the booked window.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:               appointment.ID,
		Name:             appointment.Name,
		Email:            appointment.Email,
		Phone:            appointment.Phone,
		State:            appointment.State,
		Age:              appointment.Age,
		AuthMethod:       appointment.AuthMethod,
		PractitionerID:   appointment.PractitionerID,
		PractitionerName: appointment.PractitionerName,
		StartAt:          appointment.StartAt,
		EndAt:            appointment.EndAt(),
		DurationMinutes:  appointment.DurationMinutes,
		Notes:            appointment.Notes,
		PaymentStatus:    string(appointment.PaymentStatus),
		PaymentID:        appointment.PaymentID,
		Amount:           appointment.Amount,
		CreatedAt:        appointment.CreatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs.
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
