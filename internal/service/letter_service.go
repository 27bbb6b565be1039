package service

import (
	"bytes"
	"html/template"

	"tcm-quiz-backend/internal/domain/entity"
)

// letterTemplate renders the booking confirmation document. html/template
// escapes every user-supplied field, so notes containing markup come out as
// harmless text.
const letterTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Appointment Confirmation</title>
</head>
<body>
<h1>Appointment Confirmation</h1>
<p>Dear {{.Name}},</p>
<p>Your consultation has been booked. Please find the details below.</p>
<ul>
<li><strong>Date:</strong> {{.Date}}</li>
<li><strong>Time:</strong> {{.StartTime}} - {{.EndTime}}</li>
<li><strong>Duration:</strong> {{.Duration}} minutes</li>
{{if .Practitioner}}<li><strong>Practitioner:</strong> {{.Practitioner}}</li>
{{end}}<li><strong>Phone:</strong> {{.Phone}}</li>
<li><strong>Notes:</strong> {{.Notes}}</li>
</ul>
<p>Reference: {{.Reference}}</p>
<p>We look forward to seeing you.</p>
</body>
</html>
`

type letterData struct {
	Name         string
	Date         string
	StartTime    string
	EndTime      string
	Duration     int
	Practitioner string
	Phone        string
	Notes        string
	Reference    string
}

type LetterService interface {
	Render(appointment *entity.Appointment) (string, error)
}

type letterService struct {
	tmpl *template.Template
}

func NewLetterService() LetterService {
	return &letterService{
		tmpl: template.Must(template.New("letter").Parse(letterTemplate)),
	}
}

// Render produces the confirmation letter for a stored appointment.
func (s *letterService) Render(appointment *entity.Appointment) (string, error) {
	phone := appointment.Phone
	if phone == "" {
		phone = "Not provided"
	}
	notes := appointment.Notes
	if notes == "" {
		notes = "None"
	}

	data := letterData{
		Name:         appointment.Name,
		Date:         appointment.StartAt.Format("Monday, January 2, 2006"),
		StartTime:    appointment.StartAt.Format("15:04"),
		EndTime:      appointment.EndAt().Format("15:04"),
		Duration:     appointment.DurationMinutes,
		Practitioner: appointment.PractitionerName,
		Phone:        phone,
		Notes:        notes,
		Reference:    appointment.ID.String(),
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
