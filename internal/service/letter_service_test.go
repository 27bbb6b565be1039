package service

import (
	"strings"
	"testing"
	"time"

	"tcm-quiz-backend/internal/domain/entity"

	"github.com/google/uuid"
)

func TestLetterServiceRender(t *testing.T) {
	svc := NewLetterService()

	id := uuid.MustParse("3f2f4b10-8a1c-4a6d-9a6a-2b9f2a1c0d11")
	appointment := &entity.Appointment{
		ID:               id,
		Name:             "Jamie Park",
		Email:            "jamie@example.com",
		Phone:            "+1 555 0100",
		PractitionerName: "Dr. Sarah Chen",
		StartAt:          time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC),
		DurationMinutes:  60,
		Notes:            "First visit",
	}

	letter, err := svc.Render(appointment)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for _, want := range []string{
		"Dear Jamie Park,",
		"Monday, March 9, 2026",
		"10:00 - 11:00",
		"60 minutes",
		"Dr. Sarah Chen",
		"+1 555 0100",
		"First visit",
		id.String(),
	} {
		if !strings.Contains(letter, want) {
			t.Errorf("letter missing %q", want)
		}
	}
}

func TestLetterServiceRenderDefaults(t *testing.T) {
	svc := NewLetterService()

	appointment := &entity.Appointment{
		ID:              uuid.New(),
		Name:            "Alex",
		StartAt:         time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 30,
	}

	letter, err := svc.Render(appointment)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.Contains(letter, "Not provided") {
		t.Error("letter should show a placeholder for a missing phone")
	}
	if !strings.Contains(letter, "None") {
		t.Error("letter should show a placeholder for missing notes")
	}
	if strings.Contains(letter, "Practitioner:") {
		t.Error("letter should omit the practitioner line when none is set")
	}
}

func TestLetterServiceRenderEscapesMarkup(t *testing.T) {
	svc := NewLetterService()

	appointment := &entity.Appointment{
		ID:              uuid.New(),
		Name:            "Alex",
		StartAt:         time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 30,
		Notes:           `<script>alert("x")</script>`,
	}

	letter, err := svc.Render(appointment)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if strings.Contains(letter, "<script>") {
		t.Error("letter must not contain unescaped markup from notes")
	}
	if !strings.Contains(letter, "&lt;script&gt;") {
		t.Error("letter should contain the escaped notes text")
	}
}
