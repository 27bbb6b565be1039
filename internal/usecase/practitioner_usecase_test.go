package usecase

import (
	"context"
	"errors"
	"testing"

	"tcm-quiz-backend/internal/domain/entity"
	"tcm-quiz-backend/internal/seed"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type fakePractitionerRepo struct {
	deleteErr  error
	deleteAlls int
	created    []entity.Practitioner
}

func (f *fakePractitionerRepo) Create(db *gorm.DB, practitioner *entity.Practitioner) error {
	practitioner.ID = len(f.created) + 1
	f.created = append(f.created, *practitioner)
	return nil
}

func (f *fakePractitionerRepo) FindByID(db *gorm.DB, id int) (*entity.Practitioner, error) {
	for i := range f.created {
		if f.created[i].ID == id {
			return &f.created[i], nil
		}
	}
	return nil, nil
}

func (f *fakePractitionerRepo) FindAllByRating(db *gorm.DB) ([]entity.Practitioner, error) {
	return f.created, nil
}

func (f *fakePractitionerRepo) DeleteAll(db *gorm.DB) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleteAlls++
	f.created = nil
	return nil
}

func TestReseedReplacesDirectory(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := &fakePractitionerRepo{
		created: []entity.Practitioner{{ID: 99, Name: "Dr. Old Entry"}},
	}
	audit := &fakeAuditService{}
	u := NewPractitionerUsecase(db, logrus.New(), repo, audit)

	directory := seed.Practitioners()
	if err := u.Reseed(context.Background(), directory); err != nil {
		t.Fatalf("Reseed() error = %v", err)
	}

	if repo.deleteAlls != 1 {
		t.Errorf("DeleteAll called %d times, want 1", repo.deleteAlls)
	}
	if len(repo.created) != len(directory) {
		t.Fatalf("stored %d practitioners, want %d", len(repo.created), len(directory))
	}
	// The old row was cleared before the new set went in.
	for _, p := range repo.created {
		if p.Name == "Dr. Old Entry" {
			t.Error("stale directory entry survived the reseed")
		}
	}
	if len(audit.actions) != 1 || audit.actions[0] != entity.AuditActionPractitionerReseed {
		t.Errorf("audit actions = %v, want one %q entry", audit.actions, entity.AuditActionPractitionerReseed)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("transaction expectations: %v", err)
	}
}

func TestReseedRollsBackOnDeleteFailure(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakePractitionerRepo{deleteErr: errors.New("db down")}
	u := NewPractitionerUsecase(db, logrus.New(), repo, &fakeAuditService{})

	if err := u.Reseed(context.Background(), seed.Practitioners()); err == nil {
		t.Fatal("Reseed() should fail when the delete fails")
	}
	if len(repo.created) != 0 {
		t.Errorf("stored %d practitioners after failed delete, want 0", len(repo.created))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("transaction expectations: %v", err)
	}
}
