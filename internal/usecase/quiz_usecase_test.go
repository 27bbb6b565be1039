package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"tcm-quiz-backend/internal/delivery/dto"
	"tcm-quiz-backend/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB builds a gorm handle over sqlmock so transaction begin/commit
// work without a running database. Repositories are faked, so no statements
// beyond the transaction control ones reach the mock.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm.Open() error = %v", err)
	}
	return db, mock
}

type fakeQuestionRepo struct{}

func (f *fakeQuestionRepo) Create(db *gorm.DB, question *entity.Question) error { return nil }
func (f *fakeQuestionRepo) FindAllOrdered(db *gorm.DB) ([]entity.Question, error) {
	return nil, nil
}
func (f *fakeQuestionRepo) DeleteAll(db *gorm.DB) error { return nil }

type fakeResultProfileRepo struct {
	profiles map[string]*entity.ResultProfile
}

func (f *fakeResultProfileRepo) Create(db *gorm.DB, profile *entity.ResultProfile) error {
	return nil
}
func (f *fakeResultProfileRepo) FindByBodyType(db *gorm.DB, bodyType string) (*entity.ResultProfile, error) {
	return f.profiles[bodyType], nil
}
func (f *fakeResultProfileRepo) DeleteAll(db *gorm.DB) error { return nil }

type fakeSubmissionRepo struct {
	created []entity.Submission
}

func (f *fakeSubmissionRepo) Create(db *gorm.DB, submission *entity.Submission) error {
	submission.ID = uuid.New()
	f.created = append(f.created, *submission)
	return nil
}

func (f *fakeSubmissionRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Submission, error) {
	for i := range f.created {
		if f.created[i].ID == id {
			return &f.created[i], nil
		}
	}
	return nil, nil
}

func (f *fakeSubmissionRepo) FindAll(db *gorm.DB) ([]entity.Submission, error) {
	return f.created, nil
}

type fakeAuditService struct {
	actions []string
}

func (f *fakeAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	f.actions = append(f.actions, action)
	return nil
}

func newQuizUsecaseForTest(t *testing.T, submissionRepo *fakeSubmissionRepo, profiles map[string]*entity.ResultProfile) (QuizUsecase, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	u := NewQuizUsecase(
		db,
		logrus.New(),
		&fakeQuestionRepo{},
		&fakeResultProfileRepo{profiles: profiles},
		submissionRepo,
		&fakeAuditService{},
	)
	return u, mock
}

func TestSubmitPersistsEachAttempt(t *testing.T) {
	submissionRepo := &fakeSubmissionRepo{}
	u, mock := newQuizUsecaseForTest(t, submissionRepo, nil)
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectCommit()

	req := &dto.SubmitQuizRequest{
		Email: "quiz@example.com",
		Answers: []json.RawMessage{
			json.RawMessage(`{"body_type":"qi_deficient"}`),
			json.RawMessage(`{"body_type":"qi_deficient"}`),
		},
	}

	first, err := u.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	second, err := u.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("second Submit() error = %v", err)
	}

	// A repeated submission is a new attempt, never deduplicated.
	if len(submissionRepo.created) != 2 {
		t.Fatalf("stored %d submissions, want 2", len(submissionRepo.created))
	}
	if submissionRepo.created[0].ID == submissionRepo.created[1].ID {
		t.Error("both attempts stored under the same id")
	}
	if first.SubmissionID == nil || second.SubmissionID == nil {
		t.Fatal("responses must carry the stored submission ids")
	}
	if *first.SubmissionID == *second.SubmissionID {
		t.Error("responses report the same submission id for distinct attempts")
	}
	if !first.Saved || !second.Saved {
		t.Error("both attempts should report saved")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("transaction expectations: %v", err)
	}
}

func TestSubmitPreservesRawAnswers(t *testing.T) {
	submissionRepo := &fakeSubmissionRepo{}
	u, mock := newQuizUsecaseForTest(t, submissionRepo, nil)
	mock.ExpectBegin()
	mock.ExpectCommit()

	answers := []json.RawMessage{
		json.RawMessage(`{"body_type":"damp_heat","question_id":1,"letter":"E"}`),
		json.RawMessage(`{"body_type":"damp_heat","question_id":2,"extra":{"nested":true}}`),
	}
	req := &dto.SubmitQuizRequest{Email: "quiz@example.com", Answers: answers}

	resp, err := u.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	want, err := json.Marshal(answers)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if len(submissionRepo.created) != 1 {
		t.Fatalf("stored %d submissions, want 1", len(submissionRepo.created))
	}
	stored := submissionRepo.created[0]
	if !bytes.Equal([]byte(stored.Answers), want) {
		t.Errorf("stored answers = %s, want %s", stored.Answers, want)
	}

	// Reading the record back returns the persisted payload untouched.
	read, err := u.GetSubmission(context.Background(), *resp.SubmissionID)
	if err != nil {
		t.Fatalf("GetSubmission() error = %v", err)
	}
	if !bytes.Equal([]byte(read.Answers), []byte(stored.Answers)) {
		t.Errorf("read-back answers = %s, want %s", read.Answers, stored.Answers)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("transaction expectations: %v", err)
	}
}

func TestSubmitFallbackProfile(t *testing.T) {
	submissionRepo := &fakeSubmissionRepo{}
	u, mock := newQuizUsecaseForTest(t, submissionRepo, map[string]*entity.ResultProfile{})
	mock.ExpectBegin()
	mock.ExpectCommit()

	req := &dto.SubmitQuizRequest{
		Email:   "quiz@example.com",
		Answers: []json.RawMessage{json.RawMessage(`{"body_type":"balanced"}`)},
	}

	resp, err := u.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if resp.Title != fallbackProfileTitle || resp.Description != fallbackProfileDescription {
		t.Errorf("missing catalog row should yield the fallback profile, got %q / %q", resp.Title, resp.Description)
	}
	if resp.Recommendations == nil || resp.FoodsToEat == nil || resp.FoodsToAvoid == nil || resp.LifestyleTips == nil {
		t.Error("fallback profile lists must be empty, not null")
	}
}
