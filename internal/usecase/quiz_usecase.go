package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"tcm-quiz-backend/internal/converter"
	"tcm-quiz-backend/internal/delivery/dto"
	"tcm-quiz-backend/internal/domain/entity"
	"tcm-quiz-backend/internal/domain/repository"
	"tcm-quiz-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrSubmissionNotFound = errors.New("submission not found")

// Fallback profile content used when the catalog has no row for the
// computed body type. The response must still succeed structurally.
const (
	fallbackProfileTitle       = "Personalized Result"
	fallbackProfileDescription = "We created a tailored result for you."
)

type QuizUsecase interface {
	ListQuestions(ctx context.Context) (*dto.QuestionListResponse, error)
	Submit(ctx context.Context, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error)
	ListSubmissions(ctx context.Context) (*dto.SubmissionListResponse, error)
	GetSubmission(ctx context.Context, id uuid.UUID) (*dto.SubmissionResponse, error)
}

type quizUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	questionRepo      repository.QuestionRepository
	resultProfileRepo repository.ResultProfileRepository
	submissionRepo    repository.SubmissionRepository
	auditService      service.AuditService
}

func NewQuizUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	questionRepo repository.QuestionRepository,
	resultProfileRepo repository.ResultProfileRepository,
	submissionRepo repository.SubmissionRepository,
	auditService service.AuditService,
) QuizUsecase {
	return &quizUsecase{
		db:                db,
		log:               log,
		questionRepo:      questionRepo,
		resultProfileRepo: resultProfileRepo,
		submissionRepo:    submissionRepo,
		auditService:      auditService,
	}
}

func (u *quizUsecase) ListQuestions(ctx context.Context) (*dto.QuestionListResponse, error) {
	questions, err := u.questionRepo.FindAllOrdered(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find questions: %+v", err)
		return nil, err
	}

	responses := converter.QuestionsToResponses(questions)

	return &dto.QuestionListResponse{
		Questions: responses,
		Total:     len(responses),
	}, nil
}

func (u *quizUsecase) Submit(ctx context.Context, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error) {
	// Pull the body-type label out of each answer; everything else in the
	// answer payload is opaque and preserved verbatim.
	labels := make([]string, 0, len(req.Answers))
	for _, raw := range req.Answers {
		var fields struct {
			BodyType string `json:"body_type"`
		}
		if err := json.Unmarshal(raw, &fields); err != nil {
			labels = append(labels, "")
			continue
		}
		labels = append(labels, fields.BodyType)
	}

	bodyType, counts := service.DominantBodyType(labels)

	profile, err := u.resultProfileRepo.FindByBodyType(u.db.WithContext(ctx), bodyType)
	if err != nil {
		u.log.Warnf("Failed to find result profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		profile = &entity.ResultProfile{
			BodyType:        bodyType,
			Title:           fallbackProfileTitle,
			Description:     fallbackProfileDescription,
			Recommendations: entity.StringList{},
			FoodsToEat:      entity.StringList{},
			FoodsToAvoid:    entity.StringList{},
			LifestyleTips:   entity.StringList{},
		}
	}

	answersJSON, err := json.Marshal(req.Answers)
	if err != nil {
		u.log.Warnf("Failed to marshal answers: %+v", err)
		return nil, err
	}

	submission := &entity.Submission{
		Email:    req.Email,
		Answers:  entity.RawJSON(answersJSON),
		BodyType: bodyType,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.submissionRepo.Create(tx, submission); err != nil {
		u.log.Warnf("Failed to create submission: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, nil, entity.AuditActionQuizSubmit, "submission", submission.ID.String(), map[string]interface{}{
		"email":     submission.Email,
		"body_type": submission.BodyType,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		// Don't fail the transaction for audit log errors
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.SubmitQuizResponse{
		BodyType:        bodyType,
		Title:           profile.Title,
		Description:     profile.Description,
		Recommendations: profile.Recommendations,
		FoodsToEat:      profile.FoodsToEat,
		FoodsToAvoid:    profile.FoodsToAvoid,
		LifestyleTips:   profile.LifestyleTips,
		BodyTypeCounts:  counts,
		Saved:           true,
		SubmissionID:    &submission.ID,
	}, nil
}

func (u *quizUsecase) ListSubmissions(ctx context.Context) (*dto.SubmissionListResponse, error) {
	submissions, err := u.submissionRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find submissions: %+v", err)
		return nil, err
	}

	summaries := converter.SubmissionsToSummaries(submissions)

	return &dto.SubmissionListResponse{
		Submissions: summaries,
		Total:       len(summaries),
	}, nil
}

func (u *quizUsecase) GetSubmission(ctx context.Context, id uuid.UUID) (*dto.SubmissionResponse, error) {
	submission, err := u.submissionRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find submission: %+v", err)
		return nil, err
	}
	if submission == nil {
		return nil, ErrSubmissionNotFound
	}

	return converter.SubmissionToResponse(submission), nil
}
