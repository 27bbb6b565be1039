package repository

import (
	"errors"

	"tcm-quiz-backend/internal/domain/entity"
	domainRepo "tcm-quiz-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type submissionRepository struct{}

func NewSubmissionRepository() domainRepo.SubmissionRepository {
	return &submissionRepository{}
}

func (r *submissionRepository) Create(db *gorm.DB, submission *entity.Submission) error {
	return db.Create(submission).Error
}

func (r *submissionRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Submission, error) {
	var submission entity.Submission
	err := db.Where("id = ?", id).First(&submission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) FindAll(db *gorm.DB) ([]entity.Submission, error) {
	var submissions []entity.Submission
	err := db.Order("created_at DESC").Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}
