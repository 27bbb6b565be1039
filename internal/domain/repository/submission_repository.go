package repository

import (
	"tcm-quiz-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubmissionRepository interface {
	Create(db *gorm.DB, submission *entity.Submission) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Submission, error)
	FindAll(db *gorm.DB) ([]entity.Submission, error)
}
