package repository

import (
	"tcm-quiz-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(db *gorm.DB, question *entity.Question) error
	FindAllOrdered(db *gorm.DB) ([]entity.Question, error)
	DeleteAll(db *gorm.DB) error
}
